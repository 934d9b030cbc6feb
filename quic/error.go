package quic

import (
	"github.com/quic-go/quic-go"
)

// TransportError represents a QUIC transport layer error.
type TransportError = quic.TransportError

// ApplicationError represents an application-level error in QUIC.
// The peer closing a connection with an application code surfaces as
// an ApplicationError from any pending operation.
type ApplicationError = quic.ApplicationError

// VersionNegotiationError occurs when version negotiation fails.
type VersionNegotiationError = quic.VersionNegotiationError

// StatelessResetError indicates that a stateless reset was received.
type StatelessResetError = quic.StatelessResetError

// IdleTimeoutError indicates that the connection timed out due to inactivity.
type IdleTimeoutError = quic.IdleTimeoutError

// HandshakeTimeoutError indicates that the handshake did not complete in time.
type HandshakeTimeoutError = quic.HandshakeTimeoutError

// Error codes for QUIC transport, application, and stream operations.
type (
	// TransportErrorCode identifies transport-layer protocol errors.
	TransportErrorCode = quic.TransportErrorCode
	// ApplicationErrorCode identifies application-defined errors.
	ApplicationErrorCode = quic.ApplicationErrorCode
	// StreamErrorCode identifies stream-specific errors.
	StreamErrorCode = quic.StreamErrorCode
)

// A StreamError is used for Stream.CancelRead and Stream.CancelWrite.
// It is also returned from Stream.Read and Stream.Write if the peer
// canceled reading or writing.
type StreamError = quic.StreamError

// Err0RTTRejected is returned from accept and read operations when the
// server rejects 0-RTT early data.
var Err0RTTRejected = quic.Err0RTTRejected
