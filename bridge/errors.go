package bridge

import (
	"context"
	"errors"

	"github.com/okdaichi/quicbridge/quic"
)

var (
	// ErrInvalidScheme is returned when a URL scheme is not supported.
	// Only "quic" (raw QUIC) and "https" (WebTransport) schemes are valid.
	ErrInvalidScheme = errors.New("bridge: invalid scheme")

	// ErrClientClosed is returned when the client has been closed.
	ErrClientClosed = errors.New("bridge: client closed")

	// ErrNoSendStream is returned when writing to a stream the peer opened
	// unidirectionally: such a stream has no send half at all, which is
	// distinct from any transport failure.
	ErrNoSendStream = errors.New("bridge: stream has no send side")

	// ErrInvalidRootCA is returned when a caller-supplied certificate
	// authority does not parse as PEM.
	ErrInvalidRootCA = errors.New("bridge: invalid root certificate")
)

// closedReason is the generic closure reason delivered when a stream ends
// without a failure of its own: clean end of stream or a local cancellation.
const closedReason = "closed"

// isBenignClose reports whether a connection-level accept failure is an
// ordinary end of the connection rather than a fault worth surfacing:
// a local close, the peer closing with an application code, the peer's own
// CONNECTION_CLOSE, or a stateless reset.
//
// Classification is strictly by type. Every quic-go connection error
// matches errors.Is(err, net.ErrClosed), so an Is-based shortcut would
// swallow idle timeouts and local transport faults too.
func isBenignClose(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}

	var appErr *quic.ApplicationError
	if errors.As(err, &appErr) {
		return true
	}

	var transErr *quic.TransportError
	if errors.As(err, &transErr) {
		// A transport error the peer sent ends the connection normally
		// from our side; one we raised locally is a real fault.
		return transErr.Remote
	}

	var resetErr *quic.StatelessResetError
	return errors.As(err, &resetErr)
}

// isRecoverableRead reports whether a read failure leaves the stream
// usable: 0-RTT rejection is reported to the consumer but does not stop
// the read loop. Idle and handshake timeouts mean the underlying
// connection is lost, so they stay fatal.
func isRecoverableRead(err error) bool {
	return errors.Is(err, quic.Err0RTTRejected)
}

// closeReason renders a connection teardown cause as the human-readable
// string delivered to the consumer. A remote ApplicationError round-trips
// the peer's code and reason bytes; a close we initiated ourselves reads as
// the generic reason.
func closeReason(cause error) string {
	if cause == nil || errors.Is(cause, context.Canceled) {
		return closedReason
	}

	var appErr *quic.ApplicationError
	if errors.As(cause, &appErr) && !appErr.Remote {
		return closedReason
	}
	return cause.Error()
}
