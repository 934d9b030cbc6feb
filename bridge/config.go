package bridge

import "time"

// Config holds bridge-level options for a Client.
type Config struct {
	// DialTimeout bounds the transport handshake. Zero means the default
	// of 5 seconds.
	DialTimeout time.Duration

	// KeepAlivePeriod is the QUIC keep-alive interval used when no
	// explicit QUIC configuration is supplied. Zero means the default of
	// one second.
	KeepAlivePeriod time.Duration

	// Disable0RTT forces a full handshake on QUIC dials instead of
	// attempting 0-RTT early data.
	Disable0RTT bool
}
