package quicgo

import (
	"context"
	"crypto/tls"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_quicgo "github.com/quic-go/quic-go"
)

var (
	_ quic.DialAddrFunc = DialAddrEarly
	_ quic.DialAddrFunc = DialAddr
)

// DialAddrEarly establishes a new QUIC connection to a server, attempting
// to use 0-RTT if the session allows it.
func DialAddrEarly(ctx context.Context, addr string, tlsConfig *tls.Config, quicConfig *quic.Config) (quic.Connection, error) {
	conn, err := quicgo_quicgo.DialAddrEarly(ctx, addr, tlsConfig, quicConfig)
	if err != nil {
		return nil, err
	}
	return WrapConnection(conn), nil
}

// DialAddr establishes a new QUIC connection to a server, blocking until
// the handshake completes.
func DialAddr(ctx context.Context, addr string, tlsConfig *tls.Config, quicConfig *quic.Config) (quic.Connection, error) {
	conn, err := quicgo_quicgo.DialAddr(ctx, addr, tlsConfig, quicConfig)
	if err != nil {
		return nil, err
	}
	return WrapConnection(conn), nil
}
