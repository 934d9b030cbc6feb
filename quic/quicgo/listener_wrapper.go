package quicgo

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_quicgo "github.com/quic-go/quic-go"
)

var _ quic.ListenAddrFunc = Listen

// Listen creates a QUIC listener on the given address.
func Listen(addr string, tlsConfig *tls.Config, quicConfig *quic.Config) (quic.Listener, error) {
	ln, err := quicgo_quicgo.ListenAddr(addr, tlsConfig, quicConfig)
	if err != nil {
		return nil, err
	}
	return &listenerWrapper{ln: ln}, nil
}

var _ quic.Listener = (*listenerWrapper)(nil)

type listenerWrapper struct {
	ln *quicgo_quicgo.Listener
}

func (wrapper *listenerWrapper) Accept(ctx context.Context) (quic.Connection, error) {
	conn, err := wrapper.ln.Accept(ctx)
	if err != nil {
		return nil, err
	}
	return WrapConnection(conn), nil
}

func (wrapper *listenerWrapper) Addr() net.Addr {
	return wrapper.ln.Addr()
}

func (wrapper *listenerWrapper) Close() error {
	return wrapper.ln.Close()
}
