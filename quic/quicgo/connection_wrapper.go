package quicgo

import (
	"context"
	"net"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_quicgo "github.com/quic-go/quic-go"
)

// WrapConnection adapts a quic-go connection to the quic.Connection interface.
func WrapConnection(conn quicgo_quicgo.Connection) quic.Connection {
	if conn == nil {
		return nil
	}
	return &connectionWrapper{
		conn: conn,
	}
}

var _ quic.Connection = (*connectionWrapper)(nil)

type connectionWrapper struct {
	conn quicgo_quicgo.Connection
}

func (wrapper *connectionWrapper) AcceptStream(ctx context.Context) (quic.Stream, error) {
	stream, err := wrapper.conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &streamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) AcceptUniStream(ctx context.Context) (quic.ReceiveStream, error) {
	stream, err := wrapper.conn.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &receiveStreamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) CloseWithError(code quic.ApplicationErrorCode, msg string) error {
	return wrapper.conn.CloseWithError(code, msg)
}

func (wrapper *connectionWrapper) ConnectionState() quic.ConnectionState {
	return wrapper.conn.ConnectionState()
}

func (wrapper *connectionWrapper) Context() context.Context {
	return wrapper.conn.Context()
}

func (wrapper *connectionWrapper) LocalAddr() net.Addr {
	return wrapper.conn.LocalAddr()
}

func (wrapper *connectionWrapper) OpenStream() (quic.Stream, error) {
	stream, err := wrapper.conn.OpenStream()
	if err != nil {
		return nil, err
	}
	return &streamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) OpenStreamSync(ctx context.Context) (quic.Stream, error) {
	stream, err := wrapper.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &streamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) OpenUniStream() (quic.SendStream, error) {
	stream, err := wrapper.conn.OpenUniStream()
	if err != nil {
		return nil, err
	}
	return &sendStreamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) OpenUniStreamSync(ctx context.Context) (quic.SendStream, error) {
	stream, err := wrapper.conn.OpenUniStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &sendStreamWrapper{stream: stream}, nil
}

func (wrapper *connectionWrapper) RemoteAddr() net.Addr {
	return wrapper.conn.RemoteAddr()
}

func (wrapper connectionWrapper) Unwrap() quicgo_quicgo.Connection {
	return wrapper.conn
}
