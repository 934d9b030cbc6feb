package webtransportgo

import (
	"context"
	"net"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_webtransportgo "github.com/quic-go/webtransport-go"
)

type sessionWrapper struct {
	sess *quicgo_webtransportgo.Session
}

func wrapSession(wtsess *quicgo_webtransportgo.Session) quic.Connection {
	if wtsess == nil {
		return nil
	}
	return &sessionWrapper{
		sess: wtsess,
	}
}

var _ quic.Connection = (*sessionWrapper)(nil)

func (conn *sessionWrapper) AcceptStream(ctx context.Context) (quic.Stream, error) {
	stream, err := conn.sess.AcceptStream(ctx)
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &streamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) AcceptUniStream(ctx context.Context) (quic.ReceiveStream, error) {
	stream, err := conn.sess.AcceptUniStream(ctx)
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &receiveStreamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) CloseWithError(code quic.ApplicationErrorCode, msg string) error {
	return conn.sess.CloseWithError(quicgo_webtransportgo.SessionErrorCode(code), msg)
}

func (conn *sessionWrapper) ConnectionState() quic.ConnectionState {
	return conn.sess.ConnectionState()
}

func (conn *sessionWrapper) Context() context.Context {
	return conn.sess.Context()
}

func (conn *sessionWrapper) LocalAddr() net.Addr {
	return conn.sess.LocalAddr()
}

func (conn *sessionWrapper) OpenStream() (quic.Stream, error) {
	stream, err := conn.sess.OpenStream()
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &streamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) OpenStreamSync(ctx context.Context) (quic.Stream, error) {
	stream, err := conn.sess.OpenStreamSync(ctx)
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &streamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) OpenUniStream() (quic.SendStream, error) {
	stream, err := conn.sess.OpenUniStream()
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &sendStreamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) OpenUniStreamSync(ctx context.Context) (quic.SendStream, error) {
	stream, err := conn.sess.OpenUniStreamSync(ctx)
	if err != nil {
		return nil, convertSessionError(err)
	}
	return &sendStreamWrapper{stream: stream}, nil
}

func (conn *sessionWrapper) RemoteAddr() net.Addr {
	return conn.sess.RemoteAddr()
}
