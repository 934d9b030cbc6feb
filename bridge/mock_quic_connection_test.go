package bridge

import (
	"context"
	"net"

	"github.com/okdaichi/quicbridge/quic"
	"github.com/stretchr/testify/mock"
)

var _ quic.Connection = (*MockQUICConnection)(nil)

// MockQUICConnection is a mock implementation of quic.Connection using
// testify/mock. Func fields take precedence over recorded expectations so
// tests can script behavior without expectation bookkeeping.
type MockQUICConnection struct {
	mock.Mock

	AcceptStreamFunc      func(ctx context.Context) (quic.Stream, error)
	AcceptUniStreamFunc   func(ctx context.Context) (quic.ReceiveStream, error)
	OpenStreamFunc        func() (quic.Stream, error)
	OpenStreamSyncFunc    func(ctx context.Context) (quic.Stream, error)
	OpenUniStreamFunc     func() (quic.SendStream, error)
	OpenUniStreamSyncFunc func(ctx context.Context) (quic.SendStream, error)
	CloseWithErrorFunc    func(code quic.ApplicationErrorCode, msg string) error
	ContextFunc           func() context.Context
	ConnectionStateFunc   func() quic.ConnectionState
	RemoteAddrFunc        func() net.Addr
	LocalAddrFunc         func() net.Addr
}

func (m *MockQUICConnection) AcceptStream(ctx context.Context) (quic.Stream, error) {
	if m.AcceptStreamFunc != nil {
		return m.AcceptStreamFunc(ctx)
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.Stream), args.Error(1)
}

func (m *MockQUICConnection) AcceptUniStream(ctx context.Context) (quic.ReceiveStream, error) {
	if m.AcceptUniStreamFunc != nil {
		return m.AcceptUniStreamFunc(ctx)
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.ReceiveStream), args.Error(1)
}

func (m *MockQUICConnection) OpenStream() (quic.Stream, error) {
	if m.OpenStreamFunc != nil {
		return m.OpenStreamFunc()
	}
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.Stream), args.Error(1)
}

func (m *MockQUICConnection) OpenStreamSync(ctx context.Context) (quic.Stream, error) {
	if m.OpenStreamSyncFunc != nil {
		return m.OpenStreamSyncFunc(ctx)
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.Stream), args.Error(1)
}

func (m *MockQUICConnection) OpenUniStream() (quic.SendStream, error) {
	if m.OpenUniStreamFunc != nil {
		return m.OpenUniStreamFunc()
	}
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.SendStream), args.Error(1)
}

func (m *MockQUICConnection) OpenUniStreamSync(ctx context.Context) (quic.SendStream, error) {
	if m.OpenUniStreamSyncFunc != nil {
		return m.OpenUniStreamSyncFunc(ctx)
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quic.SendStream), args.Error(1)
}

func (m *MockQUICConnection) CloseWithError(code quic.ApplicationErrorCode, msg string) error {
	if m.CloseWithErrorFunc != nil {
		return m.CloseWithErrorFunc(code, msg)
	}
	args := m.Called(code, msg)
	return args.Error(0)
}

func (m *MockQUICConnection) ConnectionState() quic.ConnectionState {
	if m.ConnectionStateFunc != nil {
		return m.ConnectionStateFunc()
	}
	return quic.ConnectionState{}
}

func (m *MockQUICConnection) Context() context.Context {
	if m.ContextFunc != nil {
		return m.ContextFunc()
	}
	args := m.Called()
	return args.Get(0).(context.Context)
}

func (m *MockQUICConnection) LocalAddr() net.Addr {
	if m.LocalAddrFunc != nil {
		return m.LocalAddrFunc()
	}
	return &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 1234}
}

func (m *MockQUICConnection) RemoteAddr() net.Addr {
	if m.RemoteAddrFunc != nil {
		return m.RemoteAddrFunc()
	}
	return &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 4433}
}
