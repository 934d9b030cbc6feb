package bridge

import (
	"time"

	"github.com/okdaichi/quicbridge/quic"
	"github.com/stretchr/testify/mock"
)

var _ quic.Stream = (*MockQUICStream)(nil)

// MockQUICStream is a mock implementation of quic.Stream using
// testify/mock. Func fields take precedence over recorded expectations.
type MockQUICStream struct {
	mock.Mock

	StreamIDValue quic.StreamID

	ReadFunc        func(p []byte) (int, error)
	WriteFunc       func(p []byte) (int, error)
	CloseFunc       func() error
	CancelReadFunc  func(code quic.StreamErrorCode)
	CancelWriteFunc func(code quic.StreamErrorCode)
}

func (m *MockQUICStream) StreamID() quic.StreamID {
	return m.StreamIDValue
}

func (m *MockQUICStream) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockQUICStream) Write(p []byte) (int, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockQUICStream) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	args := m.Called()
	return args.Error(0)
}

func (m *MockQUICStream) CancelRead(code quic.StreamErrorCode) {
	if m.CancelReadFunc != nil {
		m.CancelReadFunc(code)
		return
	}
	m.Called(code)
}

func (m *MockQUICStream) CancelWrite(code quic.StreamErrorCode) {
	if m.CancelWriteFunc != nil {
		m.CancelWriteFunc(code)
		return
	}
	m.Called(code)
}

func (m *MockQUICStream) SetDeadline(t time.Time) error {
	return nil
}

func (m *MockQUICStream) SetReadDeadline(t time.Time) error {
	return nil
}

func (m *MockQUICStream) SetWriteDeadline(t time.Time) error {
	return nil
}
