package webtransportgo

import (
	"time"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_webtransportgo "github.com/quic-go/webtransport-go"
)

var _ quic.Stream = (*streamWrapper)(nil)

type streamWrapper struct {
	stream quicgo_webtransportgo.Stream
}

func (wrapper *streamWrapper) StreamID() quic.StreamID {
	return wrapper.stream.StreamID()
}

func (wrapper *streamWrapper) Read(b []byte) (int, error) {
	n, err := wrapper.stream.Read(b)
	return n, convertStreamError(err)
}

func (wrapper *streamWrapper) Write(b []byte) (int, error) {
	n, err := wrapper.stream.Write(b)
	return n, convertStreamError(err)
}

func (wrapper *streamWrapper) CancelRead(code quic.StreamErrorCode) {
	wrapper.stream.CancelRead(quicgo_webtransportgo.StreamErrorCode(code))
}

func (wrapper *streamWrapper) CancelWrite(code quic.StreamErrorCode) {
	wrapper.stream.CancelWrite(quicgo_webtransportgo.StreamErrorCode(code))
}

func (wrapper *streamWrapper) SetDeadline(t time.Time) error {
	return wrapper.stream.SetDeadline(t)
}

func (wrapper *streamWrapper) SetReadDeadline(t time.Time) error {
	return wrapper.stream.SetReadDeadline(t)
}

func (wrapper *streamWrapper) SetWriteDeadline(t time.Time) error {
	return wrapper.stream.SetWriteDeadline(t)
}

func (wrapper *streamWrapper) Close() error {
	return convertStreamError(wrapper.stream.Close())
}

var _ quic.ReceiveStream = (*receiveStreamWrapper)(nil)

type receiveStreamWrapper struct {
	stream quicgo_webtransportgo.ReceiveStream
}

func (wrapper *receiveStreamWrapper) StreamID() quic.StreamID {
	return wrapper.stream.StreamID()
}

func (wrapper *receiveStreamWrapper) Read(b []byte) (int, error) {
	n, err := wrapper.stream.Read(b)
	return n, convertStreamError(err)
}

func (wrapper *receiveStreamWrapper) CancelRead(code quic.StreamErrorCode) {
	wrapper.stream.CancelRead(quicgo_webtransportgo.StreamErrorCode(code))
}

func (wrapper *receiveStreamWrapper) SetReadDeadline(t time.Time) error {
	return wrapper.stream.SetReadDeadline(t)
}

var _ quic.SendStream = (*sendStreamWrapper)(nil)

type sendStreamWrapper struct {
	stream quicgo_webtransportgo.SendStream
}

func (wrapper *sendStreamWrapper) StreamID() quic.StreamID {
	return wrapper.stream.StreamID()
}

func (wrapper *sendStreamWrapper) Write(b []byte) (int, error) {
	n, err := wrapper.stream.Write(b)
	return n, convertStreamError(err)
}

func (wrapper *sendStreamWrapper) CancelWrite(code quic.StreamErrorCode) {
	wrapper.stream.CancelWrite(quicgo_webtransportgo.StreamErrorCode(code))
}

func (wrapper *sendStreamWrapper) SetWriteDeadline(t time.Time) error {
	return wrapper.stream.SetWriteDeadline(t)
}

func (wrapper *sendStreamWrapper) Close() error {
	return convertStreamError(wrapper.stream.Close())
}
