package bridge

import (
	"log/slog"

	"github.com/okdaichi/quicbridge/quic"
)

// Pairing is an unclaimed stream: the send half (absent for receive-only
// streams) and the receive half, each held in a TakeOnce cell. A Pairing is
// produced by the accept loop or by Conn.OpenStream and must be claimed
// exactly once.
type Pairing struct {
	send *TakeOnce[quic.SendStream]
	recv *TakeOnce[quic.ReceiveStream]

	early  bool
	logger *slog.Logger
}

func newPairing(send quic.SendStream, recv quic.ReceiveStream, early bool, logger *slog.Logger) *Pairing {
	return &Pairing{
		send:   NewTakeOnce(send),
		recv:   NewTakeOnce(recv),
		early:  early,
		logger: logger,
	}
}

// Uni reports whether the stream has no send half, i.e. the peer opened it
// as a unidirectional stream. It does not consume either half.
func (p *Pairing) Uni() bool {
	var uni bool
	p.send.Peek(func(s quic.SendStream) {
		uni = s == nil
	})
	return uni
}

// Claim takes ownership of both halves, starts the read loop bound to
// handler, and returns the active stream. Claiming a Pairing twice panics.
func (p *Pairing) Claim(handler StreamHandler) *Stream {
	send := p.send.Take()
	recv := p.recv.Take()

	return newStream(send, recv, p.early, handler, p.logger)
}
