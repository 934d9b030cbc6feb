package bridge

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/okdaichi/quicbridge/quic"
)

// readBufferSize is the size of the chunk buffer used by the read loop.
const readBufferSize = 2048

// Stream is the claimed, active representation of one QUIC stream. The
// receive half is owned exclusively by the read loop; writes on the send
// half are serialized by a mutex. A Stream is produced by Pairing.Claim.
type Stream struct {
	id    quic.StreamID
	early bool

	logger  *slog.Logger
	handler StreamHandler

	// sendMu serializes access to the send half and protects sentClose.
	sendMu    sync.Mutex
	send      quic.SendStream // nil for receive-only streams
	sentClose bool

	// closeRequested aborts the receive side with the carried error code
	// the next time the read loop observes it.
	closeRequested *CancelValue[quic.StreamErrorCode]

	done chan struct{} // closed when the read loop has exited
}

func newStream(send quic.SendStream, recv quic.ReceiveStream, early bool, handler StreamHandler, logger *slog.Logger) *Stream {
	s := &Stream{
		id:             recv.StreamID(),
		early:          early,
		logger:         logger.With("stream_id", recv.StreamID()),
		handler:        handler,
		send:           send,
		closeRequested: NewCancelValue[quic.StreamErrorCode](),
		done:           make(chan struct{}),
	}

	go s.readLoop(recv)

	return s
}

// ID returns the stream's numeric identifier.
func (s *Stream) ID() quic.StreamID {
	return s.id
}

// Early reports whether the stream was established under 0-RTT early data.
func (s *Stream) Early() bool {
	return s.early
}

// Done returns a channel that is closed when the read loop has exited.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Write writes all of b to the send half. Writing to a receive-only stream
// returns ErrNoSendStream. A write after CloseWrite is a no-op: an
// application write and a close legitimately race.
func (s *Stream) Write(b []byte) error {
	if s.send == nil {
		return ErrNoSendStream
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.sentClose {
		return nil
	}

	_, err := s.send.Write(b)
	if err != nil {
		s.logger.Error("stream write failed", "error", err)
		return err
	}
	return nil
}

// CloseWrite gracefully half-closes the send half. Closing an
// already-closed send half succeeds as a no-op.
func (s *Stream) CloseWrite() error {
	if s.send == nil {
		return ErrNoSendStream
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.sentClose {
		return nil
	}
	s.sentClose = true

	if err := s.send.Close(); err != nil {
		s.logger.Debug("write-side close failed", "error", err)
		return err
	}
	return nil
}

// CloseStream finishes the send half on a best-effort basis (errors are
// ignored) and requests that the receive side stop with code. The read
// loop issues the stop the next time its race resolves; a read already in
// flight may still deliver its data first.
func (s *Stream) CloseStream(code quic.StreamErrorCode) {
	if s.send != nil {
		s.sendMu.Lock()
		if !s.sentClose {
			s.sentClose = true
			// Closing twice would error; we already tolerate that race.
			_ = s.send.Close()
		}
		s.sendMu.Unlock()
	}

	s.closeRequested.Cancel(code)
}

// Stop deterministically finalizes the stream: it stops the read loop and
// finishes the send half on a best-effort basis. Equivalent to
// CloseStream(0).
func (s *Stream) Stop() {
	s.CloseStream(0)
}

// readLoop races reads against the cancellation token until the stream
// ends. Every exit path delivers exactly one OnClose, and it is the last
// event for the stream.
func (s *Stream) readLoop(recv quic.ReceiveStream) {
	defer close(s.done)

	// Issue the receive-side stop as soon as the token fires; CancelRead
	// unblocks a pending read with a local StreamError.
	go func() {
		select {
		case <-s.closeRequested.Done():
			recv.CancelRead(s.closeRequested.Value())
		case <-s.done:
		}
	}()

	buf := make([]byte, readBufferSize)
	for {
		n, err := recv.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			s.handler.OnData(data)
		}
		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			// Clean end of stream.
			break
		}

		var strErr *quic.StreamError
		if errors.As(err, &strErr) && !strErr.Remote && s.closeRequested.Cancelled() {
			// Our own stop request resolved the race.
			s.logger.Debug("read loop cancelled", "code", strErr.ErrorCode)
			break
		}

		if isRecoverableRead(err) {
			s.logger.Warn("recoverable read error", "error", err)
			s.handler.OnError(err)
			continue
		}

		// Peer reset, invalid stream, or the connection is gone: this is
		// the stream's closure reason, no generic notification follows.
		s.logger.Debug("read loop terminated", "error", err)
		s.handler.OnClose(err.Error())
		return
	}

	s.handler.OnClose(closedReason)
}
