package bridge

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/okdaichi/quicbridge/quic"
)

// Conn is the claimed, active representation of one QUIC connection. It
// owns a close watcher and two accept goroutines (one per stream
// direction); all three are stopped deterministically by Close.
//
// The underlying connection is safe for concurrent use, so Conn adds no
// locking of its own around it.
type Conn struct {
	conn quic.Connection

	logger  *slog.Logger
	handler ConnHandler

	// acceptCtx stops the accept goroutines without touching the
	// underlying connection.
	acceptCtx  context.Context
	stopAccept context.CancelFunc

	wg        sync.WaitGroup
	errOnce   sync.Once // abnormal failure surfaced at most once
	closeOnce sync.Once // closure reason delivered at most once
	closed    atomic.Bool

	onClose func() // invoked after the closure reason is delivered
}

func newConn(conn quic.Connection, handler ConnHandler, logger *slog.Logger, onClose func()) *Conn {
	acceptCtx, stopAccept := context.WithCancel(context.Background())

	c := &Conn{
		conn:       conn,
		logger:     logger,
		handler:    handler,
		acceptCtx:  acceptCtx,
		stopAccept: stopAccept,
		onClose:    onClose,
	}

	c.wg.Add(3)
	go c.watchClose()
	go c.acceptBiStreams()
	go c.acceptUniStreams()

	return c
}

// RemoteAddr returns the negotiated remote address as a string.
func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Early reports whether the connection used 0-RTT early data.
func (c *Conn) Early() bool {
	return c.conn.ConnectionState().Used0RTT
}

// OpenStream opens an outbound bidirectional stream and returns it as an
// unclaimed pairing. The pairing does not pass through the accept loop;
// it is immediately claimable by the caller.
func (c *Conn) OpenStream(ctx context.Context) (*Pairing, error) {
	stream, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		c.logger.Error("failed to open bidirectional stream", "error", err)
		return nil, err
	}

	streamLogger := c.logger.With("stream_id", stream.StreamID())
	streamLogger.Debug("opened bidirectional stream")

	return newPairing(stream, stream, c.Early(), streamLogger), nil
}

// Close abruptly closes the connection with an application code and opaque
// reason bytes, stops the background goroutines, and waits for them.
// Calling Close again is a no-op.
func (c *Conn) Close(code quic.ApplicationErrorCode, reason []byte) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	c.logger.Info("closing connection", "code", code)

	c.stopAccept()
	err := c.conn.CloseWithError(code, string(reason))
	c.wg.Wait()

	return err
}

// watchClose waits for the underlying connection to tear down fully, then
// delivers the single closure notification.
func (c *Conn) watchClose() {
	defer c.wg.Done()

	ctx := c.conn.Context()
	<-ctx.Done()

	reason := closeReason(context.Cause(ctx))
	c.logger.Info("connection closed", "reason", reason)

	c.closeOnce.Do(func() {
		c.handler.OnClose(reason)
	})

	if c.onClose != nil {
		c.onClose()
	}
}

func (c *Conn) acceptBiStreams() {
	defer c.wg.Done()

	for {
		stream, err := c.conn.AcceptStream(c.acceptCtx)
		if err != nil {
			c.handleAcceptError(err)
			return
		}

		streamLogger := c.logger.With("stream_id", stream.StreamID())
		streamLogger.Debug("accepted bidirectional stream")

		pairing := newPairing(stream, stream, c.Early(), streamLogger)
		c.handler.OnStream(pairing, false)
	}
}

func (c *Conn) acceptUniStreams() {
	defer c.wg.Done()

	for {
		stream, err := c.conn.AcceptUniStream(c.acceptCtx)
		if err != nil {
			c.handleAcceptError(err)
			return
		}

		streamLogger := c.logger.With("stream_id", stream.StreamID())
		streamLogger.Debug("accepted unidirectional stream")

		// The send cell holds an explicit absent value: the pairing can
		// still be claimed, but writing to it is a hard error.
		pairing := newPairing(nil, stream, c.Early(), streamLogger)
		c.handler.OnStream(pairing, true)
	}
}

// handleAcceptError classifies a terminal accept failure. A benign end of
// the connection stops the loop silently; anything else is surfaced once
// to the consumer's error channel. Accept never retries past a terminal
// connection error.
func (c *Conn) handleAcceptError(err error) {
	if c.acceptCtx.Err() != nil || isBenignClose(err) {
		c.logger.Debug("accept loop stopping", "reason", err)
		return
	}

	c.errOnce.Do(func() {
		c.logger.Error("connection failed", "error", err)
		c.handler.OnError(err)
	})
}
