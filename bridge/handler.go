package bridge

// ConnHandler receives connection-level notifications. Callbacks are
// invoked from the connection's background goroutines; wrap the handler
// with (*Queue).ConnHandler to serialize them onto a single goroutine.
//
// OnClose is invoked at most once per connection and is the last
// connection-level event.
type ConnHandler interface {
	// OnStream is invoked for every stream offer the peer makes. The
	// pairing is unclaimed; uni reports whether it lacks a send half.
	OnStream(pairing *Pairing, uni bool)

	// OnClose is invoked once with a human-readable close reason when the
	// connection has fully closed.
	OnClose(reason string)

	// OnError is invoked when the connection fails abnormally. The
	// connection is considered closed afterwards.
	OnError(err error)
}

// StreamHandler receives stream-level notifications. Callbacks are invoked
// from the stream's read loop goroutine, in order; wrap the handler with
// (*Queue).StreamHandler to move them onto a single goroutine.
//
// OnClose is invoked exactly once per stream and is the last event for
// that stream.
type StreamHandler interface {
	// OnData is invoked with each received chunk, in read order. The slice
	// is owned by the handler.
	OnData(data []byte)

	// OnClose is invoked once with a human-readable reason when the read
	// loop has stopped, whether gracefully, by cancellation, or fatally.
	OnClose(reason string)

	// OnError is invoked for recoverable read errors; the read loop
	// continues afterwards.
	OnError(err error)
}
