package bridge

import "sync"

// CancelValue is a cancellation signal that carries a value to whoever is
// waiting on it. Once fired it stays fired; firing again overwrites the
// value but does not reset the signal.
//
// Waiters select on Done and read the value with Value afterwards. Any
// number of goroutines may wait concurrently.
type CancelValue[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	fired bool
	value T
}

// NewCancelValue returns an unfired CancelValue holding the zero value of T.
func NewCancelValue[T any]() *CancelValue[T] {
	return &CancelValue[T]{
		done: make(chan struct{}),
	}
}

// Cancel records v and fires the signal, waking all current and future
// waiters. Safe to call from any goroutine and safe to call repeatedly;
// the last value wins.
func (c *CancelValue[T]) Cancel(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	if !c.fired {
		c.fired = true
		close(c.done)
	}
}

// Done returns a channel that is closed when the signal fires.
func (c *CancelValue[T]) Done() <-chan struct{} {
	return c.done
}

// Cancelled reports whether the signal has fired.
func (c *CancelValue[T]) Cancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fired
}

// Value returns the most recently recorded value.
func (c *CancelValue[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}
