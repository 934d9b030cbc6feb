package bridge

import "sync"

// TakeOnce is a container whose payload can be taken by at most one
// consumer. It is how a background producer publishes a resource that
// consumer code later claims, without the two needing a rendezvous.
//
// Taking from an empty cell is a contract violation and panics: the
// surrounding protocol guarantees a cell is claimed exactly once, so a
// second take is always a programming error, never a recoverable condition.
type TakeOnce[T any] struct {
	mu      sync.Mutex
	value   T
	present bool
}

// NewTakeOnce returns a cell holding v. For interface types v may be nil,
// which stands for an explicitly absent payload that can still be taken
// (and peeked at) exactly once.
func NewTakeOnce[T any](v T) *TakeOnce[T] {
	return &TakeOnce[T]{
		value:   v,
		present: true,
	}
}

// Take removes and returns the payload. It panics if the payload was
// already taken.
func (o *TakeOnce[T]) Take() T {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.present {
		panic("bridge: value already taken")
	}
	o.present = false

	v := o.value
	var zero T
	o.value = zero
	return v
}

// Peek applies f to the payload without consuming it. It panics if the
// payload was already taken.
func (o *TakeOnce[T]) Peek(f func(T)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.present {
		panic("bridge: value already taken")
	}
	f(o.value)
}
