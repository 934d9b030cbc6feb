package bridge

import "sync"

// Queue serializes callbacks onto a single goroutine, preserving post
// order. It models a single-threaded host environment: handlers wrapped
// with ConnHandler or StreamHandler never run concurrently with each other.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []func()
	closed  bool
	done    chan struct{}
}

// NewQueue starts the queue's goroutine.
func NewQueue() *Queue {
	q := &Queue{
		done: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Post schedules fn to run on the queue goroutine. Posts after Close are
// dropped.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.pending = append(q.pending, fn)
	q.cond.Signal()
}

// Close drains already-posted callbacks and stops the queue goroutine.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()

	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		fns := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, fn := range fns {
			fn()
		}

		if len(fns) == 0 {
			// Woken with nothing pending: the queue is closed.
			return
		}
	}
}

// ConnHandler wraps h so that every callback is posted to the queue.
func (q *Queue) ConnHandler(h ConnHandler) ConnHandler {
	return &queuedConnHandler{q: q, h: h}
}

// StreamHandler wraps h so that every callback is posted to the queue.
func (q *Queue) StreamHandler(h StreamHandler) StreamHandler {
	return &queuedStreamHandler{q: q, h: h}
}

type queuedConnHandler struct {
	q *Queue
	h ConnHandler
}

func (d *queuedConnHandler) OnStream(pairing *Pairing, uni bool) {
	d.q.Post(func() { d.h.OnStream(pairing, uni) })
}

func (d *queuedConnHandler) OnClose(reason string) {
	d.q.Post(func() { d.h.OnClose(reason) })
}

func (d *queuedConnHandler) OnError(err error) {
	d.q.Post(func() { d.h.OnError(err) })
}

type queuedStreamHandler struct {
	q *Queue
	h StreamHandler
}

func (d *queuedStreamHandler) OnData(data []byte) {
	d.q.Post(func() { d.h.OnData(data) })
}

func (d *queuedStreamHandler) OnClose(reason string) {
	d.q.Post(func() { d.h.OnClose(reason) })
}

func (d *queuedStreamHandler) OnError(err error) {
	d.q.Post(func() { d.h.OnError(err) })
}
