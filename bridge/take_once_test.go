package bridge

import (
	"sync"
	"testing"

	"github.com/okdaichi/quicbridge/quic"
	"github.com/stretchr/testify/assert"
)

func TestTakeOnce_TakeReturnsValue(t *testing.T) {
	cell := NewTakeOnce("payload")

	assert.Equal(t, "payload", cell.Take())
}

func TestTakeOnce_SecondTakePanics(t *testing.T) {
	cell := NewTakeOnce(1)
	cell.Take()

	assert.Panics(t, func() { cell.Take() })
}

func TestTakeOnce_PeekDoesNotConsume(t *testing.T) {
	cell := NewTakeOnce(5)

	var seen int
	cell.Peek(func(v int) { seen = v })
	assert.Equal(t, 5, seen)

	assert.Equal(t, 5, cell.Take())
}

func TestTakeOnce_PeekAfterTakePanics(t *testing.T) {
	cell := NewTakeOnce(1)
	cell.Take()

	assert.Panics(t, func() { cell.Peek(func(int) {}) })
}

func TestTakeOnce_NilInterfacePayload(t *testing.T) {
	cell := NewTakeOnce[quic.SendStream](nil)

	var sawNil bool
	cell.Peek(func(s quic.SendStream) { sawNil = s == nil })
	assert.True(t, sawNil)

	assert.Nil(t, cell.Take())
	assert.Panics(t, func() { cell.Take() })
}

func TestTakeOnce_ConcurrentTakeExactlyOne(t *testing.T) {
	cell := NewTakeOnce("payload")

	const takers = 8
	var wg sync.WaitGroup
	successes := make(chan string, takers)

	for i := 0; i < takers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { _ = recover() }()
			successes <- cell.Take()
		}()
	}

	wg.Wait()
	close(successes)

	var got []string
	for v := range successes {
		got = append(got, v)
	}
	assert.Equal(t, []string{"payload"}, got)
}
