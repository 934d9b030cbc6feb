package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancelValue_CancelWakesWaiter(t *testing.T) {
	cv := NewCancelValue[int]()

	go cv.Cancel(42)

	select {
	case <-cv.Done():
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken")
	}

	assert.True(t, cv.Cancelled())
	assert.Equal(t, 42, cv.Value())
}

func TestCancelValue_Unfired(t *testing.T) {
	cv := NewCancelValue[int]()

	assert.False(t, cv.Cancelled())
	assert.Equal(t, 0, cv.Value())

	select {
	case <-cv.Done():
		t.Fatal("done channel closed before cancel")
	default:
	}
}

func TestCancelValue_RepeatedCancelOverwritesValue(t *testing.T) {
	cv := NewCancelValue[string]()

	cv.Cancel("first")
	cv.Cancel("second")

	assert.True(t, cv.Cancelled())
	assert.Equal(t, "second", cv.Value())

	select {
	case <-cv.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestCancelValue_ConcurrentWaiters(t *testing.T) {
	cv := NewCancelValue[int]()

	const waiters = 8
	var wg sync.WaitGroup
	values := make(chan int, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-cv.Done()
			values <- cv.Value()
		}()
	}

	cv.Cancel(7)
	wg.Wait()
	close(values)

	count := 0
	for v := range values {
		assert.Equal(t, 7, v)
		count++
	}
	assert.Equal(t, waiters, count)
}
