package bridge

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type streamEvent struct {
	kind   string // "data", "close", "error"
	data   []byte
	reason string
	err    error
}

// recordingStreamHandler captures stream callbacks in arrival order.
type recordingStreamHandler struct {
	events chan streamEvent
}

func newRecordingStreamHandler() *recordingStreamHandler {
	return &recordingStreamHandler{
		events: make(chan streamEvent, 64),
	}
}

func (h *recordingStreamHandler) OnData(data []byte) {
	h.events <- streamEvent{kind: "data", data: data}
}

func (h *recordingStreamHandler) OnClose(reason string) {
	h.events <- streamEvent{kind: "close", reason: reason}
}

func (h *recordingStreamHandler) OnError(err error) {
	h.events <- streamEvent{kind: "error", err: err}
}

func (h *recordingStreamHandler) next(t *testing.T) streamEvent {
	t.Helper()

	select {
	case ev := <-h.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stream event")
		return streamEvent{}
	}
}

func (h *recordingStreamHandler) assertNoEvent(t *testing.T) {
	t.Helper()

	select {
	case ev := <-h.events:
		t.Fatalf("unexpected stream event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

type connEvent struct {
	kind    string // "stream", "close", "error"
	pairing *Pairing
	uni     bool
	reason  string
	err     error
}

// recordingConnHandler captures connection callbacks in arrival order.
type recordingConnHandler struct {
	events chan connEvent
}

func newRecordingConnHandler() *recordingConnHandler {
	return &recordingConnHandler{
		events: make(chan connEvent, 64),
	}
}

func (h *recordingConnHandler) OnStream(pairing *Pairing, uni bool) {
	h.events <- connEvent{kind: "stream", pairing: pairing, uni: uni}
}

func (h *recordingConnHandler) OnClose(reason string) {
	h.events <- connEvent{kind: "close", reason: reason}
}

func (h *recordingConnHandler) OnError(err error) {
	h.events <- connEvent{kind: "error", err: err}
}

func (h *recordingConnHandler) next(t *testing.T) connEvent {
	t.Helper()

	select {
	case ev := <-h.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for connection event")
		return connEvent{}
	}
}

func (h *recordingConnHandler) assertNoEvent(t *testing.T) {
	t.Helper()

	select {
	case ev := <-h.events:
		t.Fatalf("unexpected connection event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
