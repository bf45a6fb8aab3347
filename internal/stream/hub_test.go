package stream

import (
	"testing"
	"time"
)

func TestHub_DeliversToAllSubscribers(t *testing.T) {
	h := NewHub(4, nil)
	a, cancelA := h.Subscribe()
	defer cancelA()
	b, cancelB := h.Subscribe()
	defer cancelB()

	h.Publish(Event{Type: EventMatchesRefreshed, Data: 3})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			if ev.Type != EventMatchesRefreshed || ev.At.IsZero() {
				t.Fatalf("event=%+v", ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("event not delivered")
		}
	}
}

func TestHub_DropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub(1, nil)
	_, cancel := h.Subscribe()
	defer cancel()

	h.Publish(Event{Type: "a"})
	h.Publish(Event{Type: "b"})
	h.Publish(Event{Type: "c"})

	if got := h.Dropped(); got != 2 {
		t.Fatalf("dropped=%d want 2", got)
	}
}

func TestHub_CancelUnregistersAndCloses(t *testing.T) {
	h := NewHub(1, nil)
	ch, cancel := h.Subscribe()
	if h.Subscribers() != 1 {
		t.Fatalf("subscribers=%d want 1", h.Subscribers())
	}
	cancel()
	cancel()
	if h.Subscribers() != 0 {
		t.Fatalf("subscribers=%d want 0", h.Subscribers())
	}
	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed")
	}
	h.Publish(Event{Type: "after-cancel"})
}

func TestHub_NilPublishIsNoop(t *testing.T) {
	var h *Hub
	h.Publish(Event{Type: "x"})
}
