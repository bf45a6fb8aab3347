package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	EventSnapshot           = "snapshot"
	EventMatchesRefreshed   = "matches_refreshed"
	EventMatchStatusChanged = "match_status_changed"
)

type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

// Hub fans catalog events out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event and the drop is counted.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Event
	nextID uint64
	buf    int

	dropped uint64
	logger  *zap.Logger
}

func NewHub(buf int, logger *zap.Logger) *Hub {
	if buf <= 0 {
		buf = 16
	}
	return &Hub{
		subs:   map[uint64]chan Event{},
		buf:    buf,
		logger: logger,
	}
}

// Subscribe returns the event channel and a cancel func that unregisters and
// closes it. Cancel is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buf)
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			n := atomic.AddUint64(&h.dropped, 1)
			if h.logger != nil {
				h.logger.Debug("stream subscriber slow, event dropped",
					zap.String("type", ev.Type),
					zap.Uint64("dropped_total", n),
				)
			}
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Dropped() uint64 {
	return atomic.LoadUint64(&h.dropped)
}
