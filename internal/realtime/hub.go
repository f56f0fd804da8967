// Package realtime fans database change notifications out to subscribers
// that asked for specific tables.
package realtime

import (
	"sync"

	"github.com/maheshrc27/brandlab-api/internal/metrics"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

type Event struct {
	Table string `json:"table"`
	Type  string `json:"type"`
	ID    string `json:"id"`
}

type Publisher interface {
	Publish(ev Event)
}

type Subscription struct {
	C      <-chan Event
	ch     chan Event
	tables map[string]struct{}
}

func (s *Subscription) wants(table string) bool {
	if len(s.tables) == 0 {
		return true
	}
	_, ok := s.tables[table]
	return ok
}

type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{subs: make(map[*Subscription]struct{}), buffer: buffer}
}

// Subscribe registers interest in the given tables; no tables means all.
func (h *Hub) Subscribe(tables ...string) *Subscription {
	ch := make(chan Event, h.buffer)
	sub := &Subscription{C: ch, ch: ch, tables: make(map[string]struct{}, len(tables))}
	for _, t := range tables {
		if t != "" {
			sub.tables[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return sub
	}
	h.subs[sub] = struct{}{}

	metrics.RealtimeSubscribers.Inc()
	return sub
}

// Unsubscribe closes the subscription channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
	metrics.RealtimeSubscribers.Dec()
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.wants(ev.Table) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			metrics.RealtimeEventsDropped.Inc()
		}
	}
}

// Close ends every subscription so open streams can finish. Later
// subscriptions are born closed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.ch)
		metrics.RealtimeSubscribers.Dec()
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
