package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationSubmitted = "application_submitted"
	ApplicationApproved  = "application_approved"
	ApplicationRejected  = "application_rejected"
)

type Event struct {
	Type    string         `json:"type"`
	ScoutID uuid.UUID      `json:"scout_id"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Fanout publishes every event to each of its publishers in order.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) {
	for _, p := range f {
		if p != nil {
			p.Publish(ctx, event)
		}
	}
}

type Subscriber struct {
	C       chan Event
	scoutID uuid.UUID
	isAdmin bool
}

func (s *Subscriber) wants(event Event) bool {
	return s.isAdmin || event.ScoutID == s.scoutID
}

// Hub delivers events to live subscribers. Admins see every event, scouts only
// their own. A subscriber whose buffer is full is dropped.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	buffer      int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		buffer:      buffer,
	}
}

func (h *Hub) Subscribe(scoutID uuid.UUID, isAdmin bool) *Subscriber {
	s := &Subscriber{
		C:       make(chan Event, h.buffer),
		scoutID: scoutID,
		isAdmin: isAdmin,
	}

	h.mu.Lock()
	h.subscribers[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.C)
	}
}

func (h *Hub) Publish(_ context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subscribers {
		if !s.wants(event) {
			continue
		}
		select {
		case s.C <- event:
		default:
			delete(h.subscribers, s)
			close(s.C)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subscribers {
		delete(h.subscribers, s)
		close(s.C)
	}
}
