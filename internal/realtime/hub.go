// Package realtime delivers document changes from the store to subscribers.
//
// The Hub is the observer side of the document store: every committed write
// publishes a Change, and every Subscription whose Query matches receives it on
// its own goroutine, in publish order. Derived state (settlement progress, chat
// unread flags) is recomputed by the subscriber from the delivered document.
package realtime

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/mmynk/pointwallet/internal/metrics"
)

// Collections published by the store.
const (
	CollectionUsers       = "users"
	CollectionSettlements = "settlements"
	CollectionChats       = "chats"
	CollectionMessages    = "messages"
	CollectionRequests    = "requests"
)

// ChangeKind mirrors the added/modified/removed deltas of a query stream.
type ChangeKind string

const (
	Added    ChangeKind = "added"
	Modified ChangeKind = "modified"
	Removed  ChangeKind = "removed"
)

// Change is one document delta.
type Change struct {
	Collection string
	DocID      string
	Kind       ChangeKind
	Doc        any
	// Audience lists the user IDs allowed to observe the change.
	Audience []string
}

// Query selects the changes a subscriber receives. Empty fields match anything.
// A non-empty UserID restricts delivery to changes whose Audience contains it.
type Query struct {
	Collection string
	DocID      string
	UserID     string
}

// Matches reports whether c should be delivered for q.
func (q Query) Matches(c Change) bool {
	if q.Collection != "" && q.Collection != c.Collection {
		return false
	}
	if q.DocID != "" && q.DocID != c.DocID {
		return false
	}
	if q.UserID != "" && !slices.Contains(c.Audience, q.UserID) {
		return false
	}
	return true
}

// Handler receives changes for one subscription. Calls never overlap.
type Handler func(Change)

// Hub fans out changes to subscriptions.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*Subscription)}
}

// Publish enqueues changes for every matching subscription. It never blocks
// on slow handlers.
func (h *Hub) Publish(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		for _, c := range changes {
			if sub.query.Matches(c) {
				sub.enqueue(c)
			}
		}
	}
}

// Subscribe registers handler for changes matching q. The subscription ends
// when ctx is cancelled or Unsubscribe is called.
func (h *Hub) Subscribe(ctx context.Context, q Query, handler Handler) *Subscription {
	sub := &Subscription{
		hub:     h,
		query:   q,
		handler: handler,
		signal:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	h.nextID++
	sub.id = h.nextID
	h.subs[sub.id] = sub
	h.mu.Unlock()

	metrics.SubscriberAdded()
	go sub.run()
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				sub.Unsubscribe()
			case <-sub.stop:
			}
		}()
	}
	return sub
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) remove(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[id]; !ok {
		return false
	}
	delete(h.subs, id)
	return true
}

// Subscription is a live registration on a Hub.
type Subscription struct {
	id      uint64
	hub     *Hub
	query   Query
	handler Handler

	mu      sync.Mutex
	pending []Change
	signal  chan struct{}

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Query returns the subscription's query.
func (s *Subscription) Query() Query { return s.query }

func (s *Subscription) enqueue(c Change) {
	s.mu.Lock()
	s.pending = append(s.pending, c)
	s.mu.Unlock()
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Subscription) run() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case <-s.signal:
		}
		for {
			s.mu.Lock()
			if len(s.pending) == 0 {
				s.mu.Unlock()
				break
			}
			batch := s.pending
			s.pending = nil
			s.mu.Unlock()

			for _, c := range batch {
				select {
				case <-s.stop:
					return
				default:
				}
				s.deliver(c)
			}
		}
	}
}

func (s *Subscription) deliver(c Change) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("realtime handler panicked", "collection", c.Collection, "doc", c.DocID, "panic", r)
		}
	}()
	s.handler(c)
}

// Unsubscribe stops delivery. When it returns no further callbacks will run.
// It must not be called from inside the subscription's own handler; use
// Cancel there instead.
func (s *Subscription) Unsubscribe() {
	s.Cancel()
	<-s.done
}

// Cancel stops delivery without waiting for an in-flight callback.
func (s *Subscription) Cancel() {
	s.stopOnce.Do(func() {
		if s.hub.remove(s.id) {
			metrics.SubscriberRemoved()
		}
		close(s.stop)
	})
}

// Done is closed once the delivery goroutine has exited.
func (s *Subscription) Done() <-chan struct{} { return s.done }
