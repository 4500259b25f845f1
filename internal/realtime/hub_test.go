package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, h *Hub, q Query) (*Subscription, func() []Change) {
	t.Helper()
	var mu sync.Mutex
	var got []Change
	sub := h.Subscribe(context.Background(), q, func(c Change) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	})
	t.Cleanup(sub.Unsubscribe)
	return sub, func() []Change {
		mu.Lock()
		defer mu.Unlock()
		return append([]Change(nil), got...)
	}
}

func TestQueryMatches(t *testing.T) {
	c := Change{Collection: CollectionChats, DocID: "c1", Audience: []string{"alice", "bob"}}
	tests := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty query matches everything", Query{}, true},
		{"collection match", Query{Collection: CollectionChats}, true},
		{"collection mismatch", Query{Collection: CollectionSettlements}, false},
		{"document match", Query{Collection: CollectionChats, DocID: "c1"}, true},
		{"document mismatch", Query{DocID: "c2"}, false},
		{"member of audience", Query{UserID: "bob"}, true},
		{"outsider", Query{UserID: "mallory"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Matches(c))
		})
	}
}

func TestHub_DeliversInOrder(t *testing.T) {
	h := NewHub()
	_, got := collect(t, h, Query{Collection: CollectionSettlements, DocID: "s1"})

	for i := 0; i < 50; i++ {
		h.Publish(Change{Collection: CollectionSettlements, DocID: "s1", Kind: Modified, Doc: i})
	}
	h.Publish(Change{Collection: CollectionSettlements, DocID: "other", Kind: Modified})

	require.Eventually(t, func() bool { return len(got()) == 50 }, time.Second, 5*time.Millisecond)
	for i, c := range got() {
		assert.Equal(t, i, c.Doc)
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	var calls atomic.Int32
	sub := h.Subscribe(context.Background(), Query{}, func(Change) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
	})

	h.Publish(Change{Collection: CollectionChats}, Change{Collection: CollectionChats})
	sub.Unsubscribe()
	after := calls.Load()

	h.Publish(Change{Collection: CollectionChats})
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, calls.Load(), "no callbacks after Unsubscribe returns")
	assert.Equal(t, 0, h.Len())
	sub.Unsubscribe() // second call is harmless
}

func TestHub_ContextCancel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	sub := h.Subscribe(ctx, Query{}, func(Change) {})
	require.Equal(t, 1, h.Len())

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription did not stop after context cancel")
	}
	assert.Equal(t, 0, h.Len())
}

func TestHub_HandlerPanicDoesNotKillSubscription(t *testing.T) {
	h := NewHub()
	var calls atomic.Int32
	sub := h.Subscribe(context.Background(), Query{}, func(c Change) {
		calls.Add(1)
		if c.DocID == "boom" {
			panic("handler bug")
		}
	})
	defer sub.Unsubscribe()

	h.Publish(Change{DocID: "boom"}, Change{DocID: "fine"})
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}
