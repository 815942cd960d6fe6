package store

import "sync"

// Hub fans collection-change signals out to subscribers. Signals carry no
// payload: a subscriber reacts by refetching the full collection, which
// matches the storefront's original full-snapshot subscription semantics.
// Signals coalesce (buffered channel of one), so a rapid burst of writes
// may produce a single refetch.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[string]map[int]chan struct{}{}}
}

// Subscribe registers for change signals on a collection. The returned
// unsubscribe func must be called when the consumer goes away (SSE
// disconnect); it closes the channel.
func (h *Hub) Subscribe(collection string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++

	ch := make(chan struct{}, 1)
	if h.subs[collection] == nil {
		h.subs[collection] = map[int]chan struct{}{}
	}
	h.subs[collection][id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[collection][id]; ok {
			delete(h.subs[collection], id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Notify signals every subscriber of the collection without blocking.
func (h *Hub) Notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[collection] {
		select {
		case ch <- struct{}{}:
		default: // subscriber already has a pending signal
		}
	}
}
