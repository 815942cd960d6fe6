package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recv(t *testing.T, ch <-chan struct{}) bool {
	t.Helper()
	select {
	case _, ok := <-ch:
		return ok
	case <-time.After(time.Second):
		return false
	}
}

func TestHubNotifySignalsSubscriber(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("orders")
	defer unsubscribe()

	hub.Notify("orders")

	assert.True(t, recv(t, ch))
}

func TestHubNotifyIsScopedToCollection(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("orders")
	defer unsubscribe()

	hub.Notify("products")

	select {
	case <-ch:
		t.Fatal("orders subscriber signaled by products write")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubSignalsCoalesce(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("orders")
	defer unsubscribe()

	for i := 0; i < 10; i++ {
		hub.Notify("orders")
	}

	assert.True(t, recv(t, ch), "burst collapses to at least one signal")
	select {
	case <-ch:
		t.Fatal("burst must coalesce to a single pending signal")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe("orders")

	unsubscribe()
	unsubscribe() // idempotent

	_, ok := <-ch
	assert.False(t, ok)

	// No panic notifying with no subscribers left.
	hub.Notify("orders")
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, u1 := hub.Subscribe("customers")
	ch2, u2 := hub.Subscribe("customers")
	defer u1()
	defer u2()

	hub.Notify("customers")

	assert.True(t, recv(t, ch1))
	assert.True(t, recv(t, ch2))
}
