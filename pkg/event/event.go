// Package event is the in-process dispatcher behind store mutations. Services
// fire "<entity>.<action>" events ("order.created", "inventory.low_stock");
// app/listeners fans them out to the notification feed, the websocket hub and
// the webhook queue.
package event

import (
	"sync"
)

// Handler receives an event payload. For mutation events the payload is the
// record pointer (delete passes the id).
type Handler func(payload any)

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name. Handlers run in
// registration order.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners. The
// handler slice is copied under the read lock so a listener may itself call
// Listen.
func Fire(event string, payload any) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently and returns
// without waiting for them.
func FireAsync(event string, payload any) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// Flush removes all listeners. Tests use it to isolate event wiring.
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
