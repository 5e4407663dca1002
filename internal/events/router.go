// Package events fans out unsolicited CDP events to subscribers, by
// event method name.
package events

import (
	"sync"

	"github.com/tgraves/cdpctl/internal/bus"
)

// Handler receives one unsolicited event message.
type Handler func(*bus.Message)

// subscription pairs a handler with the id Unsubscribe needs to remove it.
type subscription struct {
	id      int64
	handler Handler
}

// Router dispatches events synchronously, in subscriber-registration
// order, from whichever goroutine calls Dispatch (the async worker).
type Router struct {
	mu        sync.Mutex
	subs      map[string][]subscription
	nextSubID int64
}

// New constructs an empty Router.
func New() *Router {
	return &Router{subs: make(map[string][]subscription)}
}

// Subscribe registers handler for every event named method, returning a
// subscription id for a later Unsubscribe call.
func (r *Router) Subscribe(method string, handler Handler) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSubID++
	id := r.nextSubID
	r.subs[method] = append(r.subs[method], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a previously registered handler. It is a no-op if
// id is unknown.
func (r *Router) Unsubscribe(method string, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.subs[method]
	for i, s := range list {
		if s.id == id {
			r.subs[method] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event to every subscriber registered for its
// method, in registration order. Subscribers that panic are not
// recovered from: a misbehaving handler is a programming error the host
// should fix, not swallow.
func (r *Router) Dispatch(msg *bus.Message) {
	r.mu.Lock()
	list := make([]subscription, len(r.subs[msg.Method]))
	copy(list, r.subs[msg.Method])
	r.mu.Unlock()

	for _, s := range list {
		s.handler(msg)
	}
}

// SubscriberCount reports how many handlers are registered for method,
// mainly for tests and diagnostics.
func (r *Router) SubscriberCount(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[method])
}
