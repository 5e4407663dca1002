package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tgraves/cdpctl/internal/bus"
)

func TestDispatchDeliversInRegistrationOrder(t *testing.T) {
	r := New()
	var order []int
	r.Subscribe("Page.loadEventFired", func(*bus.Message) { order = append(order, 1) })
	r.Subscribe("Page.loadEventFired", func(*bus.Message) { order = append(order, 2) })
	r.Subscribe("Page.loadEventFired", func(*bus.Message) { order = append(order, 3) })

	r.Dispatch(&bus.Message{Method: "Page.loadEventFired"})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDispatchOnlyNotifiesMatchingMethod(t *testing.T) {
	r := New()
	var fired bool
	r.Subscribe("Network.requestWillBeSent", func(*bus.Message) { fired = true })

	r.Dispatch(&bus.Message{Method: "Page.loadEventFired"})
	assert.False(t, fired)

	r.Dispatch(&bus.Message{Method: "Network.requestWillBeSent"})
	assert.True(t, fired)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	r := New()
	var count int
	id := r.Subscribe("Page.loadEventFired", func(*bus.Message) { count++ })

	r.Dispatch(&bus.Message{Method: "Page.loadEventFired"})
	assert.Equal(t, 1, count)

	r.Unsubscribe("Page.loadEventFired", id)
	r.Dispatch(&bus.Message{Method: "Page.loadEventFired"})
	assert.Equal(t, 1, count)
}

func TestSubscriberCount(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.SubscriberCount("Page.loadEventFired"))
	r.Subscribe("Page.loadEventFired", func(*bus.Message) {})
	r.Subscribe("Page.loadEventFired", func(*bus.Message) {})
	assert.Equal(t, 2, r.SubscriberCount("Page.loadEventFired"))
}
