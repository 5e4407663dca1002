package bus

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndResolveInvokesCallbackOnce(t *testing.T) {
	b := New(4, nil)
	var calls int
	var gotResp *Message
	var gotErr error

	raw, err := b.Submit(1, "Runtime.evaluate", json.RawMessage(`{"expression":"1+1"}`), time.Second, func(resp *Message, err error) {
		calls++
		gotResp, gotErr = resp, err
	})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Runtime.evaluate"`)

	b.MarkSent(1)
	ok := b.Resolve(&Message{ID: 1, Result: json.RawMessage(`{"result":{"value":2}}`)})
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.NoError(t, gotErr)
	assert.Equal(t, int64(1), gotResp.ID)

	// Resolving the same id again must not re-invoke the callback.
	ok = b.Resolve(&Message{ID: 1})
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestSubmitRejectsWhenFull(t *testing.T) {
	b := New(1, nil)
	_, err := b.Submit(1, "Page.enable", nil, time.Second, func(*Message, error) {})
	require.NoError(t, err)

	_, err = b.Submit(2, "Page.enable", nil, time.Second, func(*Message, error) {})
	require.Error(t, err)
}

func TestResolveWithProtocolErrorMarksFailed(t *testing.T) {
	b := New(4, nil)
	var gotErr error
	_, err := b.Submit(1, "DOM.describeNode", nil, time.Second, func(_ *Message, err error) {
		gotErr = err
	})
	require.NoError(t, err)

	b.Resolve(&Message{ID: 1, Error: &Error{Code: -32000, Message: "no such node"}})
	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), "no such node")

	_, _, failed := b.Stats()
	assert.Equal(t, 1, failed)
}

func TestSweepTimeoutsFiresForExpiredCommands(t *testing.T) {
	b := New(4, nil)
	var timedOut bool
	_, err := b.Submit(1, "Page.navigate", nil, time.Millisecond, func(_ *Message, err error) {
		timedOut = err != nil
	})
	require.NoError(t, err)
	b.MarkSent(1)

	n := b.SweepTimeouts(time.Now().Add(time.Second))
	assert.Equal(t, 1, n)
	assert.True(t, timedOut)

	pending, _, _ := b.Stats()
	assert.Equal(t, 0, pending)
}

func TestSweepTimeoutsIgnoresZeroTimeout(t *testing.T) {
	b := New(4, nil)
	_, err := b.Submit(1, "Page.navigate", nil, 0, func(*Message, error) {})
	require.NoError(t, err)
	b.MarkSent(1)

	n := b.SweepTimeouts(time.Now().Add(time.Hour))
	assert.Equal(t, 0, n)
}

func TestSweepTimeoutsNeverRetiresACommandStillPending(t *testing.T) {
	b := New(4, nil)
	_, err := b.Submit(1, "Page.navigate", nil, time.Millisecond, func(*Message, error) {})
	require.NoError(t, err)

	n := b.SweepTimeouts(time.Now().Add(time.Hour))
	assert.Equal(t, 0, n)

	pending, _, _ := b.Stats()
	assert.Equal(t, 1, pending)
}

func TestFailAllResolvesEveryInFlightCommand(t *testing.T) {
	b := New(4, nil)
	var n int
	for i := int64(1); i <= 3; i++ {
		_, err := b.Submit(i, "Runtime.evaluate", nil, time.Hour, func(_ *Message, err error) {
			if err != nil {
				n++
			}
		})
		require.NoError(t, err)
	}

	failed := b.FailAll(assert.AnError)
	assert.Equal(t, 3, failed)
	assert.Equal(t, 3, n)

	pending, _, _ := b.Stats()
	assert.Equal(t, 0, pending)
}

func TestPendingRequestsOnlyReturnsUnsentCommands(t *testing.T) {
	b := New(4, nil)
	_, err := b.Submit(1, "Page.enable", nil, time.Hour, func(*Message, error) {})
	require.NoError(t, err)
	_, err = b.Submit(2, "Runtime.enable", nil, time.Hour, func(*Message, error) {})
	require.NoError(t, err)

	b.MarkSent(1)

	pendingRaw := b.PendingRequests()
	assert.Len(t, pendingRaw, 1)
	_, ok := pendingRaw[2]
	assert.True(t, ok)
}
