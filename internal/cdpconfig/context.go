package cdpconfig

import (
	"sync"
	"sync/atomic"
	"time"
)

// RuntimeState holds process-wide mutable state: a monotonically
// increasing correlation-id counter and the two readiness flags set by
// the transport handshake and the Page domain bootstrap.
type RuntimeState struct {
	nextID       int64
	runtimeReady atomic.Bool
	pageReady    atomic.Bool
}

// NextCorrelationID returns a fresh, unique, monotonically increasing
// correlation id for a new Async Command. It is safe for concurrent use.
func (s *RuntimeState) NextCorrelationID() int64 {
	return atomic.AddInt64(&s.nextID, 1)
}

// SetRuntimeReady records that Runtime.enable has completed for the
// current target.
func (s *RuntimeState) SetRuntimeReady(v bool) { s.runtimeReady.Store(v) }

// RuntimeReady reports whether Runtime.enable has completed.
func (s *RuntimeState) RuntimeReady() bool { return s.runtimeReady.Load() }

// SetPageReady records that Page.enable has completed for the current
// target.
func (s *RuntimeState) SetPageReady(v bool) { s.pageReady.Store(v) }

// PageReady reports whether Page.enable has completed.
func (s *RuntimeState) PageReady() bool { return s.pageReady.Load() }

// ConnectionState tracks the liveness of the current transport connection.
// Invariant: if Connected is true, TargetID is non-empty and the caller's
// transport handle is valid.
type ConnectionState struct {
	mu                sync.RWMutex
	connected         bool
	lastActivity      time.Time
	reconnectAttempts int
	maxReconnects     int
	targetID          string
}

// NewConnectionState constructs a ConnectionState with the given reconnect
// attempt ceiling.
func NewConnectionState(maxReconnects int) *ConnectionState {
	return &ConnectionState{maxReconnects: maxReconnects}
}

// MarkConnected records a successful (re)connection to the given target.
func (c *ConnectionState) MarkConnected(targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	c.targetID = targetID
	c.lastActivity = time.Now()
	c.reconnectAttempts = 0
}

// MarkDisconnected records a transport failure without resetting TargetID
// (a reconnect reuses the same target).
func (c *ConnectionState) MarkDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
}

// Touch updates the last-activity timestamp; called on every frame sent or
// received.
func (c *ConnectionState) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActivity = time.Now()
}

// Connected reports whether the transport is currently connected.
func (c *ConnectionState) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// TargetID returns the opaque target identifier of the current connection,
// or "" if none has ever been established.
func (c *ConnectionState) TargetID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targetID
}

// LastActivity returns the timestamp of the most recent frame sent or
// received.
func (c *ConnectionState) LastActivity() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastActivity
}

// IncrementReconnectAttempts records one more reconnect attempt and reports
// whether the caller has exhausted MaxReconnects.
func (c *ConnectionState) IncrementReconnectAttempts() (attempt int, exhausted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnectAttempts++
	return c.reconnectAttempts, c.reconnectAttempts > c.maxReconnects
}

// ResetReconnectAttempts clears the reconnect counter after a successful
// reconnection.
func (c *ConnectionState) ResetReconnectAttempts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnectAttempts = 0
}

// Hooks are optional lifecycle callbacks invoked from the async worker
// thread. Any of these may be nil.
type Hooks struct {
	OnConnect    func()
	OnDisconnect func()
	OnError      func(message string)
	OnEvent      func(rawEvent []byte)
}

func (h Hooks) fireConnect() {
	if h.OnConnect != nil {
		h.OnConnect()
	}
}

func (h Hooks) fireDisconnect() {
	if h.OnDisconnect != nil {
		h.OnDisconnect()
	}
}

// FireConnect invokes OnConnect if set.
func (h Hooks) FireConnect() { h.fireConnect() }

// FireDisconnect invokes OnDisconnect if set.
func (h Hooks) FireDisconnect() { h.fireDisconnect() }

// FireError invokes OnError if set.
func (h Hooks) FireError(message string) {
	if h.OnError != nil {
		h.OnError(message)
	}
}

// FireEvent invokes OnEvent if set.
func (h Hooks) FireEvent(rawEvent []byte) {
	if h.OnEvent != nil {
		h.OnEvent(rawEvent)
	}
}
