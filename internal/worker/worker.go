// Package worker implements the async worker: a single goroutine per
// connection that drains pending commands onto the transport, polls for
// inbound frames, and sweeps timed-out commands.
package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tgraves/cdpctl/internal/bus"
	"github.com/tgraves/cdpctl/internal/cdplog"
	"github.com/tgraves/cdpctl/internal/events"
)

// pollInterval is how often the worker polls the transport for
// readability and sweeps the bus for timed-out commands.
const pollInterval = 100 * time.Millisecond

// conn is the subset of *wsconn.Conn the worker needs; declared as an
// interface so tests can drive the loop against a fake transport.
type conn interface {
	Read() ([]byte, error)
	WriteText([]byte) error
	Probe() bool
}

// Worker drains a Bus onto a Conn and dispatches inbound events to a
// Router, one read/write cycle at a time.
type Worker struct {
	conn   conn
	bus    *bus.Bus
	router *events.Router
	log    cdplog.Logger

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	mu      sync.Mutex
	running bool
}

// New constructs a Worker. log may be nil (defaults to a discard logger).
func New(c conn, b *bus.Bus, r *events.Router, log cdplog.Logger) *Worker {
	if log == nil {
		log = cdplog.Discard()
	}
	return &Worker{
		conn:   c,
		bus:    b,
		router: r,
		log:    log,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Wake nudges the worker to check for pending commands immediately,
// instead of waiting out the rest of the current poll interval.
func (w *Worker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Stop signals the worker loop to exit and blocks until it has.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	close(w.stop)
	<-w.done
}

// Run drives the worker loop until ctx is canceled or Stop is called.
// It is meant to be launched as `go worker.Run(ctx)`.
func (w *Worker) Run(ctx context.Context) {
	w.mu.Lock()
	w.running = true
	w.mu.Unlock()
	defer close(w.done)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-w.wake:
		case <-ticker.C:
		}
		w.tick()
	}
}

// tick performs one iteration of the send / poll / dispatch / sweep
// cycle.
func (w *Worker) tick() {
	w.sendPending()

	if w.conn.Probe() {
		raw, err := w.conn.Read()
		if err != nil {
			w.log.Warn("transport read failed", "error", err)
		} else {
			w.handleInbound(raw)
		}
	}

	if n := w.bus.SweepTimeouts(time.Now()); n > 0 {
		w.log.Debug("swept timed-out commands", "count", n)
	}
}

// sendPending writes every still-pending command to the transport,
// retrying exactly once on a write failure. A command that still can't
// be written after the retry is retired as failed rather than left
// pending to time out later.
func (w *Worker) sendPending() {
	for id, raw := range w.bus.PendingRequests() {
		err := w.conn.WriteText(raw)
		if err != nil {
			err = w.conn.WriteText(raw) // one bounded retry
		}
		if err != nil {
			w.log.Warn("failed to send command after retry", "id", id, "error", err)
			w.bus.Fail(id, err)
			continue
		}
		w.bus.MarkSent(id)
	}
}

// handleInbound parses one inbound frame and routes it as either a
// solicited response (resolved against the Bus) or an unsolicited event
// (dispatched through the Router).
func (w *Worker) handleInbound(raw []byte) {
	var msg bus.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		w.log.Warn("failed to parse inbound message", "error", err)
		return
	}
	if msg.IsEvent() {
		w.router.Dispatch(&msg)
		return
	}
	w.bus.Resolve(&msg)
}
