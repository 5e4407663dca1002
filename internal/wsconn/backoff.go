package wsconn

import (
	"context"
	"fmt"
	"time"

	"github.com/tgraves/cdpctl/internal/cdpconfig"
	"github.com/tgraves/cdpctl/internal/cdperr"
	"github.com/tgraves/cdpctl/internal/cdplog"
)

// BackoffConfig controls Reconnect's delay schedule:
// delay = Base * 2^(attempt-1), capped at Max, abandoned after MaxAttempts.
type BackoffConfig struct {
	Base        time.Duration
	Max         time.Duration
	MaxAttempts int
}

// DefaultBackoff is a conservative reconnect schedule for a local
// DevTools endpoint: half a second doubling up to 30 seconds, five
// attempts before giving up.
func DefaultBackoff() BackoffConfig {
	return BackoffConfig{Base: 500 * time.Millisecond, Max: 30 * time.Second, MaxAttempts: 5}
}

// Delay returns the backoff delay for the given 1-indexed attempt number.
func (b BackoffConfig) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			return b.Max
		}
	}
	if d > b.Max {
		return b.Max
	}
	return d
}

// Reconnector re-establishes a dropped Transport connection following
// BackoffConfig's schedule. It re-issues Runtime.enable after reconnecting
// to a page target, and reports exhaustion via cdperr.Connect so the
// Command Bus can fail pending commands instead of silently retrying
// forever.
type Reconnector struct {
	Addr    string
	Backoff BackoffConfig
	Log     cdplog.Logger
	DialOpt Options

	state *cdpconfig.ConnectionState
}

// NewReconnector builds a Reconnector bound to a shared connection-state
// tracker owned by the caller's Context.
func NewReconnector(addr string, backoff BackoffConfig, log cdplog.Logger, state *cdpconfig.ConnectionState) *Reconnector {
	if log == nil {
		log = cdplog.Discard()
	}
	return &Reconnector{Addr: addr, Backoff: backoff, Log: log, state: state}
}

// Reconnect attempts to re-dial target, retrying with exponential backoff
// up to Backoff.MaxAttempts times. On success it resets the attempt
// counter and, if target is a page endpoint, sends Runtime.enable over the
// new connection before returning it.
func (r *Reconnector) Reconnect(ctx context.Context, target TargetInfo) (*Conn, error) {
	var lastErr error
	for {
		attempt, exhausted := r.state.IncrementReconnectAttempts()
		if exhausted {
			return nil, cdperr.New(cdperr.Connect, fmt.Errorf("reconnect abandoned after %d attempts: %w", attempt-1, lastErr))
		}

		delay := r.Backoff.Delay(attempt)
		r.Log.Warn("reconnecting", "attempt", attempt, "delay", delay.String())
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		conn, err := Dial(ctx, r.Addr, DevToolsPath(target.WebSocketDebuggerURL), r.DialOpt)
		if err != nil {
			lastErr = err
			r.Log.Warn("reconnect attempt failed", "attempt", attempt, "error", err)
			continue
		}

		r.state.MarkConnected(target.ID)
		if target.IsPage() {
			if err := sendRuntimeEnable(conn); err != nil {
				r.Log.Warn("failed to re-enable runtime domain after reconnect", "error", err)
			}
		}
		return conn, nil
	}
}

// sendRuntimeEnable writes a bare Runtime.enable request frame directly,
// bypassing the Command Bus: at reconnect time no worker loop is
// necessarily running yet to drive a normal request/response cycle.
func sendRuntimeEnable(conn *Conn) error {
	const payload = `{"id":0,"method":"Runtime.enable","params":{}}`
	return conn.WriteText([]byte(payload))
}
