// Package cdperr defines the error taxonomy shared by every component of
// the CDP client runtime: Process Registry, WebSocket Transport, Command
// Bus, and Command Layer all wrap their failures in a *cdperr.Error so
// callers can classify failures with errors.Is / errors.As without caring
// which component raised them.
package cdperr

import "fmt"

// Kind is a closed taxonomy of error categories. It is a classification,
// not a type hierarchy: two unrelated failures in different components can
// share a Kind.
type Kind string

const (
	InvalidArgs          Kind = "invalid_args"
	Connect              Kind = "connect"
	Handshake            Kind = "handshake"
	Transport            Kind = "transport"
	Timeout              Kind = "timeout"
	QueueFull            Kind = "queue_full"
	InstanceLimitReached Kind = "instance_limit_reached"
	PortConflict         Kind = "port_conflict"
	LaunchFailed         Kind = "launch_failed"
	KillFailed           Kind = "kill_failed"
	CleanupFailed        Kind = "cleanup_failed"
	Protocol             Kind = "protocol"
	Memory               Kind = "memory"
)

// Error wraps an underlying cause with a Kind and, where applicable, the
// correlation id of the Async Command that failed.
type Error struct {
	Kind          Kind
	CorrelationID int64 // 0 if not associated with a pending command
	Err           error
}

func (e *Error) Error() string {
	if e.CorrelationID != 0 {
		return fmt.Sprintf("%s: id=%d: %v", e.Kind, e.CorrelationID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error with no associated correlation id.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// NewWithID constructs an *Error tied to a specific command correlation id.
func NewWithID(kind Kind, id int64, err error) *Error {
	return &Error{Kind: kind, CorrelationID: id, Err: err}
}

// Is reports whether err carries the given Kind. It allows callers to write
// `if cdperr.Is(err, cdperr.Timeout) { ... }` instead of type-asserting.
func Is(err error, kind Kind) bool {
	for err != nil {
		if ce, ok := err.(*Error); ok {
			if ce.Kind == kind {
				return true
			}
			err = ce.Err
			continue
		}
		break
	}
	return false
}
