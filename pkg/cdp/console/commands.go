package console

import (
	"context"
	"encoding/json"
	"time"
)

func do[T any](ctx context.Context, c Caller, method string, cmd any, timeout time.Duration) (*T, error) {
	raw, err := c.Call(ctx, method, cmd, timeout)
	if err != nil {
		return nil, err
	}
	var resp T
	if len(raw) == 0 {
		return &resp, nil
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Enable turns on console domain reporting: the browser replays every
// message collected so far as `messageAdded` events, then streams new
// ones as they occur.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Console/#method-enable
type Enable struct{}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Console.enable", t, 0)
	return err
}

// Disable turns off console domain reporting.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Console/#method-disable
type Disable struct{}

// NewDisable constructs a new Disable struct instance.
func NewDisable() *Disable { return &Disable{} }

// Do sends the Disable CDP command to a browser via c.
func (t *Disable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Console.disable", t, 0)
	return err
}

// ClearMessages discards messages collected so far by the console
// domain; does not clear the browser's console itself.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Console/#method-clearMessages
type ClearMessages struct{}

// NewClearMessages constructs a new ClearMessages struct instance.
func NewClearMessages() *ClearMessages { return &ClearMessages{} }

// Do sends the ClearMessages CDP command to a browser via c.
func (t *ClearMessages) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Console.clearMessages", t, 0)
	return err
}
