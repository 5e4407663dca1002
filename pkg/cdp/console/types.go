// Package console provides the Console domain of the Command Layer:
// legacy console message reporting, per
// https://chromedevtools.github.io/devtools-protocol/tot/Console/.
package console

import (
	"context"
	"encoding/json"
	"time"
)

// Caller is the subset of *cdp.Client every command in this package
// needs.
type Caller interface {
	Call(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error)
}

// Message is one console message, per the event payload shape.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Console/#type-ConsoleMessage
type Message struct {
	Source string `json:"source"`
	Level  string `json:"level"`
	Text   string `json:"text"`
	URL    string `json:"url,omitempty"`
	Line   int64  `json:"line,omitempty"`
	Column int64  `json:"column,omitempty"`
}
