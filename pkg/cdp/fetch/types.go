// Package fetch provides the Fetch domain of the Command Layer: request
// interception, allowing an operator to inspect, rewrite, or fail requests
// before the browser completes them, per
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/.
package fetch

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

// RequestID uniquely identifies a paused request.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#type-RequestId
type RequestID string

// RequestStage is the stage of the request lifecycle at which
// interception occurs.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#type-RequestStage
type RequestStage string

// RequestStage valid values.
const (
	RequestStageRequest  RequestStage = "Request"
	RequestStageResponse RequestStage = "Response"
)

// RequestPattern selects which requests are paused for interception.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#type-RequestPattern
type RequestPattern struct {
	URLPattern   string `json:"urlPattern,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	RequestStage string `json:"requestStage,omitempty"`
}

// HeaderEntry is one HTTP header name/value pair.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#type-HeaderEntry
type HeaderEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
