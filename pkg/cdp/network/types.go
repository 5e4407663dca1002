// Package network provides the Network domain of the Command Layer:
// request/response enable toggles, extra header injection, and response
// body retrieval for requests paired with Fetch domain interception, per
// https://chromedevtools.github.io/devtools-protocol/tot/Network/.
package network

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

// RequestID uniquely identifies a network request.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-RequestId
type RequestID string

// ResourceType is the resource type as perceived by the rendering engine.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-ResourceType
type ResourceType string

// ResourceType valid values used by this client.
const (
	ResourceTypeDocument ResourceType = "Document"
	ResourceTypeScript   ResourceType = "Script"
	ResourceTypeXHR      ResourceType = "XHR"
	ResourceTypeFetch    ResourceType = "Fetch"
	ResourceTypeOther    ResourceType = "Other"
)

// ErrorReason is a network level fetch failure reason.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-ErrorReason
type ErrorReason string

// ErrorReason valid values used by this client.
const (
	ErrorReasonFailed  ErrorReason = "Failed"
	ErrorReasonAborted ErrorReason = "Aborted"
)

// Initiator describes what triggered a request.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-Initiator
type Initiator struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Request is the HTTP request data carried by Network events.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-Request
type Request struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
}

// Response is the HTTP response data carried by Network events.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-Response
type Response struct {
	URL        string            `json:"url"`
	Status     int64             `json:"status"`
	StatusText string            `json:"statusText"`
	Headers    map[string]string `json:"headers"`
	MimeType   string            `json:"mimeType"`
}
