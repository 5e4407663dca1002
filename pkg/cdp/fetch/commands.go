package fetch

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

// Enable turns on request interception: matching requests are paused
// until the caller calls ContinueRequest, FailRequest, or FulfillRequest.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#method-enable
type Enable struct {
	Patterns []RequestPattern `json:"patterns,omitempty"`
}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// SetPatterns adds or modifies the optional `patterns` parameter. If
// unset, every request is intercepted.
func (t *Enable) SetPatterns(v []RequestPattern) *Enable {
	t.Patterns = v
	return t
}

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Fetch.enable", t, 0)
	return err
}

// Disable turns off request interception.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#method-disable
type Disable struct{}

// NewDisable constructs a new Disable struct instance.
func NewDisable() *Disable { return &Disable{} }

// Do sends the Disable CDP command to a browser via c.
func (t *Disable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Fetch.disable", t, 0)
	return err
}

// ContinueRequest contains the parameters for the CDP command
// `continueRequest`: it lets a paused request proceed, optionally
// modifying it in flight.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#method-continueRequest
type ContinueRequest struct {
	RequestID RequestID     `json:"requestId"`
	URL       string        `json:"url,omitempty"`
	Method    string        `json:"method,omitempty"`
	PostData  string        `json:"postData,omitempty"`
	Headers   []HeaderEntry `json:"headers,omitempty"`
}

// NewContinueRequest constructs a new ContinueRequest struct instance with
// all the required parameters, and only them.
func NewContinueRequest(requestID RequestID) *ContinueRequest {
	return &ContinueRequest{RequestID: requestID}
}

// SetURL adds or modifies the optional `url` parameter.
func (t *ContinueRequest) SetURL(v string) *ContinueRequest {
	t.URL = v
	return t
}

// SetMethod adds or modifies the optional `method` parameter.
func (t *ContinueRequest) SetMethod(v string) *ContinueRequest {
	t.Method = v
	return t
}

// SetHeaders adds or modifies the optional `headers` parameter.
func (t *ContinueRequest) SetHeaders(v []HeaderEntry) *ContinueRequest {
	t.Headers = v
	return t
}

// Do sends the ContinueRequest CDP command to a browser via c.
func (t *ContinueRequest) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Fetch.continueRequest", t, 0)
	return err
}

// FailRequest contains the parameters for the CDP command `failRequest`:
// it causes a paused request to fail with the given network error reason.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#method-failRequest
type FailRequest struct {
	RequestID   RequestID `json:"requestId"`
	ErrorReason string    `json:"errorReason"`
}

// NewFailRequest constructs a new FailRequest struct instance with all
// the required parameters, and only them.
func NewFailRequest(requestID RequestID, errorReason string) *FailRequest {
	return &FailRequest{RequestID: requestID, ErrorReason: errorReason}
}

// Do sends the FailRequest CDP command to a browser via c.
func (t *FailRequest) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Fetch.failRequest", t, 0)
	return err
}

// FulfillRequest contains the parameters for the CDP command
// `fulfillRequest`: it supplies a synthetic response for a paused
// request instead of letting it reach the network.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#method-fulfillRequest
type FulfillRequest struct {
	RequestID       RequestID     `json:"requestId"`
	ResponseCode    int64         `json:"responseCode"`
	ResponseHeaders []HeaderEntry `json:"responseHeaders,omitempty"`
	Body            string        `json:"body,omitempty"`
	ResponsePhrase  string        `json:"responsePhrase,omitempty"`
}

// NewFulfillRequest constructs a new FulfillRequest struct instance with
// all the required parameters, and only them.
func NewFulfillRequest(requestID RequestID, responseCode int64) *FulfillRequest {
	return &FulfillRequest{RequestID: requestID, ResponseCode: responseCode}
}

// SetResponseHeaders adds or modifies the optional `responseHeaders`
// parameter.
func (t *FulfillRequest) SetResponseHeaders(v []HeaderEntry) *FulfillRequest {
	t.ResponseHeaders = v
	return t
}

// SetBody adds or modifies the optional `body` parameter. Per the
// protocol this is base64-encoded; callers are responsible for encoding
// it before calling Do.
func (t *FulfillRequest) SetBody(v string) *FulfillRequest {
	t.Body = v
	return t
}

// Do sends the FulfillRequest CDP command to a browser via c.
func (t *FulfillRequest) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Fetch.fulfillRequest", t, 0)
	return err
}
