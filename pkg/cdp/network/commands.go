package network

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

// Enable turns on network request/response tracking, producing
// requestWillBeSent/responseReceived events.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#method-enable
type Enable struct {
	MaxTotalBufferSize    *int64 `json:"maxTotalBufferSize,omitempty"`
	MaxResourceBufferSize *int64 `json:"maxResourceBufferSize,omitempty"`
}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Network.enable", t, 0)
	return err
}

// Disable turns off network tracking.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#method-disable
type Disable struct{}

// NewDisable constructs a new Disable struct instance.
func NewDisable() *Disable { return &Disable{} }

// Do sends the Disable CDP command to a browser via c.
func (t *Disable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Network.disable", t, 0)
	return err
}

// SetExtraHTTPHeaders contains the parameters for the CDP command
// `setExtraHTTPHeaders`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#method-setExtraHTTPHeaders
type SetExtraHTTPHeaders struct {
	Headers map[string]string `json:"headers"`
}

// NewSetExtraHTTPHeaders constructs a new SetExtraHTTPHeaders struct
// instance with all the required parameters, and only them.
func NewSetExtraHTTPHeaders(headers map[string]string) *SetExtraHTTPHeaders {
	return &SetExtraHTTPHeaders{Headers: headers}
}

// Do sends the SetExtraHTTPHeaders CDP command to a browser via c.
func (t *SetExtraHTTPHeaders) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Network.setExtraHTTPHeaders", t, 0)
	return err
}

// GetResponseBody contains the parameters for the CDP command
// `getResponseBody`. Pairs naturally with Fetch's request interception:
// once a response is paused (or the corresponding request finished),
// this retrieves the body for inspection before `Fetch.fulfillRequest`
// rewrites or forwards it.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#method-getResponseBody
type GetResponseBody struct {
	RequestID RequestID `json:"requestId"`
}

// NewGetResponseBody constructs a new GetResponseBody struct instance
// with all the required parameters, and only them.
func NewGetResponseBody(requestID RequestID) *GetResponseBody {
	return &GetResponseBody{RequestID: requestID}
}

// GetResponseBodyResponse contains the browser's response to calling the
// GetResponseBody CDP command with Do().
type GetResponseBodyResponse struct {
	Body          string `json:"body"`
	Base64Encoded bool   `json:"base64Encoded"`
}

// Do sends the GetResponseBody CDP command to a browser via c.
func (t *GetResponseBody) Do(ctx context.Context, c Caller) (*GetResponseBodyResponse, error) {
	return do[GetResponseBodyResponse](ctx, c, "Network.getResponseBody", t, 0)
}
