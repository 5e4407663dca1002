package fetch

// RequestPaused is the payload of a `Fetch.requestPaused` event, issued
// when the domain is enabled and a request matches one of the configured
// patterns. The request stays paused until the caller responds with
// ContinueRequest, FailRequest, or FulfillRequest.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#event-requestPaused
type RequestPaused struct {
	RequestID           RequestID     `json:"requestId"`
	Request             Request       `json:"request"`
	FrameID             string        `json:"frameId"`
	ResourceType        string        `json:"resourceType"`
	ResponseErrorReason string        `json:"responseErrorReason,omitempty"`
	ResponseStatusCode  int64         `json:"responseStatusCode,omitempty"`
	ResponseHeaders     []HeaderEntry `json:"responseHeaders,omitempty"`
	NetworkID           *RequestID    `json:"networkId,omitempty"`
}

// Request is the request data carried by a RequestPaused event, mirroring
// network.Request's wire shape without importing the network package.
// Importing it would not create a cycle (network never needs fetch), but
// duplicating this one small type keeps the domain packages independent
// of each other.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#type-Request
type Request struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
}
