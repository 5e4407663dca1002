package network

// RequestWillBeSent is the payload of a `Network.requestWillBeSent` event,
// fired before a request is sent.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#event-requestWillBeSent
type RequestWillBeSent struct {
	RequestID   RequestID `json:"requestId"`
	LoaderID    string    `json:"loaderId"`
	DocumentURL string    `json:"documentURL"`
	Request     Request   `json:"request"`
	Timestamp   float64   `json:"timestamp"`
	Initiator   Initiator `json:"initiator"`
	Type        string    `json:"type,omitempty"`
	FrameID     string    `json:"frameId,omitempty"`
}

// ResponseReceived is the payload of a `Network.responseReceived` event,
// fired once HTTP response headers are available.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#event-responseReceived
type ResponseReceived struct {
	RequestID RequestID `json:"requestId"`
	LoaderID  string    `json:"loaderId"`
	Timestamp float64   `json:"timestamp"`
	Type      string    `json:"type"`
	Response  Response  `json:"response"`
	FrameID   string    `json:"frameId,omitempty"`
}

// LoadingFinished is the payload of a `Network.loadingFinished` event.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#event-loadingFinished
type LoadingFinished struct {
	RequestID         RequestID `json:"requestId"`
	Timestamp         float64   `json:"timestamp"`
	EncodedDataLength float64   `json:"encodedDataLength"`
}

// LoadingFailed is the payload of a `Network.loadingFailed` event.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Network/#event-loadingFailed
type LoadingFailed struct {
	RequestID RequestID `json:"requestId"`
	Timestamp float64   `json:"timestamp"`
	Type      string    `json:"type"`
	ErrorText string    `json:"errorText"`
	Canceled  bool      `json:"canceled,omitempty"`
}
