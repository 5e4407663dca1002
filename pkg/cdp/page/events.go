package page

// LoadEventFired is the payload of a `Page.loadEventFired` event, issued
// once the page's load event fires.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#event-loadEventFired
type LoadEventFired struct {
	Timestamp float64 `json:"timestamp"`
}

// FrameNavigated is the payload of a `Page.frameNavigated` event, issued
// once a frame has navigated to a new URL.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#event-frameNavigated
type FrameNavigated struct {
	Frame Frame  `json:"frame"`
	Type  string `json:"type"`
}

// JavascriptDialogOpening is the payload of a
// `Page.javascriptDialogOpening` event, issued when a JavaScript
// initiated dialog (alert, confirm, prompt, or onbeforeunload) is about
// to open.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#event-javascriptDialogOpening
type JavascriptDialogOpening struct {
	URL           string `json:"url"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	DefaultPrompt string `json:"defaultPrompt,omitempty"`
}
