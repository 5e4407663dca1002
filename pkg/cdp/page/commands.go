package page

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

// Enable turns on page domain notifications (load, frame navigation,
// dialogs).
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-enable
type Enable struct{}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Page.enable", t, 0)
	return err
}

// AddScriptToEvaluateOnNewDocument contains the parameters for the CDP
// command `addScriptToEvaluateOnNewDocument`: it registers source to run
// in every new document the page creates, before any of the document's
// own scripts.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-addScriptToEvaluateOnNewDocument
type AddScriptToEvaluateOnNewDocument struct {
	Source string `json:"source"`
}

// NewAddScriptToEvaluateOnNewDocument constructs a new
// AddScriptToEvaluateOnNewDocument struct instance with all the required
// parameters, and only them.
func NewAddScriptToEvaluateOnNewDocument(source string) *AddScriptToEvaluateOnNewDocument {
	return &AddScriptToEvaluateOnNewDocument{Source: source}
}

// AddScriptToEvaluateOnNewDocumentResponse contains the browser's
// response to calling the AddScriptToEvaluateOnNewDocument CDP command
// with Do(): an identifier the caller could pass to
// Page.removeScriptToEvaluateOnNewDocument (not implemented here).
type AddScriptToEvaluateOnNewDocumentResponse struct {
	Identifier string `json:"identifier"`
}

// Do sends the AddScriptToEvaluateOnNewDocument CDP command to a browser
// via c.
func (t *AddScriptToEvaluateOnNewDocument) Do(ctx context.Context, c Caller) (*AddScriptToEvaluateOnNewDocumentResponse, error) {
	return do[AddScriptToEvaluateOnNewDocumentResponse](ctx, c, "Page.addScriptToEvaluateOnNewDocument", t, 0)
}

// Navigate contains the parameters for the CDP command `navigate`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-navigate
type Navigate struct {
	URL            string `json:"url"`
	Referrer       string `json:"referrer,omitempty"`
	TransitionType string `json:"transitionType,omitempty"`
	FrameID        string `json:"frameId,omitempty"`
}

// NewNavigate constructs a new Navigate struct instance with all the
// required parameters, and only them.
func NewNavigate(url string) *Navigate {
	return &Navigate{URL: url}
}

// SetReferrer adds or modifies the optional `referrer` parameter.
func (t *Navigate) SetReferrer(v string) *Navigate {
	t.Referrer = v
	return t
}

// NavigateResponse contains the browser's response to calling the
// Navigate CDP command with Do().
type NavigateResponse struct {
	FrameID   FrameID `json:"frameId"`
	LoaderID  string  `json:"loaderId,omitempty"`
	ErrorText string  `json:"errorText,omitempty"`
}

// Do sends the Navigate CDP command to a browser via c.
func (t *Navigate) Do(ctx context.Context, c Caller) (*NavigateResponse, error) {
	return do[NavigateResponse](ctx, c, "Page.navigate", t, 0)
}

// Reload contains the parameters for the CDP command `reload`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-reload
type Reload struct {
	IgnoreCache            bool   `json:"ignoreCache,omitempty"`
	ScriptToEvaluateOnLoad string `json:"scriptToEvaluateOnLoad,omitempty"`
}

// NewReload constructs a new Reload struct instance.
func NewReload() *Reload { return &Reload{} }

// SetIgnoreCache adds or modifies the optional `ignoreCache` parameter.
func (t *Reload) SetIgnoreCache(v bool) *Reload {
	t.IgnoreCache = v
	return t
}

// Do sends the Reload CDP command to a browser via c.
func (t *Reload) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Page.reload", t, 0)
	return err
}

// Close closes the page (tab).
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-close
type Close struct{}

// NewClose constructs a new Close struct instance.
func NewClose() *Close { return &Close{} }

// Do sends the Close CDP command to a browser via c.
func (t *Close) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Page.close", t, 0)
	return err
}

// GetNavigationHistory contains no parameters for the CDP command
// `getNavigationHistory`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-getNavigationHistory
type GetNavigationHistory struct{}

// NewGetNavigationHistory constructs a new GetNavigationHistory struct instance.
func NewGetNavigationHistory() *GetNavigationHistory { return &GetNavigationHistory{} }

// GetNavigationHistoryResponse contains the browser's response to calling
// the GetNavigationHistory CDP command with Do().
type GetNavigationHistoryResponse struct {
	CurrentIndex int64             `json:"currentIndex"`
	Entries      []NavigationEntry `json:"entries"`
}

// Do sends the GetNavigationHistory CDP command to a browser via c.
func (t *GetNavigationHistory) Do(ctx context.Context, c Caller) (*GetNavigationHistoryResponse, error) {
	return do[GetNavigationHistoryResponse](ctx, c, "Page.getNavigationHistory", t, 0)
}

// CaptureScreenshot contains the parameters for the CDP command
// `captureScreenshot`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#method-captureScreenshot
type CaptureScreenshot struct {
	Format      string    `json:"format,omitempty"`
	Quality     *int64    `json:"quality,omitempty"`
	Clip        *Viewport `json:"clip,omitempty"`
	FromSurface bool      `json:"fromSurface,omitempty"`
}

// NewCaptureScreenshot constructs a new CaptureScreenshot struct instance.
func NewCaptureScreenshot() *CaptureScreenshot { return &CaptureScreenshot{} }

// SetFormat adds or modifies the optional `format` parameter ("jpeg" or "png").
func (t *CaptureScreenshot) SetFormat(v string) *CaptureScreenshot {
	t.Format = v
	return t
}

// SetQuality adds or modifies the optional `quality` parameter (jpeg only, 0-100).
func (t *CaptureScreenshot) SetQuality(v int64) *CaptureScreenshot {
	t.Quality = &v
	return t
}

// SetClip adds or modifies the optional `clip` parameter.
func (t *CaptureScreenshot) SetClip(v Viewport) *CaptureScreenshot {
	t.Clip = &v
	return t
}

// CaptureScreenshotResponse contains the browser's response to calling
// the CaptureScreenshot CDP command with Do(): base64-encoded image data.
type CaptureScreenshotResponse struct {
	Data string `json:"data"`
}

// Do sends the CaptureScreenshot CDP command to a browser via c.
func (t *CaptureScreenshot) Do(ctx context.Context, c Caller) (*CaptureScreenshotResponse, error) {
	return do[CaptureScreenshotResponse](ctx, c, "Page.captureScreenshot", t, 0)
}
