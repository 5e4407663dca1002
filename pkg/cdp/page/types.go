// Package page provides the Page domain of the Command Layer: navigation,
// lifecycle events, and screenshot capture, per
// https://chromedevtools.github.io/devtools-protocol/tot/Page/.
package page

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

// FrameID uniquely identifies a frame within a page.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#type-FrameId
type FrameID string

// Frame describes one frame in the frame tree.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#type-Frame
type Frame struct {
	ID             FrameID `json:"id"`
	ParentID       string  `json:"parentId,omitempty"`
	LoaderID       string  `json:"loaderId"`
	Name           string  `json:"name,omitempty"`
	URL            string  `json:"url"`
	SecurityOrigin string  `json:"securityOrigin"`
	MimeType       string  `json:"mimeType"`
}

// NavigationEntry is one entry in a frame's navigation history.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#type-NavigationEntry
type NavigationEntry struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Viewport specifies a rectangle in page-relative CSS pixels, used by
// CaptureScreenshot's optional clip parameter.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Page/#type-Viewport
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale"`
}
