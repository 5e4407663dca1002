package wsconn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TargetInfo is the subset of the /json/list and /json/new response shape
// that the transport needs to pick a debugger WebSocket URL. The client
// discovers targets over plain HTTP rather than multiplexing a Target
// domain session in-band.
type TargetInfo struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	Title                string `json:"title"`
	URL                  string `json:"url"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// IsPage reports whether the target is a renderable page endpoint, the
// only kind that receives an automatic Runtime.enable after handshake.
func (t TargetInfo) IsPage() bool { return t.Type == "page" }

// ListTargets queries the browser's HTTP debugging endpoint for all open
// targets, grounded on the same "/json/list" convention daabr-chrome-vision
// uses to discover a page to attach to.
func ListTargets(ctx context.Context, host string, port int) ([]TargetInfo, error) {
	return fetchTargets(ctx, fmt.Sprintf("http://%s:%d/json/list", host, port))
}

// NewTarget asks the browser to open a fresh page target (optionally
// navigating it to url) and returns its descriptor, grounded on the
// "/json/new" endpoint of the same HTTP surface.
func NewTarget(ctx context.Context, host string, port int, url string) (TargetInfo, error) {
	endpoint := fmt.Sprintf("http://%s:%d/json/new", host, port)
	if url != "" {
		endpoint += "?" + url
	}
	targets, err := fetchTargets(ctx, endpoint)
	if err != nil {
		return TargetInfo{}, err
	}
	if len(targets) == 0 {
		return TargetInfo{}, fmt.Errorf("transport: /json/new returned no target")
	}
	return targets[0], nil
}

func fetchTargets(ctx context.Context, endpoint string) ([]TargetInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: discovery request: %w", err)
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: discovery: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: discovery: unexpected status %s", resp.Status)
	}

	dec := json.NewDecoder(resp.Body)
	// /json/new replies with a single object; /json/list with an array.
	var targets []TargetInfo
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("transport: discovery: decode: %w", err)
	}
	if delim, ok := tok.(json.Delim); ok && delim == '[' {
		for dec.More() {
			var t TargetInfo
			if err := dec.Decode(&t); err != nil {
				return nil, fmt.Errorf("transport: discovery: decode: %w", err)
			}
			targets = append(targets, t)
		}
		return targets, nil
	}
	// Single object: reconstruct from the already-consumed opening token by
	// re-decoding from scratch is wasteful; instead decode the remaining
	// fields directly off the still-open stream using a fresh decode pass.
	var single TargetInfo
	if err := decodeRemainingObject(dec, tok, &single); err != nil {
		return nil, fmt.Errorf("transport: discovery: decode: %w", err)
	}
	return []TargetInfo{single}, nil
}

// decodeRemainingObject finishes decoding a JSON object whose opening
// '{' token has already been consumed by dec.Token().
func decodeRemainingObject(dec *json.Decoder, first json.Token, out *TargetInfo) error {
	if delim, ok := first.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unexpected JSON token %v", first)
	}
	fields := map[string]*string{
		"id":                   &out.ID,
		"type":                 &out.Type,
		"title":                &out.Title,
		"url":                  &out.URL,
		"webSocketDebuggerUrl": &out.WebSocketDebuggerURL,
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var val string
		if err := dec.Decode(&val); err != nil {
			return err
		}
		if dst, ok := fields[key]; ok {
			*dst = val
		}
	}
	return nil
}

// DevToolsPath extracts the "/devtools/page/<id>" style path from a full
// webSocketDebuggerUrl, since Dial takes addr and path separately.
func DevToolsPath(webSocketDebuggerURL string) string {
	if idx := strings.Index(webSocketDebuggerURL, "/devtools/"); idx >= 0 {
		return webSocketDebuggerURL[idx:]
	}
	return webSocketDebuggerURL
}
