package page

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	lastMethod string
	lastParams any
	result     json.RawMessage
	err        error
}

func (f *fakeCaller) Call(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error) {
	f.lastMethod = method
	f.lastParams = params
	return f.result, f.err
}

func TestNavigateDoSendsURLAndParsesFrameID(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"frameId":"F1","loaderId":"L1"}`)}

	resp, err := NewNavigate("https://example.com").SetReferrer("https://ref.example").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Page.navigate", fc.lastMethod)
	assert.Equal(t, FrameID("F1"), resp.FrameID)

	cmd := fc.lastParams.(*Navigate)
	assert.Equal(t, "https://example.com", cmd.URL)
	assert.Equal(t, "https://ref.example", cmd.Referrer)
}

func TestNavigateDoPropagatesCallError(t *testing.T) {
	fc := &fakeCaller{err: assert.AnError}
	_, err := NewNavigate("https://example.com").Do(context.Background(), fc)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReloadDoSetsIgnoreCache(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewReload().SetIgnoreCache(true).Do(context.Background(), fc)
	require.NoError(t, err)

	cmd := fc.lastParams.(*Reload)
	assert.True(t, cmd.IgnoreCache)
}

func TestGetNavigationHistoryDoParsesEntries(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"currentIndex":1,"entries":[{"id":1,"url":"a"},{"id":2,"url":"b"}]}`)}

	resp, err := NewGetNavigationHistory().Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.CurrentIndex)
	assert.Len(t, resp.Entries, 2)
}

func TestCaptureScreenshotDoSetsFormatAndQuality(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"data":"YmFzZTY0"}`)}

	resp, err := NewCaptureScreenshot().SetFormat("jpeg").SetQuality(80).Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "YmFzZTY0", resp.Data)

	cmd := fc.lastParams.(*CaptureScreenshot)
	assert.Equal(t, "jpeg", cmd.Format)
	require.NotNil(t, cmd.Quality)
	assert.Equal(t, int64(80), *cmd.Quality)
}

func TestAddScriptToEvaluateOnNewDocumentDoSendsSource(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"identifier":"1"}`)}

	resp, err := NewAddScriptToEvaluateOnNewDocument("window.__marker = true;").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Page.addScriptToEvaluateOnNewDocument", fc.lastMethod)
	assert.Equal(t, "1", resp.Identifier)

	cmd := fc.lastParams.(*AddScriptToEvaluateOnNewDocument)
	assert.Equal(t, "window.__marker = true;", cmd.Source)
}

func TestCloseDoesNotRequireResult(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewClose().Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Page.close", fc.lastMethod)
}
