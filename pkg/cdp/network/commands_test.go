package network

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

func TestEnableDoesNotRequireResult(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewEnable().Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Network.enable", fc.lastMethod)
}

func TestSetExtraHTTPHeadersDoSendsHeaders(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewSetExtraHTTPHeaders(map[string]string{"X-Test": "1"}).Do(context.Background(), fc)
	require.NoError(t, err)

	cmd := fc.lastParams.(*SetExtraHTTPHeaders)
	assert.Equal(t, "1", cmd.Headers["X-Test"])
}

func TestGetResponseBodyDoParsesBase64Flag(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"body":"aGVsbG8=","base64Encoded":true}`)}

	resp, err := NewGetResponseBody("req-1").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.True(t, resp.Base64Encoded)
	assert.Equal(t, "aGVsbG8=", resp.Body)

	cmd := fc.lastParams.(*GetResponseBody)
	assert.Equal(t, RequestID("req-1"), cmd.RequestID)
}

func TestDisableDoPropagatesCallError(t *testing.T) {
	fc := &fakeCaller{err: assert.AnError}
	err := NewDisable().Do(context.Background(), fc)
	assert.ErrorIs(t, err, assert.AnError)
}
