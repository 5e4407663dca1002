package console

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
	assert.Equal(t, "Console.enable", fc.lastMethod)
}

func TestDisableDoPropagatesCallError(t *testing.T) {
	fc := &fakeCaller{err: assert.AnError}
	err := NewDisable().Do(context.Background(), fc)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClearMessagesDoSendsCorrectMethod(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewClearMessages().Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Console.clearMessages", fc.lastMethod)
}
