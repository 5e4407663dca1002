package runtime

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

func TestEvaluateDoSendsExpectedMethodAndParses(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"result":{"type":"number","value":2}}`)}

	resp, err := NewEvaluate("1+1").SetReturnByValue(true).Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Runtime.evaluate", fc.lastMethod)
	assert.Equal(t, "number", resp.Result.Type)

	cmd, ok := fc.lastParams.(*Evaluate)
	require.True(t, ok)
	assert.True(t, cmd.ReturnByValue)
}

func TestEvaluateDoPropagatesCallError(t *testing.T) {
	fc := &fakeCaller{err: assert.AnError}
	_, err := NewEvaluate("boom").Do(context.Background(), fc)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCallFunctionOnBuilderSetsObjectID(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"result":{"type":"string"}}`)}
	resp, err := NewCallFunctionOn("function(){return this.value}").
		SetObjectID("obj-1").
		SetReturnByValue(true).
		Do(context.Background(), fc)

	require.NoError(t, err)
	assert.Equal(t, "string", resp.Result.Type)

	cmd := fc.lastParams.(*CallFunctionOn)
	require.NotNil(t, cmd.ObjectID)
	assert.Equal(t, RemoteObjectID("obj-1"), *cmd.ObjectID)
}

func TestReleaseObjectDoesNotRequireResult(t *testing.T) {
	fc := &fakeCaller{result: nil}
	err := NewReleaseObject("obj-1").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "Runtime.releaseObject", fc.lastMethod)
}
