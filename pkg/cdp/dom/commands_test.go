package dom

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

func TestGetDocumentDoParsesRoot(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"root":{"nodeId":1,"nodeType":9,"nodeName":"#document"}}`)}

	resp, err := NewGetDocument().SetDepth(-1).Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "DOM.getDocument", fc.lastMethod)
	assert.Equal(t, NodeID(1), resp.Root.NodeID)

	cmd := fc.lastParams.(*GetDocument)
	require.NotNil(t, cmd.Depth)
	assert.Equal(t, int64(-1), *cmd.Depth)
}

func TestQuerySelectorDoSendsSelector(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"nodeId":42}`)}

	resp, err := NewQuerySelector(1, "#login").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, NodeID(42), resp.NodeID)

	cmd := fc.lastParams.(*QuerySelector)
	assert.Equal(t, "#login", cmd.Selector)
}

func TestQuerySelectorAllDoReturnsMultipleIDs(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"nodeIds":[1,2,3]}`)}

	resp, err := NewQuerySelectorAll(1, "a").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{1, 2, 3}, resp.NodeIDs)
}

func TestResolveNodeDoSetsObjectGroup(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"object":{"type":"object","objectId":"obj-9"}}`)}

	resp, err := NewResolveNode(5).SetObjectGroup("console").Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, "obj-9", resp.Object.ObjectID)

	cmd := fc.lastParams.(*ResolveNode)
	assert.Equal(t, "console", cmd.ObjectGroup)
}

func TestGetAttributesDoReturnsInterleavedArray(t *testing.T) {
	fc := &fakeCaller{result: json.RawMessage(`{"attributes":["class","primary","id","submit-btn"]}`)}

	resp, err := NewGetAttributes(7).Do(context.Background(), fc)
	require.NoError(t, err)
	assert.Equal(t, []string{"class", "primary", "id", "submit-btn"}, resp.Attributes)
}

func TestFocusDoPropagatesCallError(t *testing.T) {
	fc := &fakeCaller{err: assert.AnError}
	err := NewFocus(1).Do(context.Background(), fc)
	assert.ErrorIs(t, err, assert.AnError)
}
