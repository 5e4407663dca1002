package dom

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

// Enable turns on DOM domain notifications and allows command usage that
// requires it (e.g. node push/mutation events).
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-enable
type Enable struct{}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "DOM.enable", t, 0)
	return err
}

// GetDocument contains the parameters for the CDP command `getDocument`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-getDocument
type GetDocument struct {
	Depth  *int64 `json:"depth,omitempty"`
	Pierce bool   `json:"pierce,omitempty"`
}

// NewGetDocument constructs a new GetDocument struct instance.
func NewGetDocument() *GetDocument { return &GetDocument{} }

// SetDepth adds or modifies the optional `depth` parameter. -1 means the
// entire subtree.
func (t *GetDocument) SetDepth(v int64) *GetDocument {
	t.Depth = &v
	return t
}

// GetDocumentResponse contains the browser's response to calling the
// GetDocument CDP command with Do().
type GetDocumentResponse struct {
	Root Node `json:"root"`
}

// Do sends the GetDocument CDP command to a browser via c.
func (t *GetDocument) Do(ctx context.Context, c Caller) (*GetDocumentResponse, error) {
	return do[GetDocumentResponse](ctx, c, "DOM.getDocument", t, 0)
}

// QuerySelector contains the parameters for the CDP command
// `querySelector`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-querySelector
type QuerySelector struct {
	NodeID   NodeID `json:"nodeId"`
	Selector string `json:"selector"`
}

// NewQuerySelector constructs a new QuerySelector struct instance with all
// the required parameters, and only them.
func NewQuerySelector(nodeID NodeID, selector string) *QuerySelector {
	return &QuerySelector{NodeID: nodeID, Selector: selector}
}

// QuerySelectorResponse contains the browser's response to calling the
// QuerySelector CDP command with Do().
type QuerySelectorResponse struct {
	NodeID NodeID `json:"nodeId"`
}

// Do sends the QuerySelector CDP command to a browser via c.
func (t *QuerySelector) Do(ctx context.Context, c Caller) (*QuerySelectorResponse, error) {
	return do[QuerySelectorResponse](ctx, c, "DOM.querySelector", t, 0)
}

// QuerySelectorAll contains the parameters for the CDP command
// `querySelectorAll`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-querySelectorAll
type QuerySelectorAll struct {
	NodeID   NodeID `json:"nodeId"`
	Selector string `json:"selector"`
}

// NewQuerySelectorAll constructs a new QuerySelectorAll struct instance
// with all the required parameters, and only them.
func NewQuerySelectorAll(nodeID NodeID, selector string) *QuerySelectorAll {
	return &QuerySelectorAll{NodeID: nodeID, Selector: selector}
}

// QuerySelectorAllResponse contains the browser's response to calling the
// QuerySelectorAll CDP command with Do().
type QuerySelectorAllResponse struct {
	NodeIDs []NodeID `json:"nodeIds"`
}

// Do sends the QuerySelectorAll CDP command to a browser via c.
func (t *QuerySelectorAll) Do(ctx context.Context, c Caller) (*QuerySelectorAllResponse, error) {
	return do[QuerySelectorAllResponse](ctx, c, "DOM.querySelectorAll", t, 0)
}

// ResolveNode contains the parameters for the CDP command `resolveNode`:
// it resolves a DOM node's id into a JavaScript object reference usable by
// Runtime.callFunctionOn.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-resolveNode
type ResolveNode struct {
	NodeID             *NodeID        `json:"nodeId,omitempty"`
	BackendNodeID      *BackendNodeID `json:"backendNodeId,omitempty"`
	ObjectGroup        string         `json:"objectGroup,omitempty"`
	ExecutionContextID *int64         `json:"executionContextId,omitempty"`
}

// NewResolveNode constructs a new ResolveNode struct instance for the
// given node id.
func NewResolveNode(nodeID NodeID) *ResolveNode {
	return &ResolveNode{NodeID: &nodeID}
}

// SetObjectGroup adds or modifies the optional `objectGroup` parameter,
// used to batch-release the resulting remote object later.
func (t *ResolveNode) SetObjectGroup(v string) *ResolveNode {
	t.ObjectGroup = v
	return t
}

// RemoteObject mirrors runtime.RemoteObject's wire shape without importing
// the runtime package. Importing it would not create a cycle (runtime
// never needs dom), but duplicating this one small type keeps the domain
// packages independent of each other.
type RemoteObject struct {
	Type     string          `json:"type"`
	Subtype  string          `json:"subtype,omitempty"`
	ObjectID string          `json:"objectId,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// ResolveNodeResponse contains the browser's response to calling the
// ResolveNode CDP command with Do().
type ResolveNodeResponse struct {
	Object RemoteObject `json:"object"`
}

// Do sends the ResolveNode CDP command to a browser via c.
func (t *ResolveNode) Do(ctx context.Context, c Caller) (*ResolveNodeResponse, error) {
	return do[ResolveNodeResponse](ctx, c, "DOM.resolveNode", t, 0)
}

// GetAttributes contains the parameters for the CDP command
// `getAttributes`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-getAttributes
type GetAttributes struct {
	NodeID NodeID `json:"nodeId"`
}

// NewGetAttributes constructs a new GetAttributes struct instance with all
// the required parameters, and only them.
func NewGetAttributes(nodeID NodeID) *GetAttributes {
	return &GetAttributes{NodeID: nodeID}
}

// GetAttributesResponse contains the browser's response to calling the
// GetAttributes CDP command with Do(): a flat array alternating attribute
// names and values.
type GetAttributesResponse struct {
	Attributes []string `json:"attributes"`
}

// Do sends the GetAttributes CDP command to a browser via c.
func (t *GetAttributes) Do(ctx context.Context, c Caller) (*GetAttributesResponse, error) {
	return do[GetAttributesResponse](ctx, c, "DOM.getAttributes", t, 0)
}

// DescribeNode contains the parameters for the CDP command `describeNode`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-describeNode
type DescribeNode struct {
	NodeID        *NodeID        `json:"nodeId,omitempty"`
	BackendNodeID *BackendNodeID `json:"backendNodeId,omitempty"`
	Depth         *int64         `json:"depth,omitempty"`
	Pierce        bool           `json:"pierce,omitempty"`
}

// NewDescribeNode constructs a new DescribeNode struct instance for the
// given node id.
func NewDescribeNode(nodeID NodeID) *DescribeNode {
	return &DescribeNode{NodeID: &nodeID}
}

// SetDepth adds or modifies the optional `depth` parameter.
func (t *DescribeNode) SetDepth(v int64) *DescribeNode {
	t.Depth = &v
	return t
}

// DescribeNodeResponse contains the browser's response to calling the
// DescribeNode CDP command with Do().
type DescribeNodeResponse struct {
	Node Node `json:"node"`
}

// Do sends the DescribeNode CDP command to a browser via c.
func (t *DescribeNode) Do(ctx context.Context, c Caller) (*DescribeNodeResponse, error) {
	return do[DescribeNodeResponse](ctx, c, "DOM.describeNode", t, 0)
}

// SetAttributeValue contains the parameters for the CDP command
// `setAttributeValue`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-setAttributeValue
type SetAttributeValue struct {
	NodeID NodeID `json:"nodeId"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// NewSetAttributeValue constructs a new SetAttributeValue struct instance
// with all the required parameters, and only them.
func NewSetAttributeValue(nodeID NodeID, name, value string) *SetAttributeValue {
	return &SetAttributeValue{NodeID: nodeID, Name: name, Value: value}
}

// Do sends the SetAttributeValue CDP command to a browser via c.
func (t *SetAttributeValue) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "DOM.setAttributeValue", t, 0)
	return err
}

// Focus contains the parameters for the CDP command `focus`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-focus
type Focus struct {
	NodeID        *NodeID        `json:"nodeId,omitempty"`
	BackendNodeID *BackendNodeID `json:"backendNodeId,omitempty"`
}

// NewFocus constructs a new Focus struct instance for the given node id.
func NewFocus(nodeID NodeID) *Focus {
	return &Focus{NodeID: &nodeID}
}

// Do sends the Focus CDP command to a browser via c.
func (t *Focus) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "DOM.focus", t, 0)
	return err
}

// GetOuterHTML contains the parameters for the CDP command
// `getOuterHTML`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#method-getOuterHTML
type GetOuterHTML struct {
	NodeID        *NodeID        `json:"nodeId,omitempty"`
	BackendNodeID *BackendNodeID `json:"backendNodeId,omitempty"`
}

// NewGetOuterHTML constructs a new GetOuterHTML struct instance for the
// given node id.
func NewGetOuterHTML(nodeID NodeID) *GetOuterHTML {
	return &GetOuterHTML{NodeID: &nodeID}
}

// GetOuterHTMLResponse contains the browser's response to calling the
// GetOuterHTML CDP command with Do().
type GetOuterHTMLResponse struct {
	OuterHTML string `json:"outerHTML"`
}

// Do sends the GetOuterHTML CDP command to a browser via c.
func (t *GetOuterHTML) Do(ctx context.Context, c Caller) (*GetOuterHTMLResponse, error) {
	return do[GetOuterHTMLResponse](ctx, c, "DOM.getOuterHTML", t, 0)
}
