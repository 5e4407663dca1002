package runtime

import (
	"context"
	"encoding/json"
	"time"
)

// Evaluate contains the parameters, and acts as a Go receiver, for the
// CDP command `evaluate`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-evaluate
type Evaluate struct {
	Expression         string              `json:"expression"`
	ObjectGroup        string              `json:"objectGroup,omitempty"`
	ReturnByValue      bool                `json:"returnByValue,omitempty"`
	AwaitPromise       bool                `json:"awaitPromise,omitempty"`
	ExecutionContextID *ExecutionContextID `json:"contextId,omitempty"`
	UserGesture        bool                `json:"userGesture,omitempty"`
}

// NewEvaluate constructs a new Evaluate struct instance with all the
// required parameters, and only them. Optional parameters may be added
// using the builder-like methods below.
func NewEvaluate(expression string) *Evaluate {
	return &Evaluate{Expression: expression}
}

// SetReturnByValue adds or modifies the optional `returnByValue` parameter.
func (t *Evaluate) SetReturnByValue(v bool) *Evaluate {
	t.ReturnByValue = v
	return t
}

// SetAwaitPromise adds or modifies the optional `awaitPromise` parameter.
func (t *Evaluate) SetAwaitPromise(v bool) *Evaluate {
	t.AwaitPromise = v
	return t
}

// SetExecutionContextID adds or modifies the optional `contextId` parameter.
func (t *Evaluate) SetExecutionContextID(v ExecutionContextID) *Evaluate {
	t.ExecutionContextID = &v
	return t
}

// EvaluateResponse contains the browser's response to calling the
// Evaluate CDP command with Do().
type EvaluateResponse struct {
	Result           RemoteObject      `json:"result"`
	ExceptionDetails *ExceptionDetails `json:"exceptionDetails,omitempty"`
}

// Do sends the Evaluate CDP command to a browser via c and returns the
// browser's response.
func (t *Evaluate) Do(ctx context.Context, c Caller) (*EvaluateResponse, error) {
	return do[EvaluateResponse](ctx, c, "Runtime.evaluate", t, 0)
}

// CallFunctionOn contains the parameters, and acts as a Go receiver, for
// the CDP command `callFunctionOn`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-callFunctionOn
type CallFunctionOn struct {
	FunctionDeclaration string              `json:"functionDeclaration"`
	ObjectID            *RemoteObjectID     `json:"objectId,omitempty"`
	Arguments           []CallArgument      `json:"arguments,omitempty"`
	Silent              bool                `json:"silent,omitempty"`
	ReturnByValue       bool                `json:"returnByValue,omitempty"`
	AwaitPromise        bool                `json:"awaitPromise,omitempty"`
	ExecutionContextID  *ExecutionContextID `json:"executionContextId,omitempty"`
	ObjectGroup         string              `json:"objectGroup,omitempty"`
}

// NewCallFunctionOn constructs a new CallFunctionOn struct instance with
// all the required parameters, and only them.
func NewCallFunctionOn(functionDeclaration string) *CallFunctionOn {
	return &CallFunctionOn{FunctionDeclaration: functionDeclaration}
}

// SetObjectID adds or modifies the optional `objectId` parameter.
func (t *CallFunctionOn) SetObjectID(v RemoteObjectID) *CallFunctionOn {
	t.ObjectID = &v
	return t
}

// SetArguments adds or modifies the optional `arguments` parameter.
func (t *CallFunctionOn) SetArguments(v []CallArgument) *CallFunctionOn {
	t.Arguments = v
	return t
}

// SetReturnByValue adds or modifies the optional `returnByValue` parameter.
func (t *CallFunctionOn) SetReturnByValue(v bool) *CallFunctionOn {
	t.ReturnByValue = v
	return t
}

// SetAwaitPromise adds or modifies the optional `awaitPromise` parameter.
func (t *CallFunctionOn) SetAwaitPromise(v bool) *CallFunctionOn {
	t.AwaitPromise = v
	return t
}

// CallFunctionOnResponse contains the browser's response to calling the
// CallFunctionOn CDP command with Do().
type CallFunctionOnResponse struct {
	Result           RemoteObject      `json:"result"`
	ExceptionDetails *ExceptionDetails `json:"exceptionDetails,omitempty"`
}

// Do sends the CallFunctionOn CDP command to a browser via c.
func (t *CallFunctionOn) Do(ctx context.Context, c Caller) (*CallFunctionOnResponse, error) {
	return do[CallFunctionOnResponse](ctx, c, "Runtime.callFunctionOn", t, 0)
}

// GetProperties contains the parameters, and acts as a Go receiver, for
// the CDP command `getProperties`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-getProperties
type GetProperties struct {
	ObjectID               RemoteObjectID `json:"objectId"`
	OwnProperties          bool           `json:"ownProperties,omitempty"`
	AccessorPropertiesOnly bool           `json:"accessorPropertiesOnly,omitempty"`
	GeneratePreview        bool           `json:"generatePreview,omitempty"`
}


// NewGetProperties constructs a new GetProperties struct instance with
// all the required parameters, and only them. Optional parameters may be
// added using the builder-like methods below.
func NewGetProperties(objectID RemoteObjectID) *GetProperties {
	return &GetProperties{ObjectID: objectID}
}

// SetOwnProperties adds or modifies the optional `ownProperties` parameter.
func (t *GetProperties) SetOwnProperties(v bool) *GetProperties {
	t.OwnProperties = v
	return t
}

// SetAccessorPropertiesOnly adds or modifies the optional
// `accessorPropertiesOnly` parameter.
func (t *GetProperties) SetAccessorPropertiesOnly(v bool) *GetProperties {
	t.AccessorPropertiesOnly = v
	return t
}

// SetGeneratePreview adds or modifies the optional `generatePreview`
// parameter.
func (t *GetProperties) SetGeneratePreview(v bool) *GetProperties {
	t.GeneratePreview = v
	return t
}

// GetPropertiesResponse contains the browser's response to calling the
// GetProperties CDP command with Do().
type GetPropertiesResponse struct {
	Result           []PropertyDescriptor `json:"result"`
	ExceptionDetails *ExceptionDetails     `json:"exceptionDetails,omitempty"`
}

// Do sends the GetProperties CDP command to a browser via c and returns
// the browser's response.
func (t *GetProperties) Do(ctx context.Context, c Caller) (*GetPropertiesResponse, error) {
	return do[GetPropertiesResponse](ctx, c, "Runtime.getProperties", t, 0)
}

// ReleaseObject contains the parameters for the CDP command
// `releaseObject`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-releaseObject
type ReleaseObject struct {
	ObjectID RemoteObjectID `json:"objectId"`
}

// NewReleaseObject constructs a new ReleaseObject struct instance.
func NewReleaseObject(objectID RemoteObjectID) *ReleaseObject {
	return &ReleaseObject{ObjectID: objectID}
}

// Do sends the ReleaseObject CDP command to a browser via c.
func (t *ReleaseObject) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Runtime.releaseObject", t, 0)
	return err
}

// ReleaseObjectGroup contains the parameters for the CDP command
// `releaseObjectGroup`.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-releaseObjectGroup
type ReleaseObjectGroup struct {
	ObjectGroup string `json:"objectGroup"`
}

// NewReleaseObjectGroup constructs a new ReleaseObjectGroup struct instance.
func NewReleaseObjectGroup(objectGroup string) *ReleaseObjectGroup {
	return &ReleaseObjectGroup{ObjectGroup: objectGroup}
}

// Do sends the ReleaseObjectGroup CDP command to a browser via c.
func (t *ReleaseObjectGroup) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Runtime.releaseObjectGroup", t, 0)
	return err
}

// Enable contains the parameters for the CDP command `enable`: it turns
// on reporting of execution contexts creation.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#method-enable
type Enable struct{}

// NewEnable constructs a new Enable struct instance.
func NewEnable() *Enable { return &Enable{} }

// Do sends the Enable CDP command to a browser via c.
func (t *Enable) Do(ctx context.Context, c Caller) error {
	_, err := do[struct{}](ctx, c, "Runtime.enable", t, 0)
	return err
}

// do marshals cmd, sends it via c.Call under the given method, and
// unmarshals the result into a freshly allocated T.
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
