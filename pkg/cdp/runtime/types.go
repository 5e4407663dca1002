// Package runtime provides the Runtime domain of the Command Layer:
// JavaScript expression evaluation and remote object handling, per
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/.
package runtime

import (
	"context"
	"encoding/json"
	"time"
)

// Caller is the subset of *cdp.Client every command in this package
// needs. Declaring it here, rather than importing package cdp, avoids an
// import cycle between the facade and its domain packages.
type Caller interface {
	Call(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error)
}

// RemoteObjectID uniquely identifies a JavaScript object kept alive on
// the browser side until released.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-RemoteObjectId
type RemoteObjectID string

// ExecutionContextID identifies a JavaScript execution context (one per
// frame/world).
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-ExecutionContextId
type ExecutionContextID int64

// RemoteObject mirrors a JavaScript value returned by Evaluate or
// CallFunctionOn.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-RemoteObject
type RemoteObject struct {
	Type                string          `json:"type"`
	Subtype             string          `json:"subtype,omitempty"`
	ClassName           string          `json:"className,omitempty"`
	Value               json.RawMessage `json:"value,omitempty"`
	UnserializableValue string          `json:"unserializableValue,omitempty"`
	Description         string          `json:"description,omitempty"`
	ObjectID            RemoteObjectID  `json:"objectId,omitempty"`
}

// ExceptionDetails describes a JavaScript exception raised while
// evaluating an expression or calling a function.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-ExceptionDetails
type ExceptionDetails struct {
	ExceptionID  int64         `json:"exceptionId"`
	Text         string        `json:"text"`
	LineNumber   int64         `json:"lineNumber"`
	ColumnNumber int64         `json:"columnNumber"`
	Exception    *RemoteObject `json:"exception,omitempty"`
}

// CallArgument is one argument passed to CallFunctionOn. Either ObjectID,
// Value, or UnserializableValue should be set, never more than one.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-CallArgument
type CallArgument struct {
	Value               json.RawMessage `json:"value,omitempty"`
	UnserializableValue string          `json:"unserializableValue,omitempty"`
	ObjectID            RemoteObjectID  `json:"objectId,omitempty"`
}

// PropertyDescriptor describes one own or inherited property of an
// object returned by GetProperties.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-PropertyDescriptor
type PropertyDescriptor struct {
	Name         string        `json:"name"`
	Value        *RemoteObject `json:"value,omitempty"`
	Writable     bool          `json:"writable,omitempty"`
	Get          *RemoteObject `json:"get,omitempty"`
	Set          *RemoteObject `json:"set,omitempty"`
	Configurable bool          `json:"configurable"`
	Enumerable   bool          `json:"enumerable"`
	IsOwn        bool          `json:"isOwn,omitempty"`
}
