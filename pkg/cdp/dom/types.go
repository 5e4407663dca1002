// Package dom provides the DOM domain of the Command Layer: document
// traversal, selector queries, and node attribute/object resolution, per
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/.
package dom

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

// NodeID uniquely identifies a DOM node within a single document session.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-NodeId
type NodeID int64

// BackendNodeID identifies a node that may not yet have been pushed to
// the front end.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-BackendNodeId
type BackendNodeID int64

// Node is a DOM tree node, per
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-Node
type Node struct {
	NodeID         NodeID        `json:"nodeId"`
	BackendNodeID  BackendNodeID `json:"backendNodeId"`
	NodeType       int64         `json:"nodeType"`
	NodeName       string        `json:"nodeName"`
	LocalName      string        `json:"localName"`
	NodeValue      string        `json:"nodeValue"`
	ChildNodeCount int64         `json:"childNodeCount,omitempty"`
	Children       []Node        `json:"children,omitempty"`
	Attributes     []string      `json:"attributes,omitempty"`
	DocumentURL    string        `json:"documentURL,omitempty"`
}
