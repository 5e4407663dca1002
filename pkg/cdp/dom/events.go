package dom

// AttributeModified is the payload of a `DOM.attributeModified` event,
// fired when an element's attribute is modified.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#event-attributeModified
type AttributeModified struct {
	NodeID NodeID `json:"nodeId"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// AttributeRemoved is the payload of a `DOM.attributeRemoved` event, fired
// when an element's attribute is removed.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#event-attributeRemoved
type AttributeRemoved struct {
	NodeID NodeID `json:"nodeId"`
	Name   string `json:"name"`
}

// ChildNodeInserted is the payload of a `DOM.childNodeInserted` event.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#event-childNodeInserted
type ChildNodeInserted struct {
	ParentNodeID   NodeID `json:"parentNodeId"`
	PreviousNodeID NodeID `json:"previousNodeId"`
	Node           Node   `json:"node"`
}

// ChildNodeRemoved is the payload of a `DOM.childNodeRemoved` event.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#event-childNodeRemoved
type ChildNodeRemoved struct {
	ParentNodeID NodeID `json:"parentNodeId"`
	NodeID       NodeID `json:"nodeId"`
}

// DocumentUpdated is the payload of a `DOM.documentUpdated` event, fired
// when the whole document has been replaced and all previously known node
// ids are no longer valid.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#event-documentUpdated
type DocumentUpdated struct{}
