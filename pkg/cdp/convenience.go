package cdp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tgraves/cdpctl/pkg/cdp/dom"
	"github.com/tgraves/cdpctl/pkg/cdp/runtime"
)

// caller is the subset of *Client the convenience helpers below need.
// It is satisfied structurally by dom.Caller and runtime.Caller too, so
// a *Client (or a test double) can be passed straight through to either
// domain package's Do methods.
type caller interface {
	Call(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error)
}

// GetValue evaluates expr in the page's main execution context and
// extracts the result's `value` as a string. It is a thin convenience
// wrapper over runtime.Evaluate for callers who just want a string back
// rather than a full RemoteObject.
func (c *Client) GetValue(ctx context.Context, expr string) (string, error) {
	return getValue(ctx, c, expr)
}

func getValue(ctx context.Context, c caller, expr string) (string, error) {
	resp, err := runtime.NewEvaluate(expr).SetReturnByValue(true).Do(ctx, c)
	if err != nil {
		return "", err
	}
	if resp.ExceptionDetails != nil {
		return "", fmt.Errorf("cdp: evaluate %q: %s", expr, resp.ExceptionDetails.Text)
	}
	return remoteValueString(resp.Result.Value)
}

// SelectObjectID resolves selector, scoped to the document root, into a
// live remote object id a caller can pass to runtime.CallFunctionOn
// directly: getDocument -> querySelector -> resolveNode.
func (c *Client) SelectObjectID(ctx context.Context, selector string) (runtime.RemoteObjectID, error) {
	return selectObjectID(ctx, c, selector)
}

func selectObjectID(ctx context.Context, c caller, selector string) (runtime.RemoteObjectID, error) {
	docResp, err := dom.NewGetDocument().Do(ctx, c)
	if err != nil {
		return "", err
	}
	qsResp, err := dom.NewQuerySelector(docResp.Root.NodeID, selector).Do(ctx, c)
	if err != nil {
		return "", err
	}
	if qsResp.NodeID == 0 {
		return "", fmt.Errorf("cdp: no element matches selector %q", selector)
	}
	rnResp, err := dom.NewResolveNode(qsResp.NodeID).Do(ctx, c)
	if err != nil {
		return "", err
	}
	if rnResp.Object.ObjectID == "" {
		return "", fmt.Errorf("cdp: selector %q resolved to an object with no id", selector)
	}
	return runtime.RemoteObjectID(rnResp.Object.ObjectID), nil
}

// ClickSelector resolves selector and calls its .click() method.
func (c *Client) ClickSelector(ctx context.Context, selector string) error {
	return clickSelector(ctx, c, selector)
}

func clickSelector(ctx context.Context, c caller, selector string) error {
	objectID, err := selectObjectID(ctx, c, selector)
	if err != nil {
		return err
	}
	resp, err := runtime.NewCallFunctionOn("function(){ this.click(); }").
		SetObjectID(objectID).
		Do(ctx, c)
	if err != nil {
		return err
	}
	if resp.ExceptionDetails != nil {
		return fmt.Errorf("cdp: click %q: %s", selector, resp.ExceptionDetails.Text)
	}
	return nil
}

// SetValueSelector resolves selector and sets its `.value` property,
// dispatching an `input` event so frameworks bound to it observe the
// change.
func (c *Client) SetValueSelector(ctx context.Context, selector, value string) error {
	return setValueSelector(ctx, c, selector, value)
}

func setValueSelector(ctx context.Context, c caller, selector, value string) error {
	objectID, err := selectObjectID(ctx, c, selector)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	const fn = `function(v){ this.value = v; this.dispatchEvent(new Event('input', {bubbles: true})); }`
	resp, err := runtime.NewCallFunctionOn(fn).
		SetObjectID(objectID).
		SetArguments([]runtime.CallArgument{{Value: encoded}}).
		Do(ctx, c)
	if err != nil {
		return err
	}
	if resp.ExceptionDetails != nil {
		return fmt.Errorf("cdp: set value on %q: %s", selector, resp.ExceptionDetails.Text)
	}
	return nil
}

// GetInnerText resolves selector and returns its `.innerText`.
func (c *Client) GetInnerText(ctx context.Context, selector string) (string, error) {
	return getInnerText(ctx, c, selector)
}

func getInnerText(ctx context.Context, c caller, selector string) (string, error) {
	objectID, err := selectObjectID(ctx, c, selector)
	if err != nil {
		return "", err
	}
	resp, err := runtime.NewCallFunctionOn("function(){ return this.innerText; }").
		SetObjectID(objectID).
		SetReturnByValue(true).
		Do(ctx, c)
	if err != nil {
		return "", err
	}
	if resp.ExceptionDetails != nil {
		return "", fmt.Errorf("cdp: get inner text of %q: %s", selector, resp.ExceptionDetails.Text)
	}
	return remoteValueString(resp.Result.Value)
}

// QSATexts resolves every element matching selector and returns each
// one's `.innerText`, in document order.
func (c *Client) QSATexts(ctx context.Context, selector string) ([]string, error) {
	return qsaTexts(ctx, c, selector)
}

func qsaTexts(ctx context.Context, c caller, selector string) ([]string, error) {
	docResp, err := dom.NewGetDocument().Do(ctx, c)
	if err != nil {
		return nil, err
	}
	qsaResp, err := dom.NewQuerySelectorAll(docResp.Root.NodeID, selector).Do(ctx, c)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(qsaResp.NodeIDs))
	for _, nodeID := range qsaResp.NodeIDs {
		rnResp, err := dom.NewResolveNode(nodeID).Do(ctx, c)
		if err != nil {
			return nil, err
		}
		if rnResp.Object.ObjectID == "" {
			continue
		}
		resp, err := runtime.NewCallFunctionOn("function(){ return this.innerText; }").
			SetObjectID(runtime.RemoteObjectID(rnResp.Object.ObjectID)).
			SetReturnByValue(true).
			Do(ctx, c)
		if err != nil {
			return nil, err
		}
		if resp.ExceptionDetails != nil {
			return nil, fmt.Errorf("cdp: get inner text for match of %q: %s", selector, resp.ExceptionDetails.Text)
		}
		text, err := remoteValueString(resp.Result.Value)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// GetAttributesJSON resolves selector and returns its attributes as a
// JSON object of name/value pairs.
func (c *Client) GetAttributesJSON(ctx context.Context, selector string) (string, error) {
	return getAttributesJSON(ctx, c, selector)
}

func getAttributesJSON(ctx context.Context, c caller, selector string) (string, error) {
	docResp, err := dom.NewGetDocument().Do(ctx, c)
	if err != nil {
		return "", err
	}
	qsResp, err := dom.NewQuerySelector(docResp.Root.NodeID, selector).Do(ctx, c)
	if err != nil {
		return "", err
	}
	if qsResp.NodeID == 0 {
		return "", fmt.Errorf("cdp: no element matches selector %q", selector)
	}
	attrsResp, err := dom.NewGetAttributes(qsResp.NodeID).Do(ctx, c)
	if err != nil {
		return "", err
	}
	attrs := make(map[string]string, len(attrsResp.Attributes)/2)
	for i := 0; i+1 < len(attrsResp.Attributes); i += 2 {
		attrs[attrsResp.Attributes[i]] = attrsResp.Attributes[i+1]
	}
	encoded, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// remoteValueString decodes a RemoteObject's raw `value` field, which is
// itself JSON-encoded, into a display string. Non-string values (numbers,
// booleans, null) are rendered via their JSON text form.
func remoteValueString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(raw), nil
}
