package console

// MessageAdded is the payload of a `Console.messageAdded` event, issued
// once per console message while the domain is enabled.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Console/#event-messageAdded
type MessageAdded struct {
	Message Message `json:"message"`
}
