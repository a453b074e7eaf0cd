// Package vdom defines the declarative description of a UI.
//
// A [Component] describes its current state as a tree of [Node]s. The
// runtime calls Render after mounting and after every event that may have
// changed state; components never call it themselves. Nodes may carry
// [Binding]s, which tell the runtime which operation to invoke when an event
// happens on the node and how to resolve the operation's arguments.
package vdom

import (
	"strings"

	"src.prismdeck.dev/pkg/ui"
)

// Component is implemented by anything that can describe its UI.
//
// Render must be a pure function of the component's state: calling it must
// not mutate anything, and it may be called any number of times.
type Component interface {
	Render() *Node
}

// Kind is the kind of a Node.
type Kind uint8

// Possible values for Kind.
const (
	// A container whose children are stacked vertically, or horizontally if
	// it has the "row" class.
	Block Kind = iota
	// A line of text.
	Text
	// A line of emphasized text.
	Heading
	// A focusable label that fires click when activated.
	Button
	// A reference to an image asset. Terminals show the asset's name.
	Image
	// A focusable single-line text input.
	Input
	// An embedded component, rendered in place.
	Mount
)

var kindNames = [...]string{"block", "text", "heading", "button", "image", "input", "mount"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EventType identifies events that can be bound on a Node.
type EventType string

// Supported event types.
const (
	Click   EventType = "click"
	KeyDown EventType = "keydown"
	// Fired by inputs after their value has changed.
	InputChange EventType = "input"
)

// Node is an element of the UI tree.
type Node struct {
	Kind  Kind
	Class string
	// The text of Text and Heading nodes, the label of Button nodes, the asset
	// of Image nodes and the value of Input nodes.
	Text  string
	Style ui.Style
	// Hidden nodes occupy space but show nothing and cannot be focused.
	Hidden   bool
	Children []*Node
	// The component of a Mount node.
	Comp     Component
	Handlers map[EventType]Binding
}

// Div returns a Block node with the given classes and children.
func Div(class string, children ...*Node) *Node {
	return &Node{Kind: Block, Class: class, Children: children}
}

// T returns a Text node.
func T(s string) *Node { return &Node{Kind: Text, Text: s} }

// H returns a Heading node.
func H(s string) *Node {
	return &Node{Kind: Heading, Text: s, Style: ui.Style{Bold: true, Fg: ui.Yellow}}
}

// Btn returns a Button node that invokes b when clicked.
func Btn(label string, b Binding) *Node {
	return (&Node{Kind: Button, Text: label}).On(Click, b)
}

// Img returns an Image node for the given asset.
func Img(src string) *Node { return &Node{Kind: Image, Text: src} }

// In returns an Input node with the given value.
func In(value string) *Node { return &Node{Kind: Input, Text: value} }

// M returns a Mount node for the given component.
func M(c Component) *Node { return &Node{Kind: Mount, Comp: c} }

// MountAll returns Mount nodes for all the given components, in order.
func MountAll[C Component](cs []C) []*Node {
	nodes := make([]*Node, len(cs))
	for i, c := range cs {
		nodes[i] = M(c)
	}
	return nodes
}

// On binds b to the event type on n, and returns n itself.
func (n *Node) On(ev EventType, b Binding) *Node {
	if n.Handlers == nil {
		n.Handlers = make(map[EventType]Binding)
	}
	n.Handlers[ev] = b
	return n
}

// WithClass adds a class to n, and returns n itself.
func (n *Node) WithClass(class string) *Node {
	if n.Class == "" {
		n.Class = class
	} else {
		n.Class += " " + class
	}
	return n
}

// WithStyle merges a style into the style of n, and returns n itself.
func (n *Node) WithStyle(st ui.Style) *Node {
	n.Style = n.Style.Merge(st)
	return n
}

// HideIf hides n if cond is true, and returns n itself.
func (n *Node) HideIf(cond bool) *Node {
	n.Hidden = n.Hidden || cond
	return n
}

// HasClass reports whether n has the given class.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Handler returns the binding for an event type, if any.
func (n *Node) Handler(ev EventType) (Binding, bool) {
	b, ok := n.Handlers[ev]
	return b, ok
}

// Interactive reports whether n is an input or has a click binding. Hidden
// nodes may be interactive.
func (n *Node) Interactive() bool {
	if n.Kind == Input {
		return true
	}
	_, ok := n.Handlers[Click]
	return ok
}

// Focusable reports whether the runtime should let n receive focus.
func (n *Node) Focusable() bool {
	return !n.Hidden && n.Interactive()
}

// Expand returns the node that is rendered in place of n: for Mount nodes,
// the tree rendered by the component; for other nodes, n itself.
func (n *Node) Expand() *Node {
	for n != nil && n.Kind == Mount {
		if n.Comp == nil {
			return nil
		}
		n = n.Comp.Render()
	}
	return n
}
