package comps

import (
	"src.prismdeck.dev/pkg/comp"
	"src.prismdeck.dev/pkg/vdom"
)

// BoundText holds a string kept in sync with a text input.
type BoundText struct {
	value string
}

// NewBoundText creates a BoundText with the given initial value.
func NewBoundText(value string) *BoundText { return &BoundText{value} }

// Value returns the current value.
func (b *BoundText) Value() string { return b.value }

// SetValue replaces the value.
func (b *BoundText) SetValue(value string) { b.value = value }

// Greeting returns the text shown below the input.
func (b *BoundText) Greeting() string {
	if b.value == "" {
		return "Enter your name!"
	}
	return "Hello, " + b.value + "!"
}

// Render renders the name slide. The input updates the value on every key
// and keeps the keys from reaching the slide navigation.
func (b *BoundText) Render() *vdom.Node {
	set := vdom.Call(comp.Op1(b.SetValue)).WithTargetValue().Stop()
	return slide("name",
		vdom.Img("assets/slide22-hello-name-top.svg").WithClass("what-is-your-name"),
		vdom.Div("drawn-input",
			vdom.In(b.value).On(vdom.KeyDown, set).On(vdom.InputChange, set)),
		vdom.H(b.Greeting()),
	)
}
