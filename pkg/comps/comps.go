// Package comps contains the widgets shown on the interactive slides.
//
// Every widget is a [comp.Component]: it owns its state, exposes operations
// that mutate it and renders a [vdom.Node] tree whose bindings call back into
// those operations.
package comps

import (
	"src.prismdeck.dev/pkg/vdom"
)

// Class of the outermost node of every slide.
const slideClass = "slide"

func slide(class string, children ...*vdom.Node) *vdom.Node {
	n := vdom.Div(slideClass, children...)
	if class != "" {
		n.WithClass(class)
	}
	return n
}

// ImageSlide is a static slide that shows one image.
type ImageSlide struct {
	Src   string
	Title string
}

// Render renders the slide.
func (s ImageSlide) Render() *vdom.Node {
	n := slide("", vdom.Img(s.Src))
	if s.Title != "" {
		n.Children = append([]*vdom.Node{vdom.H(s.Title)}, n.Children...)
	}
	return n
}
