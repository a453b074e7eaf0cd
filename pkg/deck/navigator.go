package deck

import (
	"fmt"
	"strconv"

	"src.prismdeck.dev/pkg/comp"
	"src.prismdeck.dev/pkg/vdom"
)

// KeySource is a stream of keydown events, identified by their DOM key names.
type KeySource interface {
	// OnKeyDown registers f and returns a function that unregisters it.
	OnKeyDown(f func(key string)) (unsubscribe func())
}

// Navigator shows one slide of a fixed sequence at a time.
type Navigator struct {
	slides      []vdom.Component
	cursor      int
	unsubscribe func()
}

// NewNavigator creates a Navigator showing the first of the given slides, and
// subscribes it to keys. At least one slide is required. The keys source may
// be nil.
func NewNavigator(keys KeySource, slides ...vdom.Component) (*Navigator, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: a deck needs at least one slide", comp.ErrInvalidArgument)
	}
	n := &Navigator{slides: append([]vdom.Component(nil), slides...)}
	if keys != nil {
		n.unsubscribe = keys.OnKeyDown(n.OnKey)
	}
	return n, nil
}

// Close unsubscribes the navigator from its key source. It is safe to call
// more than once.
func (n *Navigator) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
}

// Cursor returns the index of the current slide.
func (n *Navigator) Cursor() int { return n.cursor }

// Len returns the number of slides.
func (n *Navigator) Len() int { return len(n.slides) }

// Current returns the current slide.
func (n *Navigator) Current() vdom.Component { return n.slides[n.cursor] }

// IsFirst reports whether the current slide is the first one.
func (n *Navigator) IsFirst() bool { return n.cursor == 0 }

// IsLast reports whether the current slide is the last one.
func (n *Navigator) IsLast() bool { return n.cursor == len(n.slides)-1 }

// Next moves to the next slide, unless the current slide is the last one.
func (n *Navigator) Next() {
	if !n.IsLast() {
		n.cursor++
	}
}

// Previous moves to the previous slide, unless the current slide is the first
// one.
func (n *Navigator) Previous() {
	if !n.IsFirst() {
		n.cursor--
	}
}

// OnKey moves forward on ArrowRight and space, and back on ArrowLeft. Other
// keys are ignored.
func (n *Navigator) OnKey(key string) {
	switch key {
	case "ArrowRight", " ":
		n.Next()
	case "ArrowLeft":
		n.Previous()
	}
}

// Jump moves to slide i.
func (n *Navigator) Jump(i int) error {
	if i < 0 || i >= len(n.slides) {
		return fmt.Errorf("%w: slide %d out of range [0, %d)", comp.ErrInvalidArgument, i, len(n.slides))
	}
	n.cursor = i
	return nil
}

// Render renders the current slide between the controls. A control is hidden
// when there is no slide in its direction.
func (n *Navigator) Render() *vdom.Node {
	return vdom.Div("slides",
		vdom.Div("row",
			vdom.Btn("<", vdom.Call(comp.Op0(n.Previous))).WithClass("control").HideIf(n.IsFirst()),
			vdom.T(strconv.Itoa(n.cursor+1)+" / "+strconv.Itoa(len(n.slides))).WithClass("indicator"),
			vdom.Btn(">", vdom.Call(comp.Op0(n.Next))).WithClass("control").HideIf(n.IsLast()),
		),
		vdom.M(n.Current()),
	)
}
