// Package app runs a component tree in a terminal.
//
// A [Session] mounts a root component. It renders the whole tree to a
// [term.Buffer] and routes key events to the bindings of the focused element
// and then to the [Document]. [Run] drives a Session with events read from a
// [TTY].
package app

import (
	"src.prismdeck.dev/pkg/logutil"
	"src.prismdeck.dev/pkg/term"
	"src.prismdeck.dev/pkg/ui"
	"src.prismdeck.dev/pkg/vdom"
)

var logger = logutil.GetLogger("[app] ")

// Session holds a mounted component tree and the focus within it.
//
// The focused node is remembered by its key, so that it keeps the focus when
// an event changes what is rendered around it. When it disappears, the focus
// moves to whatever now takes its position in the focus order: the
// focusable nodes of the tree in render order. A negative position means
// nothing is focused, in which case keys go straight to the document.
type Session struct {
	root  vdom.Component
	doc   *Document
	focus int
	key   focusKey
}

// NewSession mounts root. Keys not consumed by elements are dispatched to doc.
func NewSession(root vdom.Component, doc *Document) *Session {
	return &Session{root: root, doc: doc, focus: -1}
}

// Document returns the document of the session.
func (s *Session) Document() *Document { return s.doc }

// Derives the tree and the focus order, and finds the focused node in it.
func (s *Session) derive() (*vdom.Node, []focusable) {
	tree, fs := expand(s.root)
	if s.focus < 0 {
		return tree, fs
	}
	for i, f := range fs {
		if f.key.same(s.key) {
			s.focus = i
			return tree, fs
		}
	}
	s.setFocus(min(s.focus, len(fs)-1), fs)
	return tree, fs
}

func (s *Session) setFocus(i int, fs []focusable) {
	s.focus = i
	if i >= 0 {
		s.key = fs[i].key
	} else {
		s.key = focusKey{}
	}
}

// Focused returns the node that currently has focus in a freshly derived
// tree, or nil.
func (s *Session) Focused() *vdom.Node {
	_, fs := s.derive()
	if s.focus < 0 {
		return nil
	}
	return fs[s.focus].node
}

// Render renders the tree to a buffer of exactly the given size. The dot is
// placed on the focused node, if any.
func (s *Session) Render(width, height int) *term.Buffer {
	tree, fs := s.derive()
	l := layout{}
	if s.focus >= 0 {
		l.focused = fs[s.focus].node
	}
	buf := &term.Buffer{}
	if tree != nil {
		buf, _ = l.render(tree, width)
	}
	return buf.Fit(width, height)
}

// Handle handles an event. Tab and Shift-Tab move the focus and Escape
// removes it. Enter on a focused element clicks it. Keys on a focused input
// edit it, and reach the document unless one of the input's bindings stops
// them. All other keys go to the document.
func (s *Session) Handle(e term.Event) {
	ke, ok := e.(term.KeyEvent)
	if !ok {
		return
	}
	k := ui.Key(ke)
	_, fs := s.derive()

	switch k {
	case ui.K(ui.Tab):
		s.moveFocus(1, fs)
		return
	case ui.K(ui.Tab, ui.Shift):
		s.moveFocus(-1, fs)
		return
	case ui.K(ui.Esc):
		if s.focus >= 0 {
			s.setFocus(-1, fs)
			return
		}
	}

	name, ok := KeyName(k)
	if !ok {
		logger.Println("ignoring key", k)
		return
	}
	if s.focus >= 0 {
		n := fs[s.focus].node
		if n.Kind == vdom.Input {
			if s.handleInput(n, k, name) {
				return
			}
		} else if name == "Enter" {
			if b, ok := n.Handler(vdom.Click); ok {
				invoke(b, vdom.Event{Key: name})
				return
			}
		}
	}
	s.doc.Dispatch(name)
}

func (s *Session) moveFocus(delta int, fs []focusable) {
	n := len(fs)
	switch {
	case n == 0:
		s.setFocus(-1, fs)
	case s.focus < 0 && delta > 0:
		s.setFocus(0, fs)
	case s.focus < 0:
		s.setFocus(n-1, fs)
	default:
		s.setFocus(((s.focus+delta)%n+n)%n, fs)
	}
}

// Fires the keydown binding of an input with the value before the key, then
// the input binding with the value after it, if it changed. It returns
// whether any of the fired bindings stops propagation.
func (s *Session) handleInput(n *vdom.Node, k ui.Key, name string) bool {
	stop := false
	old := n.Text
	if b, ok := n.Handler(vdom.KeyDown); ok {
		invoke(b, vdom.Event{Key: name, TargetValue: old})
		stop = b.StopPropagation
	}
	if value := edit(old, k); value != old {
		if b, ok := n.Handler(vdom.InputChange); ok {
			invoke(b, vdom.Event{Key: name, TargetValue: value})
			stop = stop || b.StopPropagation
		}
	}
	return stop
}

func invoke(b vdom.Binding, e vdom.Event) {
	if err := b.Invoke(e); err != nil {
		logger.Printf("binding for %q failed: %v", e.Key, err)
	}
}
