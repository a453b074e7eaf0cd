package app

import (
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"

	"src.prismdeck.dev/pkg/term"
	"src.prismdeck.dev/pkg/ui"
	"src.prismdeck.dev/pkg/vdom"
)

// Minimal width of inputs, so that empty ones are still visible.
const inputWidth = 16

// A focusable node of an expanded tree.
//
// The key identifies the node across renders: the component whose Render
// produced it, and the number of interactive nodes that component rendered
// before it. Hidden nodes are counted, so showing or hiding a control does
// not change the keys of its siblings.
type focusable struct {
	node *vdom.Node
	key  focusKey
}

type focusKey struct {
	owner vdom.Component
	index int
}

// Reports whether two keys identify the same node. Components whose dynamic
// type is not comparable never match.
func (k focusKey) same(other focusKey) bool {
	if k.index != other.index {
		return false
	}
	t := reflect.TypeOf(k.owner)
	if t != reflect.TypeOf(other.owner) || (t != nil && !t.Comparable()) {
		return false
	}
	return k.owner == other.owner
}

// Returns a copy of the tree rendered by root with all Mount nodes replaced
// by what their components render, along with the focusable nodes of the
// copy in render order. Nodes inside hidden subtrees are not focusable. The
// tree is what both focus and layout work on.
func expand(root vdom.Component) (*vdom.Node, []focusable) {
	var fs []focusable
	var walk func(n *vdom.Node, owner vdom.Component, count *int, hidden bool) *vdom.Node
	walk = func(n *vdom.Node, owner vdom.Component, count *int, hidden bool) *vdom.Node {
		for n != nil && n.Kind == vdom.Mount {
			if n.Comp == nil {
				return nil
			}
			owner, count = n.Comp, new(int)
			n = n.Comp.Render()
		}
		if n == nil {
			return nil
		}
		hidden = hidden || n.Hidden
		c := *n
		if c.Interactive() {
			if !hidden {
				fs = append(fs, focusable{&c, focusKey{owner, *count}})
			}
			*count++
		}
		c.Children = make([]*vdom.Node, 0, len(n.Children))
		for _, child := range n.Children {
			if e := walk(child, owner, count, hidden); e != nil {
				c.Children = append(c.Children, e)
			}
		}
		return &c
	}
	tree := walk(vdom.M(root), nil, new(int), false)
	return tree, fs
}

// Lays out an expanded tree.
type layout struct {
	focused *vdom.Node
}

// Renders n into a buffer whose width is the width actually used, at most
// width. The boolean reports whether the buffer contains the focused node, in
// which case the dot of the buffer is placed on it.
func (l *layout) render(n *vdom.Node, width int) (*term.Buffer, bool) {
	if width <= 0 {
		return &term.Buffer{}, false
	}
	var buf *term.Buffer
	var hasDot bool
	if n.Kind == vdom.Block {
		if n.HasClass("row") {
			buf, hasDot = l.renderRow(n, width)
		} else {
			buf, hasDot = l.renderColumn(n, width)
		}
	} else {
		buf, hasDot = l.renderLeaf(n, width)
	}
	if n.Hidden {
		buf.Blank()
		hasDot = false
	}
	return buf, hasDot
}

func (l *layout) renderColumn(n *vdom.Node, width int) (*term.Buffer, bool) {
	buf := &term.Buffer{}
	hasDot := false
	for _, child := range n.Children {
		b, h := l.render(child, width)
		buf.ExtendDown(b, h)
		hasDot = hasDot || h
	}
	return buf, hasDot
}

// Children of a row are separated by one column.
func (l *layout) renderRow(n *vdom.Node, width int) (*term.Buffer, bool) {
	buf := &term.Buffer{}
	hasDot := false
	for _, child := range n.Children {
		remaining := width - buf.Width
		if buf.Width > 0 {
			remaining--
		}
		if remaining <= 0 {
			break
		}
		b, h := l.render(child, remaining)
		if len(b.Lines) == 0 {
			continue
		}
		if buf.Width > 0 {
			buf.Width++
		}
		buf.ExtendRight(b, h)
		hasDot = hasDot || h
	}
	return buf, hasDot
}

func (l *layout) renderLeaf(n *vdom.Node, width int) (*term.Buffer, bool) {
	focused := n == l.focused
	text, style := n.Text, n.Style
	dotCol := 0
	switch n.Kind {
	case vdom.Button:
		text = "[" + text + "]"
		if focused {
			style.Inverse = true
		}
	case vdom.Image:
		style.Italic = true
		style.Dim = true
		style.Fg = ui.Cyan
	case vdom.Input:
		dotCol = runewidth.StringWidth(text)
		if pad := inputWidth - dotCol; pad > 0 {
			text += strings.Repeat(" ", pad)
		} else {
			text += " "
		}
		style.Underlined = true
		if focused {
			style.Bold = true
		}
	}
	text = runewidth.Truncate(text, width, "")
	w := runewidth.StringWidth(text)
	if w == 0 && n.Kind != vdom.Text {
		return &term.Buffer{}, false
	}
	bb := term.NewBufferBuilder(width)
	bb.Write(text, style)
	buf := bb.Buffer()
	buf.Width = w
	if focused {
		buf.Dot = term.Pos{Line: 0, Col: min(dotCol, w)}
	}
	return buf, focused
}
