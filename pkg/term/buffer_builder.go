package term

import (
	"github.com/mattn/go-runewidth"
	"src.prismdeck.dev/pkg/ui"
)

// BufferBuilder builds a Buffer by writing styled text into it, wrapping
// lines at the width.
type BufferBuilder struct {
	Width int
	// Column the next cell goes to.
	Col   int
	Lines [][]Cell
	Dot   Pos
}

// NewBufferBuilder returns a BufferBuilder with one empty line.
func NewBufferBuilder(width int) *BufferBuilder {
	return &BufferBuilder{Width: width, Lines: [][]Cell{make([]Cell, 0, width)}}
}

// SetDotHere puts the dot where the next cell will go and returns bb.
func (bb *BufferBuilder) SetDotHere() *BufferBuilder {
	bb.Dot = Pos{len(bb.Lines) - 1, bb.Col}
	return bb
}

func (bb *BufferBuilder) newline() {
	bb.Lines = append(bb.Lines, make([]Cell, 0, bb.Width))
	bb.Col = 0
}

// Writes one rune. A control character is shown in caret notation (like ^A)
// and inverted. A cell that doesn't fit goes to a new line.
func (bb *BufferBuilder) writeRune(r rune, sgr string) {
	if r == '\n' {
		bb.newline()
		return
	}
	c := Cell{string(r), sgr}
	if r < 0x20 || r == 0x7f {
		if sgr == "" {
			c = Cell{"^" + string(r^0x40), "7"}
		} else {
			c = Cell{"^" + string(r^0x40), sgr + ";7"}
		}
	}
	w := runewidth.StringWidth(c.Text)
	if bb.Col+w > bb.Width {
		bb.newline()
	}
	last := len(bb.Lines) - 1
	bb.Lines[last] = append(bb.Lines[last], c)
	bb.Col += w
}

// Write writes text with the given styles merged, and returns bb.
func (bb *BufferBuilder) Write(text string, styles ...ui.Style) *BufferBuilder {
	for _, seg := range ui.T(text, styles...) {
		sgr := seg.SGR()
		for _, r := range seg.Text {
			bb.writeRune(r, sgr)
		}
	}
	return bb
}

// Buffer returns the Buffer built so far.
func (bb *BufferBuilder) Buffer() *Buffer {
	return &Buffer{bb.Width, bb.Lines, bb.Dot}
}
