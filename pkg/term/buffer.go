package term

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one unit of text on the screen, with its SGR style. Wide characters
// make cells that are 2 columns wide.
type Cell struct {
	Text  string
	Style string
}

// Pos is a position in a Buffer.
type Pos struct {
	Line, Col int
}

// CellsWidth returns the number of columns cs takes up.
func CellsWidth(cs []Cell) int {
	w := 0
	for _, c := range cs {
		w += runewidth.StringWidth(c.Text)
	}
	return w
}

// Returns the index of the first cell where a and b differ, and whether they
// are the same.
func firstDiff(a, b []Cell) (int, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, false
		}
	}
	return n, len(a) == len(b)
}

func spaces(n int) []Cell {
	cs := make([]Cell, n)
	for i := range cs {
		cs[i] = Cell{Text: " "}
	}
	return cs
}

// Buffer is a rectangle of cells, plus the position of the cursor (the
// "dot"). The Writer keeps a copy of what the terminal shows and only sends
// the changes, so the widths here must agree with those of the terminal.
type Buffer struct {
	Width int
	Lines [][]Cell
	Dot   Pos
}

// Position of the cursor after all the lines have been written.
func (b *Buffer) end() Pos {
	if len(b.Lines) == 0 {
		return Pos{}
	}
	last := len(b.Lines) - 1
	return Pos{last, CellsWidth(b.Lines[last])}
}

// ExtendDown appends the lines of b2 below b and widens b to b2 if needed. If
// moveDot is true, the dot of b2 becomes the dot of b. It returns b.
func (b *Buffer) ExtendDown(b2 *Buffer, moveDot bool) *Buffer {
	if b2 == nil || b2.Lines == nil {
		return b
	}
	if moveDot {
		b.Dot = Pos{len(b.Lines) + b2.Dot.Line, b2.Dot.Col}
	}
	b.Lines = append(b.Lines, b2.Lines...)
	b.Width = max(b.Width, b2.Width)
	return b
}

// ExtendRight places b2 to the right of b. Lines of b are padded to b.Width
// first; if b2 is taller, the extra lines are indented by b.Width. If moveDot
// is true, the dot of b2 becomes the dot of b. It returns b.
func (b *Buffer) ExtendRight(b2 *Buffer, moveDot bool) *Buffer {
	for i, line := range b2.Lines {
		if i >= len(b.Lines) {
			b.Lines = append(b.Lines, append(spaces(b.Width), line...))
			continue
		}
		if pad := b.Width - CellsWidth(b.Lines[i]); pad > 0 {
			b.Lines[i] = append(b.Lines[i], spaces(pad)...)
		}
		b.Lines[i] = append(b.Lines[i], line...)
	}
	if moveDot {
		b.Dot = Pos{b2.Dot.Line, b.Width + b2.Dot.Col}
	}
	b.Width += b2.Width
	return b
}

// Blank replaces every cell with unstyled spaces, keeping the width of each
// line.
func (b *Buffer) Blank() {
	for i, line := range b.Lines {
		b.Lines[i] = spaces(CellsWidth(line))
	}
}

// Fit makes b exactly width columns wide and height lines tall, cutting lines
// off the bottom or adding empty ones. A dot that falls off the bottom moves
// to the start of the last line. It returns b.
func (b *Buffer) Fit(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		*b = Buffer{Width: max(width, 0)}
		return b
	}
	b.Width = width
	if len(b.Lines) > height {
		clear(b.Lines[height:])
		b.Lines = b.Lines[:height]
	}
	for len(b.Lines) < height {
		b.Lines = append(b.Lines, []Cell{})
	}
	if b.Dot.Line >= height {
		b.Dot = Pos{height - 1, 0}
	}
	return b
}

// TTYString renders the buffer inside a box, with SGR sequences for the
// styles. Unused columns are marked with a "$" followed by spaces. It is
// meant for test failure messages.
func (b *Buffer) TTYString() string {
	if b == nil {
		return "nil"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Width = %d, Dot = (%d, %d)\n", b.Width, b.Dot.Line, b.Dot.Col)
	sb.WriteString("┌" + strings.Repeat("─", b.Width) + "┐\n")
	for _, line := range b.Lines {
		sb.WriteString("│")
		for _, c := range line {
			if c.Style == "" {
				sb.WriteString(c.Text)
			} else {
				sb.WriteString("\033[" + c.Style + "m" + c.Text + "\033[m")
			}
		}
		if used := CellsWidth(line); used < b.Width {
			sb.WriteString("$" + strings.Repeat(" ", b.Width-used-1))
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", b.Width) + "┘\n")
	return sb.String()
}

// PlainLines returns the text of each line, without styles or trailing
// spaces.
func (b *Buffer) PlainLines() []string {
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		var sb strings.Builder
		for _, c := range line {
			sb.WriteString(c.Text)
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}
