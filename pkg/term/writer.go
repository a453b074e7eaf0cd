package term

import (
	"bytes"
	"fmt"
	"io"

	"src.prismdeck.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[term] ")

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Writer keeps the terminal in sync with a Buffer. It remembers the last
// buffer written and only rewrites the cells that have changed since.
type Writer struct {
	out  io.Writer
	last *Buffer
}

// NewWriter returns a Writer that writes VT100 sequences to out. The terminal
// is assumed to be in raw mode, so line feeds come with explicit carriage
// returns.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out, &Buffer{}}
}

// Buffer returns the buffer last written.
func (w *Writer) Buffer() *Buffer { return w.last }

// Reset forgets the buffer last written, so that the next update rewrites
// every line.
func (w *Writer) Reset() { w.last = &Buffer{} }

// frame accumulates the output of one update so that it reaches the terminal
// in a single write.
type frame struct {
	bytes.Buffer
	sgr string
}

func (f *frame) setStyle(sgr string) {
	if sgr != f.sgr {
		fmt.Fprintf(f, "\033[0;%sm", sgr)
		f.sgr = sgr
	}
}

func (f *frame) cells(cs []Cell) {
	for _, c := range cs {
		f.setStyle(c.Style)
		f.WriteString(c.Text)
	}
}

// Moves the cursor between two positions, relatively for the line and
// absolutely for the column.
func (f *frame) move(from, to Pos) {
	switch {
	case to.Line > from.Line:
		fmt.Fprintf(f, "\033[%dB", to.Line-from.Line)
	case to.Line < from.Line:
		fmt.Fprintf(f, "\033[%dA", from.Line-to.Line)
	}
	f.WriteByte('\r')
	if to.Col > 0 {
		fmt.Fprintf(f, "\033[%dC", to.Col)
	}
}

// UpdateBuffer makes the terminal show buf. Unless fullRefresh is true or the
// width has changed, only the lines that differ from the last buffer are
// rewritten.
func (w *Writer) UpdateBuffer(buf *Buffer, fullRefresh bool) error {
	old := w.last
	if old.Lines != nil && old.Width != buf.Width {
		fullRefresh = true
	}

	f := &frame{}
	f.WriteString(hideCursor)
	// Go back to the first column of the first line.
	f.move(old.Dot, Pos{})
	if fullRefresh {
		// Writing a space before erasing stops tmux from saving the screen
		// to its scrollback.
		f.WriteString(" \033[J\r")
	}

	for i, line := range buf.Lines {
		if i > 0 {
			f.WriteString("\r\n")
		}
		if fullRefresh || i >= len(old.Lines) {
			f.cells(line)
			continue
		}
		j, same := firstDiff(line, old.Lines[i])
		if same {
			continue
		}
		if col := CellsWidth(line[:j]); col > 0 {
			fmt.Fprintf(f, "\033[%dC", col)
		}
		if j < len(old.Lines[i]) {
			// Erase the remains of the old line.
			f.setStyle("")
			f.WriteString("\033[K")
		}
		f.cells(line[j:])
	}
	if !fullRefresh && len(old.Lines) > len(buf.Lines) {
		// Erase the lines below.
		f.setStyle("")
		f.WriteString("\r\n\033[J\033[A")
	}
	f.setStyle("")
	f.move(buf.end(), buf.Dot)
	f.WriteString(showCursor)

	if _, err := w.out.Write(f.Bytes()); err != nil {
		logger.Println("failed to write buffer:", err)
		return err
	}
	w.last = buf
	return nil
}
