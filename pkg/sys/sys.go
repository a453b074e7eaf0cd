// Package sys provide system utilities with the same API across OSes.
//
// The subpackage eunix provides Unix-specific utilities.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const sigsChanBufferSize = 256

// NotifySignals returns a channel on which the signals interesting to a
// full-screen terminal program are delivered, and a function to stop the
// delivery.
func NotifySignals() (chan os.Signal, func()) { return notifySignals() }

// SIGWINCH is the window size change signal.
const SIGWINCH = sigWINCH

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the size cannot be determined.
func WinSize(file *os.File) (row, col int) {
	col, row, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return -1, -1
	}
	// Pick up a reasonable value for row and col if they equal zero in special
	// cases, e.g. serial console.
	if col == 0 {
		col = 80
	}
	if row == 0 {
		row = 24
	}
	return row, col
}

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
