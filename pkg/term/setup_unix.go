//go:build unix

package term

import (
	"os"

	xterm "golang.org/x/term"
	"src.prismdeck.dev/pkg/errutil"
)

const (
	enterAltScreen = "\033[?1049h"
	leaveAltScreen = "\033[?1049l"
	// Disabling autowrap lets the writer fill the last column of a line
	// without the terminal moving the cursor to the next line.
	disableAutoWrap = "\033[?7l"
	enableAutoWrap  = "\033[?7h"
	enablePaste     = "\033[?2004h"
	disablePaste    = "\033[?2004l"
)

// Setup puts the terminal referenced by in into raw mode and switches out to
// the alternate screen. It returns a function that restores the original
// state.
func Setup(in, out *os.File) (func() error, error) {
	fd := int(in.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	_, err = out.WriteString(enterAltScreen + disableAutoWrap + enablePaste)
	if err != nil {
		xterm.Restore(fd, state)
		return nil, err
	}
	return func() error {
		_, errWrite := out.WriteString(disablePaste + enableAutoWrap + showCursor + leaveAltScreen)
		return errutil.Multi(errWrite, xterm.Restore(fd, state))
	}, nil
}
