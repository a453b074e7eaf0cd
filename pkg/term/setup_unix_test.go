//go:build unix

package term

import (
	"testing"

	"github.com/creack/pty"
	xterm "golang.org/x/term"
	"src.prismdeck.dev/pkg/must"
	"src.prismdeck.dev/pkg/ui"
)

func TestSetup(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	before, err := xterm.GetState(int(tty.Fd()))
	if err != nil {
		t.Fatal(err)
	}
	restore, err := Setup(tty, tty)
	if err != nil {
		t.Fatal(err)
	}
	if err := restore(); err != nil {
		t.Errorf("restore errors: %v", err)
	}
	after := must.OK1(xterm.GetState(int(tty.Fd())))
	if *before != *after {
		t.Errorf("terminal state not restored")
	}
}

func TestSetup_NotATerminal(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if _, err := Setup(r, w); err == nil {
		t.Errorf("Setup on a pipe succeeded, want error")
	}
}

func TestReader(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	restore := must.OK1(Setup(tty, tty))
	defer restore()

	rd := must.OK1(NewReader(tty))
	defer rd.Close()

	ptmx.WriteString("a\033[C")
	for _, want := range []Event{K('a'), K(ui.Right)} {
		event, err := rd.ReadEvent()
		if err != nil {
			t.Fatal(err)
		}
		if event != want {
			t.Errorf("got event %v, want %v", event, want)
		}
	}
}
