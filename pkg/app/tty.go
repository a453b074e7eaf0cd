package app

import (
	"errors"
	"os"

	"src.prismdeck.dev/pkg/sys"
	"src.prismdeck.dev/pkg/term"
)

// TTY is the terminal a session runs in.
type TTY interface {
	// Setup prepares the terminal and returns a function restoring it.
	Setup() (restore func() error, err error)
	// Size returns the height and width of the terminal.
	Size() (h, w int)
	// ReadEvent reads one event. It can only be called after Setup.
	ReadEvent() (term.Event, error)
	// CloseReader aborts any outstanding ReadEvent call, which then returns
	// term.ErrStopped.
	CloseReader()
	// UpdateBuffer shows buf on the terminal.
	UpdateBuffer(buf *term.Buffer, fullRefresh bool) error
	// NotifySignals starts relaying signals and returns the channel they are
	// relayed on.
	NotifySignals() <-chan os.Signal
	// StopSignals stops relaying signals.
	StopSignals()
}

var errNotSetup = errors.New("terminal not set up")

// NewTTY returns a TTY reading from in and writing to out.
func NewTTY(in, out *os.File) TTY {
	return &stdTTY{in: in, out: out, w: term.NewWriter(out)}
}

type stdTTY struct {
	in, out     *os.File
	r           *term.Reader
	w           *term.Writer
	stopSignals func()
}

func (t *stdTTY) Setup() (func() error, error) {
	restore, err := term.Setup(t.in, t.out)
	if err != nil {
		return nil, err
	}
	r, err := term.NewReader(t.in)
	if err != nil {
		restore()
		return nil, err
	}
	t.r = r
	return restore, nil
}

// Fallback size when the size of the terminal can't be determined.
const (
	fallbackHeight = 24
	fallbackWidth  = 80
)

func (t *stdTTY) Size() (h, w int) {
	h, w = sys.WinSize(t.out)
	if h <= 0 || w <= 0 {
		return fallbackHeight, fallbackWidth
	}
	return h, w
}

func (t *stdTTY) ReadEvent() (term.Event, error) {
	if t.r == nil {
		return nil, errNotSetup
	}
	return t.r.ReadEvent()
}

func (t *stdTTY) CloseReader() {
	if t.r != nil {
		t.r.Close()
	}
}

func (t *stdTTY) UpdateBuffer(buf *term.Buffer, fullRefresh bool) error {
	return t.w.UpdateBuffer(buf, fullRefresh)
}

func (t *stdTTY) NotifySignals() <-chan os.Signal {
	ch, stop := sys.NotifySignals()
	t.stopSignals = stop
	return ch
}

func (t *stdTTY) StopSignals() {
	if t.stopSignals != nil {
		t.stopSignals()
		t.stopSignals = nil
	}
}
