// Package apptest provides a fake terminal for testing code that uses
// [app.Run].
package apptest

import (
	"os"
	"slices"
	"sync"
	"testing"
	"time"

	"src.prismdeck.dev/pkg/app"
	"src.prismdeck.dev/pkg/term"
	"src.prismdeck.dev/pkg/testutil"
)

// Capacity of the channels of the fake terminal. Injecting more events or
// signals than this, or rendering more buffers without reading them, blocks.
const capacity = 4096

// Initial size of fake TTY.
const (
	FakeTTYHeight = 20
	FakeTTYWidth  = 50
)

type fakeTTY struct {
	setup func() (func() error, error)

	events chan term.Event
	// Guards closing events against injecting into it.
	eventsMu     sync.Mutex
	eventsClosed bool

	signals chan os.Signal

	// Every buffer rendered is sent to updates and recorded in bufs.
	updates       chan *term.Buffer
	bufMu         sync.RWMutex
	bufs          []*term.Buffer
	fullRefreshes int

	sizeMu        sync.RWMutex
	height, width int
}

// NewFakeTTY returns a fake terminal of size FakeTTYHeight x FakeTTYWidth,
// and a TTYCtrl to drive it.
func NewFakeTTY() (app.TTY, TTYCtrl) {
	t := &fakeTTY{
		events:  make(chan term.Event, capacity),
		signals: make(chan os.Signal, capacity),
		updates: make(chan *term.Buffer, capacity),
		height:  FakeTTYHeight, width: FakeTTYWidth,
	}
	return t, TTYCtrl{t}
}

func (t *fakeTTY) Setup() (func() error, error) {
	if t.setup != nil {
		return t.setup()
	}
	return func() error { return nil }, nil
}

func (t *fakeTTY) Size() (h, w int) {
	t.sizeMu.RLock()
	defer t.sizeMu.RUnlock()
	return t.height, t.width
}

func (t *fakeTTY) ReadEvent() (term.Event, error) {
	if e, ok := <-t.events; ok {
		return e, nil
	}
	return nil, term.ErrStopped
}

func (t *fakeTTY) CloseReader() {
	t.eventsMu.Lock()
	defer t.eventsMu.Unlock()
	if !t.eventsClosed {
		t.eventsClosed = true
		close(t.events)
	}
}

func (t *fakeTTY) UpdateBuffer(buf *term.Buffer, fullRefresh bool) error {
	t.bufMu.Lock()
	defer t.bufMu.Unlock()
	t.bufs = append(t.bufs, buf)
	if fullRefresh {
		t.fullRefreshes++
	}
	t.updates <- buf
	return nil
}

func (t *fakeTTY) NotifySignals() <-chan os.Signal { return t.signals }

func (t *fakeTTY) StopSignals() {}

// TTYCtrl controls and inspects a fake terminal.
type TTYCtrl struct{ *fakeTTY }

// SetSetup makes Setup return restore and err.
func (t TTYCtrl) SetSetup(restore func() error, err error) {
	t.setup = func() (func() error, error) { return restore, err }
}

// SetSize changes the size of the fake terminal.
func (t TTYCtrl) SetSize(h, w int) {
	t.sizeMu.Lock()
	defer t.sizeMu.Unlock()
	t.height, t.width = h, w
}

// Inject queues events to be read. Events injected after the reader has been
// closed are dropped.
func (t TTYCtrl) Inject(events ...term.Event) {
	t.eventsMu.Lock()
	defer t.eventsMu.Unlock()
	if t.eventsClosed {
		return
	}
	for _, e := range events {
		t.events <- e
	}
}

// InjectSignal queues signals to be delivered.
func (t TTYCtrl) InjectSignal(sigs ...os.Signal) {
	for _, sig := range sigs {
		t.signals <- sig
	}
}

// BufferHistory returns all buffers rendered so far.
func (t TTYCtrl) BufferHistory() []*term.Buffer {
	t.bufMu.RLock()
	defer t.bufMu.RUnlock()
	return slices.Clone(t.bufs)
}

// LastBuffer returns the last buffer rendered, or nil if there is none.
func (t TTYCtrl) LastBuffer() *term.Buffer {
	t.bufMu.RLock()
	defer t.bufMu.RUnlock()
	if len(t.bufs) == 0 {
		return nil
	}
	return t.bufs[len(t.bufs)-1]
}

// FullRefreshes returns how many of the buffers were full refreshes.
func (t TTYCtrl) FullRefreshes() int {
	t.bufMu.RLock()
	defer t.bufMu.RUnlock()
	return t.fullRefreshes
}

// TestLines waits up to 100ms (scaled) for a buffer whose first lines, as
// given by PlainLines, are want. It fails the test if none shows up.
func (t TTYCtrl) TestLines(tt *testing.T, want ...string) {
	tt.Helper()
	deadline := time.After(testutil.Scaled(100 * time.Millisecond))
	for {
		select {
		case buf := <-t.updates:
			if lines := buf.PlainLines(); len(lines) >= len(want) &&
				slices.Equal(lines[:len(want)], want) {
				return
			}
		case <-deadline:
			tt.Logf("no buffer starting with %q", want)
			if last := t.LastBuffer(); last != nil {
				tt.Logf("last buffer:\n%s", last.TTYString())
			}
			tt.FailNow()
		}
	}
}
