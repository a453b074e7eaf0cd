package app

import (
	"src.prismdeck.dev/pkg/errutil"
	"src.prismdeck.dev/pkg/sys"
	"src.prismdeck.dev/pkg/term"
	"src.prismdeck.dev/pkg/ui"
)

// Config configures Run.
type Config struct {
	// Called after each event that has been handled by the session.
	AfterEvent func()
}

var quitKeys = []term.KeyEvent{term.K('C', ui.Ctrl), term.K('D', ui.Ctrl)}

func isQuitKey(e term.Event) bool {
	for _, k := range quitKeys {
		if e == term.Event(k) {
			return true
		}
	}
	return false
}

// Run sets up tty and runs s in it until Ctrl-C or Ctrl-D is pressed, or a
// terminating signal arrives. The session is rendered after each event and
// when the window size changes.
func Run(tty TTY, s *Session, cfg Config) (err error) {
	restore, err := tty.Setup()
	if err != nil {
		return err
	}
	defer func() { err = errutil.Multi(err, restore()) }()

	// Start reading events.
	eventCh := make(chan term.Event)
	done := make(chan struct{})
	go func() {
		for {
			event, err := tty.ReadEvent()
			if err != nil {
				if err == term.ErrStopped {
					return
				}
				if term.IsReadErrorRecoverable(err) {
					logger.Println("ignoring read error:", err)
					continue
				}
				event = term.FatalErrorEvent{Err: err}
			}
			select {
			case eventCh <- event:
			case <-done:
				return
			}
			if _, fatal := event.(term.FatalErrorEvent); fatal {
				return
			}
		}
	}()
	defer tty.CloseReader()
	defer close(done)

	sigCh := tty.NotifySignals()
	defer tty.StopSignals()

	fullRefresh := true
	for {
		h, w := tty.Size()
		if err := tty.UpdateBuffer(s.Render(w, h), fullRefresh); err != nil {
			logger.Println("failed to update terminal:", err)
		}
		fullRefresh = false

		select {
		case event := <-eventCh:
			if fe, ok := event.(term.FatalErrorEvent); ok {
				return fe.Err
			}
			if isQuitKey(event) {
				return nil
			}
			s.Handle(event)
			if cfg.AfterEvent != nil {
				cfg.AfterEvent()
			}
		case sig, ok := <-sigCh:
			if !ok {
				sigCh = nil
				continue
			}
			if sig == sys.SIGWINCH {
				fullRefresh = true
				continue
			}
			logger.Println("quitting on signal", sig)
			return nil
		}
	}
}
