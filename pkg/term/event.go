package term

import "src.prismdeck.dev/pkg/ui"

// Event is something read from the terminal.
type Event interface {
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent ui.Key

// K returns the KeyEvent for a rune and modifiers.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

// CursorPosition is the terminal's answer to a cursor position request.
type CursorPosition Pos

// PasteSetting marks the start (true) or end (false) of a bracketed paste.
type PasteSetting bool

// FatalErrorEvent carries an error after which no more events can be read.
type FatalErrorEvent struct{ Err error }

func (KeyEvent) isEvent()        {}
func (CursorPosition) isEvent()  {}
func (PasteSetting) isEvent()    {}
func (FatalErrorEvent) isEvent() {}
