package term

import (
	"time"
	"unicode/utf8"

	"src.prismdeck.dev/pkg/ui"
)

// byteSource yields the bytes typed into a terminal. A negative timeout
// waits forever.
type byteSource interface {
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

// How long to wait for the next byte of an escape sequence. Terminals send a
// whole sequence at once, so a byte that is slower than this starts a new
// key.
var seqTimeout = 10 * time.Millisecond

// decoder turns bytes into events, one event per call to next.
type decoder struct {
	src byteSource
	// Bytes of the current sequence, for error messages.
	seq []byte
}

func decodeEvent(src byteSource) (Event, error) {
	d := &decoder{src: src}
	return d.next()
}

// Reads one UTF-8 encoded rune. Only the first byte is subject to timeout.
func (d *decoder) readRune(timeout time.Duration) (rune, error) {
	b, err := d.src.ReadByteWithTimeout(timeout)
	if err != nil {
		return 0, err
	}
	start := len(d.seq)
	d.seq = append(d.seq, b)
	for !utf8.FullRune(d.seq[start:]) {
		b, err := d.src.ReadByteWithTimeout(seqTimeout)
		if err != nil {
			return 0, err
		}
		d.seq = append(d.seq, b)
	}
	r, size := utf8.DecodeRune(d.seq[start:])
	if r == utf8.RuneError && size <= 1 {
		return 0, d.fail("bad utf8")
	}
	return r, nil
}

// Reads the next rune of a sequence, returning ok = false if there isn't one.
func (d *decoder) more() (r rune, ok bool) {
	r, err := d.readRune(seqTimeout)
	return r, err == nil
}

func (d *decoder) fail(msg string) error {
	return seqError{msg, string(d.seq)}
}

func (d *decoder) next() (Event, error) {
	r, err := d.readRune(-1)
	if err != nil {
		return nil, err
	}
	if r != 0x1b {
		return KeyEvent(ctrlKey(r)), nil
	}

	r, ok := d.more()
	// rxvt marks Alt on a CSI or G3 sequence by doubling the ESC.
	alt := false
	if ok && r == 0x1b {
		alt = true
		r, ok = d.more()
	}
	switch {
	case !ok:
		return K(ui.Esc), nil
	case r == '[':
		return d.csi(alt)
	case r == 'O':
		return d.g3(alt)
	default:
		k := ctrlKey(r)
		k.Mod |= ui.Alt
		return KeyEvent(k), nil
	}
}

// Decodes what follows ESC [.
func (d *decoder) csi(alt bool) (Event, error) {
	r, ok := d.more()
	if !ok {
		return K('[', ui.Alt), nil
	}
	var args []int
	for ; ; r, ok = d.more() {
		if !ok {
			return nil, d.fail("incomplete CSI")
		}
		if r == ';' {
			args = append(args, 0)
		} else if '0' <= r && r <= '9' {
			if len(args) == 0 {
				args = append(args, 0)
			}
			args[len(args)-1] = args[len(args)-1]*10 + int(r-'0')
		} else {
			break
		}
	}

	switch {
	case r == 'R':
		if len(args) != 2 {
			return nil, d.fail("bad CPR")
		}
		return CursorPosition{args[0], args[1]}, nil
	case r == '~' && len(args) == 1 && (args[0] == 200 || args[0] == 201):
		return PasteSetting(args[0] == 200), nil
	}
	k, ok := csiKey(args, r)
	if !ok {
		return nil, d.fail("bad CSI")
	}
	if alt {
		k.Mod |= ui.Alt
	}
	return KeyEvent(k), nil
}

// Decodes what follows ESC O.
func (d *decoder) g3(alt bool) (Event, error) {
	r, ok := d.more()
	if !ok {
		return K('O', ui.Alt), nil
	}
	k, ok := g3Keys[r]
	if !ok {
		return nil, d.fail("bad G3")
	}
	if alt {
		k.Mod |= ui.Alt
	}
	return KeyEvent(k), nil
}

// Maps a rune typed on its own to a key, recognizing control characters.
func ctrlKey(r rune) ui.Key {
	switch r {
	case 0x0:
		return ui.K('`', ui.Ctrl)
	case 0x1e:
		return ui.K('6', ui.Ctrl)
	case 0x1f:
		return ui.K('/', ui.Ctrl)
	case '\r':
		// Enter arrives as ^M in raw mode.
		return ui.K(ui.Enter)
	case 0x08:
		return ui.K(ui.Backspace)
	case ui.Tab, ui.Enter, ui.Backspace:
		// ^I, ^J and ^? are far more often Tab, Enter and Backspace.
		return ui.K(r)
	}
	if 0x1 <= r && r <= 0x1d {
		return ui.K(r+0x40, ui.Ctrl)
	}
	return ui.K(r)
}

// Keys sent as ESC O followed by one rune.
var g3Keys = map[rune]ui.Key{
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End), 'M': ui.K(ui.Insert),
	// urxvt
	'a': ui.K(ui.Up, ui.Ctrl), 'b': ui.K(ui.Down, ui.Ctrl),
	'c': ui.K(ui.Right, ui.Ctrl), 'd': ui.K(ui.Left, ui.Ctrl),
	'P': ui.K(ui.F1), 'Q': ui.K(ui.F2), 'R': ui.K(ui.F3), 'S': ui.K(ui.F4),
}

// CSI keys told apart by their final rune, like ESC [ A for Up. A modified key
// has the arguments 1 and the xterm modifier, like ESC [ 1 ; 5 A for Ctrl-Up.
var csiFinalKeys = map[rune]ui.Key{
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	// urxvt
	'a': ui.K(ui.Up, ui.Shift), 'b': ui.K(ui.Down, ui.Shift),
	'c': ui.K(ui.Right, ui.Shift), 'd': ui.K(ui.Left, ui.Shift),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End),
	'Z': ui.K(ui.Tab, ui.Shift),
}

// CSI keys ending in '~', told apart by their first argument. The optional
// second argument is the xterm modifier, like ESC [ 3 ; 5 ~ for Ctrl-Delete.
var csiTildeKeys = map[int]rune{
	1: ui.Home, 2: ui.Insert, 3: ui.Delete, 4: ui.End,
	5: ui.PageUp, 6: ui.PageDown,
	// urxvt
	7: ui.Home, 8: ui.End,
	11: ui.F1, 12: ui.F2, 13: ui.F3, 14: ui.F4,
	15: ui.F5, 17: ui.F6, 18: ui.F7, 19: ui.F8,
	20: ui.F9, 21: ui.F10, 23: ui.F11, 24: ui.F12,
}

func csiKey(args []int, final rune) (ui.Key, bool) {
	if k, ok := csiFinalKeys[final]; ok {
		switch {
		case len(args) == 0:
			return k, true
		case len(args) == 2 && args[0] == 1:
			return withXtermMod(k, args[1])
		}
		return ui.Key{}, false
	}
	if final != '~' || len(args) == 0 || len(args) > 2 {
		return ui.Key{}, false
	}
	r, ok := csiTildeKeys[args[0]]
	if !ok {
		return ui.Key{}, false
	}
	if len(args) == 1 {
		return ui.K(r), true
	}
	return withXtermMod(ui.K(r), args[1])
}

// Applies an xterm modifier argument, which is 1 plus a bitmask of Shift (1),
// Alt (2), Ctrl (4) and Meta (8). Meta is taken as Alt.
func withXtermMod(k ui.Key, arg int) (ui.Key, bool) {
	if arg < 0 || arg > 16 {
		return ui.Key{}, false
	}
	if arg == 0 {
		return k, true
	}
	bits := arg - 1
	if bits&1 != 0 {
		k.Mod |= ui.Shift
	}
	if bits&(2|8) != 0 {
		k.Mod |= ui.Alt
	}
	if bits&4 != 0 {
		k.Mod |= ui.Ctrl
	}
	return k, true
}
