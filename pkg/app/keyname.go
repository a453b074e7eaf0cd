package app

import (
	"unicode"

	"src.prismdeck.dev/pkg/ui"
)

var keyNames = map[rune]string{
	ui.Up: "ArrowUp", ui.Down: "ArrowDown", ui.Left: "ArrowLeft", ui.Right: "ArrowRight",
	ui.Home: "Home", ui.End: "End", ui.Insert: "Insert", ui.Delete: "Delete",
	ui.PageUp: "PageUp", ui.PageDown: "PageDown",
	ui.F1: "F1", ui.F2: "F2", ui.F3: "F3", ui.F4: "F4", ui.F5: "F5", ui.F6: "F6",
	ui.F7: "F7", ui.F8: "F8", ui.F9: "F9", ui.F10: "F10", ui.F11: "F11", ui.F12: "F12",

	ui.Tab: "Tab", ui.Enter: "Enter", ui.Backspace: "Backspace", ui.Esc: "Escape",
}

// KeyName returns the name a key is delivered to bindings and document
// subscribers with, following the key names of web browsers: "ArrowLeft",
// "Enter", "a", " " and so on. Keys modified with Ctrl or Alt have no name.
func KeyName(k ui.Key) (string, bool) {
	if k.Mod&(ui.Ctrl|ui.Alt) != 0 {
		return "", false
	}
	if name, ok := keyNames[k.Rune]; ok {
		return name, true
	}
	if k.Rune >= 0 && unicode.IsPrint(k.Rune) {
		return string(k.Rune), true
	}
	return "", false
}

// Returns the value of an input after k is pressed in it.
func edit(value string, k ui.Key) string {
	switch {
	case k.Mod&(ui.Ctrl|ui.Alt) != 0:
		return value
	case k.Rune == ui.Backspace:
		r := []rune(value)
		if len(r) == 0 {
			return value
		}
		return string(r[:len(r)-1])
	case k.Rune >= 0 && k.Rune != ui.Tab && unicode.IsPrint(k.Rune):
		return value + string(k.Rune)
	}
	return value
}
