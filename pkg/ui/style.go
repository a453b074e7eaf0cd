// Package ui defines types for the terminal user interface: keys, styles and
// styled text.
package ui

import (
	"strconv"
	"strings"
)

// Color is a terminal color. The zero value is the terminal's default color.
type Color uint8

// Values for Color. The Bright variants use the 90-97 SGR range.
const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

func (c Color) sgr(base int) string {
	switch {
	case c == Default:
		return ""
	case c <= White:
		return strconv.Itoa(base + int(c-Black))
	default:
		return strconv.Itoa(base + 60 + int(c-BrightBlack))
	}
}

// Style specifies how something (mostly a string) shall be displayed.
type Style struct {
	Fg         Color
	Bg         Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underlined bool
	Inverse    bool
}

// SGR returns SGR sequence for the style, without the leading "\033[" and the
// trailing "m". The zero Style produces an empty string.
func (s Style) SGR() string {
	var sgr []string
	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Italic, "3")
	addIf(s.Underlined, "4")
	addIf(s.Inverse, "7")
	if fg := s.Fg.sgr(30); fg != "" {
		sgr = append(sgr, fg)
	}
	if bg := s.Bg.sgr(40); bg != "" {
		sgr = append(sgr, bg)
	}
	return strings.Join(sgr, ";")
}

// Merge returns a Style with the attributes of s, overridden by the non-zero
// attributes of t.
func (s Style) Merge(t Style) Style {
	if t.Fg != Default {
		s.Fg = t.Fg
	}
	if t.Bg != Default {
		s.Bg = t.Bg
	}
	s.Bold = s.Bold || t.Bold
	s.Dim = s.Dim || t.Dim
	s.Italic = s.Italic || t.Italic
	s.Underlined = s.Underlined || t.Underlined
	s.Inverse = s.Inverse || t.Inverse
	return s
}
