// Package view holds the frame-to-frame state of a panel renderer that does
// not depend on a graphics backend: row layout, typed text, drag scrubbing
// and change highlights.
package view

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"editor3d/internal/gui"
)

// ClickSlop is how far the mouse may move, in pixels, for a press and
// release on a field to count as a click rather than a drag.
const ClickSlop = 2

// TextEdit is the text being typed into one part of a widget. Part tells
// apart the components of a vector field.
type TextEdit struct {
	Target gui.Element
	Part   int
	Text   string
	// Accept filters typed runes. Nil accepts everything printable.
	Accept func(r rune) bool
}

// Start begins typing into part of e with initial text.
func (t *TextEdit) Start(e gui.Element, part int, text string, accept func(rune) bool) {
	*t = TextEdit{Target: e, Part: part, Text: text, Accept: accept}
}

// Stop ends typing and returns the text.
func (t *TextEdit) Stop() string {
	s := t.Text
	*t = TextEdit{}
	return s
}

// On reports whether part of e is being typed into.
func (t *TextEdit) On(e gui.Element, part int) bool {
	return t.Target != nil && t.Target == e && t.Part == part
}

func (t *TextEdit) Active() bool { return t.Target != nil }

// Type appends r when it passes the filter.
func (t *TextEdit) Type(r rune) {
	if r < ' ' {
		return
	}
	if t.Accept != nil && !t.Accept(r) {
		return
	}
	t.Text += string(r)
}

// Backspace removes the last rune.
func (t *TextEdit) Backspace() {
	if t.Text == "" {
		return
	}
	r := []rune(t.Text)
	t.Text = string(r[:len(r)-1])
}

// Numeric accepts the runes of a decimal number.
func Numeric(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.' || r == 'e' || r == 'E' || r == '+'
}

// Hex accepts the runes of a #rrggbbaa color.
func Hex(r rune) bool {
	return r == '#' || strings.ContainsRune("0123456789abcdefABCDEF", r)
}

// Scrub is the value of a dragged field: start moved by dx pixels at step
// per pixel, or a tenth of that when fine is set.
func Scrub(start float64, dx float32, step float64, fine bool) float64 {
	if fine {
		step /= 10
	}
	return start + float64(dx)*step
}

// IsClick reports whether a drag of dx pixels was a click.
func IsClick(dx float32) bool {
	return dx > -ClickSlop && dx < ClickSlop
}

// FormatFloat shows v with at most three decimals and no trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func ParseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f)), nil
}

// ParseRef reads an object id typed as "12" or "#12". Empty text is the
// null reference.
func ParseRef(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// ParseColor reads #rrggbb or #rrggbbaa. The leading # is optional.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
