// Package textdump renders a gui tree as indented text, for headless use and
// tests, and diffs two renderings.
package textdump

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"editor3d/internal/gui"

	"github.com/go-gl/mathgl/mgl32"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Options controls what Dump writes.
type Options struct {
	// Colors is nil for plain text.
	Colors *Colors
	// Collapsed includes the content of collapsed foldouts.
	Collapsed bool
	// Actions appends each element's context menu entries.
	Actions bool
}

// Dump writes root as one line per vertical element. Elements of a
// horizontal layout share a line.
func Dump(w io.Writer, root gui.Element, opts Options) error {
	d := &dumper{opts: opts}
	d.element(root, 0)
	_, err := io.WriteString(w, d.sb.String())
	return err
}

// String is Dump into a string.
func String(root gui.Element, opts Options) string {
	var sb strings.Builder
	Dump(&sb, root, opts)
	return sb.String()
}

type dumper struct {
	opts Options
	sb   strings.Builder
}

func (d *dumper) element(e gui.Element, indent int) {
	l, ok := e.(*gui.Layout)
	if !ok {
		d.line(indent, d.text(e))
		return
	}
	if !l.Active() && !d.opts.Collapsed {
		return
	}
	if l.Direction() == gui.Horizontal {
		var parts []string
		for _, c := range l.Elements() {
			if s := d.inline(c); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			d.line(indent, strings.Join(parts, "  "))
		}
		return
	}
	// A layout starting with a foldout is a section: the layouts after the
	// header are indented one level below it.
	elems := l.Elements()
	section := len(elems) > 0 && isFoldout(elems[0])
	for i, c := range elems {
		child := indent
		if _, nested := c.(*gui.Layout); nested && section && i > 0 {
			child++
		}
		d.element(c, child)
	}
}

func isFoldout(e gui.Element) bool {
	_, ok := e.(*gui.Foldout)
	return ok
}

func (d *dumper) inline(e gui.Element) string {
	l, ok := e.(*gui.Layout)
	if !ok {
		return d.text(e)
	}
	if !l.Active() && !d.opts.Collapsed {
		return ""
	}
	var parts []string
	for _, c := range l.Elements() {
		if s := d.inline(c); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "  ")
}

func (d *dumper) line(indent int, s string) {
	d.sb.WriteString(strings.Repeat("  ", indent))
	d.sb.WriteString(s)
	d.sb.WriteByte('\n')
}

func (d *dumper) text(e gui.Element) string {
	c := d.opts.Colors
	var s string
	switch w := e.(type) {
	case *gui.Label:
		s = w.Text
	case *gui.Button:
		s = c.Color(ButtonAttr, "[%s]", w.Text)
	case *gui.Foldout:
		mark := "+"
		if w.Expanded() {
			mark = "-"
		}
		s = c.Color(HeaderAttr, "%s %s", mark, w.Text)
	case *gui.IntField:
		s = field(c, w.Label, fmt.Sprint(w.Staged()), w.Editing())
	case *gui.FloatField:
		s = field(c, w.Label, fmt.Sprintf("%g", w.Staged()), w.Editing())
	case *gui.Toggle:
		v := "[ ]"
		if w.Staged() {
			v = "[x]"
		}
		s = field(c, w.Label, v, w.Editing())
	case *gui.TextField:
		s = field(c, w.Label, fmt.Sprintf("%q", w.Staged()), w.Editing())
	case *gui.ColorField:
		s = field(c, w.Label, FormatColor(w.Staged()), w.Editing())
	case *gui.VectorField:
		s = field(c, w.Label, FormatVector(w.Staged(), w.N), w.Editing())
	case *gui.RefField:
		s = field(c, w.Label, w.Display, w.Editing())
	default:
		s = fmt.Sprintf("<%T>", e)
	}
	if e.Disabled() {
		s = c.Color(DisabledAttr, "%s (disabled)", s)
	}
	if d.opts.Actions {
		if acts := e.Actions(); len(acts) > 0 {
			labels := make([]string, len(acts))
			for i, a := range acts {
				labels[i] = a.Label
			}
			s += " {" + strings.Join(labels, ", ") + "}"
		}
	}
	return s
}

func field(c *Colors, label, value string, editing bool) string {
	if editing {
		value = c.Color(EditAttr, "%s*", value)
	} else {
		value = c.Color(ValueAttr, "%s", value)
	}
	return c.Color(FieldAttr, "%s:", label) + " " + value
}

// FormatColor renders c as #rrggbbaa.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FormatVector renders the first n components of v.
func FormatVector(v mgl32.Vec4, n int) string {
	parts := make([]string, n)
	for i := range n {
		parts[i] = fmt.Sprintf("%g", v[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Diff compares two dumps line by line and returns the changed lines, with
// "-" for removed and "+" for added lines. It returns "" when they match.
func Diff(before, after string, c *Colors) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		var prefix string
		var attr Attr
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix, attr = "+ ", InsertAttr
		case diffpatch.DiffDelete:
			prefix, attr = "- ", DeleteAttr
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(c.Color(attr, "%s%s", prefix, strings.TrimSuffix(line, "\n")))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
