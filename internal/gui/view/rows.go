package view

import "editor3d/internal/gui"

// Row is one line of the panel. Horizontal layouts become a single row with
// their widgets side by side.
type Row struct {
	Indent   int
	Elements []gui.Element
}

// Rows flattens the visible part of root into rows, the same way the text
// dump lays out a panel: a vertical layout that starts with a foldout
// indents the layouts after it.
func Rows(root *gui.Layout) []Row {
	var rows []Row
	collect(root, 0, &rows)
	return rows
}

func collect(l *gui.Layout, indent int, rows *[]Row) {
	if !l.Active() {
		return
	}
	if l.Direction() == gui.Horizontal {
		var inline []gui.Element
		for _, e := range l.Elements() {
			if sub, ok := e.(*gui.Layout); ok {
				if sub.Active() {
					inline = append(inline, sub.Elements()...)
				}
				continue
			}
			inline = append(inline, e)
		}
		if len(inline) > 0 {
			*rows = append(*rows, Row{Indent: indent, Elements: inline})
		}
		return
	}
	nested := false
	if l.Len() > 0 {
		_, nested = l.At(0).(*gui.Foldout)
	}
	for i, e := range l.Elements() {
		sub, ok := e.(*gui.Layout)
		if !ok {
			*rows = append(*rows, Row{Indent: indent, Elements: []gui.Element{e}})
			continue
		}
		if nested && i > 0 {
			collect(sub, indent+1, rows)
		} else {
			collect(sub, indent, rows)
		}
	}
}

// Height is the pixel height of rows.
func Height(rows []Row, rowHeight int32) int32 {
	return int32(len(rows)) * rowHeight
}

// ClampScroll keeps scroll between zero and the overflow of content over
// the view.
func ClampScroll(scroll, content, view int32) int32 {
	return max(0, min(scroll, content-view))
}

// Split divides width between n widgets with gap pixels between them.
func Split(x, width int32, n int, gap int32) []Span {
	if n <= 0 {
		return nil
	}
	w := (width - gap*int32(n-1)) / int32(n)
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{X: x + int32(i)*(w+gap), W: w}
	}
	return spans
}

// Span is a horizontal slice of a row.
type Span struct {
	X, W int32
}
