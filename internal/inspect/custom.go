package inspect

import (
	"fmt"

	"editor3d/internal/gui"
)

// ReadOnly returns a factory that shows a value as a label. format may be nil
// to use fmt.Sprint.
func ReadOnly(format func(v any) string) Factory {
	if format == nil {
		format = func(v any) string { return fmt.Sprint(v) }
	}
	return func(n *Node) Inspectable {
		return &labelField{n: n, format: format}
	}
}

type labelField struct {
	n      *Node
	label  *gui.Label
	format func(any) string
	snap   any
}

func (f *labelField) read() any {
	v, err := f.n.prop.Get()
	if err != nil {
		return nil
	}
	return v
}

func (f *labelField) Modified() bool { return !equal(f.snap, f.read()) }

func (f *labelField) Update(layoutIndex int) {
	if f.label == nil {
		f.label = gui.NewLabel("")
		f.n.layout.Insert(layoutIndex, f.label)
	}
	f.snap = f.read()
	if f.snap == nil {
		f.label.Text = f.n.title + ": -"
		return
	}
	f.label.Text = f.n.title + ": " + f.format(f.snap)
}

func (f *labelField) NumElements() int {
	if f.label == nil {
		return 0
	}
	return 1
}

func (f *labelField) Element() gui.Element {
	if f.label == nil {
		return nil
	}
	return f.label
}

func (f *labelField) Snapshot() any { return f.snap }

func (f *labelField) Destroy() {
	if f.label != nil {
		f.label.Destroy()
		f.label = nil
	}
}
