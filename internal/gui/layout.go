package gui

import "slices"

// Direction is the stacking direction of a layout.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Layout is an ordered region of elements. Inactive layouts keep their
// elements but are not drawn.
type Layout struct {
	base
	dir      Direction
	elements []Element
	inactive bool
}

// NewLayout returns an empty, active layout.
func NewLayout(dir Direction) *Layout {
	l := &Layout{dir: dir}
	l.self = l
	return l
}

func (l *Layout) Direction() Direction { return l.dir }

func (l *Layout) Active() bool { return !l.inactive }

func (l *Layout) SetActive(active bool) { l.inactive = !active }

func (l *Layout) Len() int { return len(l.elements) }

// At returns the element at index i.
func (l *Layout) At(i int) Element { return l.elements[i] }

// Elements returns a copy of the element list.
func (l *Layout) Elements() []Element { return slices.Clone(l.elements) }

// IndexOf returns the position of e, or -1.
func (l *Layout) IndexOf(e Element) int {
	return slices.Index(l.elements, e)
}

// Insert places e at index i, clamped to the current length. An element that
// already has a parent is moved.
func (l *Layout) Insert(i int, e Element) {
	b := e.elem()
	if b.parent != nil {
		b.parent.Remove(e)
	}
	i = max(0, min(i, len(l.elements)))
	l.elements = slices.Insert(l.elements, i, e)
	b.parent = l
	b.destroyed = false
}

// Append adds e at the end of the layout.
func (l *Layout) Append(e Element) {
	l.Insert(len(l.elements), e)
}

// Remove detaches e without destroying it.
func (l *Layout) Remove(e Element) bool {
	i := l.IndexOf(e)
	if i < 0 {
		return false
	}
	l.elements = slices.Delete(l.elements, i, i+1)
	e.elem().parent = nil
	return true
}

// AddLayout inserts a new nested layout at index i.
func (l *Layout) AddLayout(i int, dir Direction) *Layout {
	child := NewLayout(dir)
	l.Insert(i, child)
	return child
}

// Clear destroys every element of the layout.
func (l *Layout) Clear() {
	for _, e := range slices.Backward(slices.Clone(l.elements)) {
		e.Destroy()
	}
	for _, e := range l.elements {
		e.elem().parent = nil
	}
	l.elements = nil
}

func (l *Layout) Destroy() {
	if l.destroyed {
		return
	}
	l.Clear()
	l.base.Destroy()
}

// Walk visits e and, for layouts, every element below it in order.
// Returning false from fn skips the children of that element.
func Walk(e Element, fn func(e Element, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e Element, depth int, fn func(Element, int) bool) {
	if !fn(e, depth) {
		return
	}
	if l, ok := e.(*Layout); ok {
		for _, c := range l.elements {
			walk(c, depth+1, fn)
		}
	}
}
