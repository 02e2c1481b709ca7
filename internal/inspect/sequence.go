package inspect

import (
	"fmt"

	"editor3d/internal/gui"
	"editor3d/internal/property"

	"cogentcore.org/core/base/errors"
)

// ListField shows arrays and lists with one child per element.
type ListField struct {
	group
	shape Shape
	size  *gui.IntField
}

func newListField(n *Node) Inspectable {
	return &ListField{group: group{n: n}}
}

func (l *ListField) seq() property.Sequence {
	return l.n.prop.(property.Sequence)
}

func (l *ListField) Snapshot() any { return l.shape }

func (l *ListField) Modified() bool {
	return !equal(l.shape, readShape(l.n.prop))
}

// Fixed reports whether the element count cannot change.
func (l *ListField) Fixed() bool { return l.seq().Fixed() }

func (l *ListField) Update(layoutIndex int) {
	if l.root == nil {
		l.build(layoutIndex)
	}
	l.shape = readShape(l.n.prop)
	l.toolbar.Clear()
	l.size = nil
	l.header.SetDisabled(l.shape.Stale)
	switch {
	case l.shape.Stale:
		l.note("Missing")
		return
	case l.shape.Null:
		l.note("None")
		l.button("Create", func() { errors.Log(l.Create()) })
		return
	}
	count := l.shape.Count
	if l.Fixed() {
		l.note(fmt.Sprintf("Length %d", count))
	} else {
		l.size = gui.NewIntField("Size")
		l.size.SetValue(int64(count))
		size := l.size
		size.OnCommit.AddListener(func(v int64) {
			if err := l.Resize(int(v)); err != nil {
				Logger().Warn("inspect: resize rejected", "path", l.n.path, "err", err)
				size.SetValue(int64(count))
			}
		})
		l.toolbar.Append(l.size)
		l.button("Add", func() { errors.Log(l.Resize(count + 1)) })
		l.button("Clear", func() { errors.Log(l.Clear()) })
	}
	if l.tooDeep() {
		l.note("...")
		return
	}
	seq := l.seq()
	for i := range count {
		e, err := seq.Elem(i)
		if err != nil {
			errors.Log(err)
			break
		}
		l.n.AddChild(fmt.Sprintf("Element %d", i), e.Path(), l.content, e)
	}
	l.n.RefreshChildren()
	for i, c := range l.n.Children() {
		if e := c.Element(); e != nil {
			e.SetActions(l.rowActions(i, count))
		}
	}
}

func (l *ListField) rowActions(i, count int) []gui.Action {
	var actions []gui.Action
	if !l.Fixed() {
		actions = append(actions,
			gui.Action{Label: "Delete", Do: func() { errors.Log(l.DeleteElement(i)) }},
			gui.Action{Label: "Duplicate", Do: func() { errors.Log(l.CloneElement(i)) }},
		)
	}
	if i > 0 {
		actions = append(actions, gui.Action{Label: "Move Up", Do: func() { errors.Log(l.MoveElement(i, i-1)) }})
	}
	if i < count-1 {
		actions = append(actions, gui.Action{Label: "Move Down", Do: func() { errors.Log(l.MoveElement(i, i+1)) }})
	}
	return actions
}

// Size returns the size field shown for resizable lists.
func (l *ListField) Size() *gui.IntField { return l.size }

// Resize changes the element count. New elements get default values.
func (l *ListField) Resize(n int) error {
	return l.n.Mutate("Resize "+l.n.title, func() error { return l.seq().Resize(n) })
}

// Create assigns an empty list to a nil list.
func (l *ListField) Create() error {
	return l.n.Mutate("Create "+l.n.title, l.seq().Create)
}

// Clear sets the list to nil.
func (l *ListField) Clear() error {
	return l.n.Mutate("Clear "+l.n.title, l.seq().Clear)
}

func (l *ListField) DeleteElement(i int) error {
	return l.n.Mutate(fmt.Sprintf("Delete %s[%d]", l.n.title, i), func() error { return l.seq().Delete(i) })
}

// CloneElement inserts a deep copy of element i right after it.
func (l *ListField) CloneElement(i int) error {
	return l.n.Mutate(fmt.Sprintf("Duplicate %s[%d]", l.n.title, i), func() error {
		v, err := l.seq().CloneElem(i)
		if err != nil {
			return err
		}
		return l.seq().Insert(i+1, v)
	})
}

func (l *ListField) MoveElement(from, to int) error {
	return l.n.Mutate(fmt.Sprintf("Move %s[%d]", l.n.title, from), func() error { return l.seq().Move(from, to) })
}
