package inspect

import (
	"fmt"
	"image/color"
	"math"
	"reflect"

	"editor3d/internal/gui"
	"editor3d/internal/property"

	"github.com/go-gl/mathgl/mgl32"
)

// Leaf shows a single value in one input widget editing a T.
type Leaf[T any] struct {
	n      *Node
	widget gui.Element
	input  *gui.Input[T]
	snap   any

	newWidget  func(title string) (gui.Element, *gui.Input[T])
	toWidget   func(v any) T
	fromWidget func(v T) (any, error)
	// view maps a live value to its snapshot. Values are used as they are
	// when nil.
	view func(v any) any
	// decorate updates widget state that is not part of the edited value.
	decorate func(snap any)
}

// NewLeaf returns a leaf inspector for custom factories. newWidget builds the
// widget, toWidget converts a live value for display and fromWidget converts
// a committed widget value back to a property value.
func NewLeaf[T any](n *Node, newWidget func(title string) (gui.Element, *gui.Input[T]), toWidget func(any) T, fromWidget func(T) (any, error)) *Leaf[T] {
	return &Leaf[T]{n: n, newWidget: newWidget, toWidget: toWidget, fromWidget: fromWidget}
}

func (l *Leaf[T]) Widget() gui.Element { return l.widget }

// Input returns the editable core of the widget.
func (l *Leaf[T]) Input() *gui.Input[T] { return l.input }

func (l *Leaf[T]) Element() gui.Element { return l.widget }

func (l *Leaf[T]) Snapshot() any { return l.snap }

func (l *Leaf[T]) NumElements() int {
	if l.widget == nil {
		return 0
	}
	return 1
}

// read returns the live value, or nil when it cannot be read. A backing
// object that went away reads the same as a null value.
func (l *Leaf[T]) read() any {
	v, err := l.n.prop.Get()
	if err != nil {
		return nil
	}
	if l.view != nil {
		return l.view(v)
	}
	return v
}

func (l *Leaf[T]) Modified() bool {
	return !equal(l.snap, l.read())
}

func (l *Leaf[T]) Update(layoutIndex int) {
	if l.widget == nil {
		l.build(layoutIndex)
	}
	l.snap = l.read()
	if l.snap == nil {
		l.widget.SetDisabled(true)
		return
	}
	l.widget.SetDisabled(false)
	if !l.n.editing {
		l.push()
	}
}

func (l *Leaf[T]) build(layoutIndex int) {
	l.widget, l.input = l.newWidget(l.n.title)
	l.input.OnEditBegin.AddListener(func() {
		l.n.editing = true
	})
	l.input.OnCommit.AddListener(l.commit)
	l.input.OnCancel.AddListener(func() {
		l.n.editing = false
		if l.snap != nil {
			l.push()
		}
	})
	l.n.layout.Insert(layoutIndex, l.widget)
}

func (l *Leaf[T]) push() {
	l.input.SetValue(l.toWidget(l.snap))
	if l.decorate != nil {
		l.decorate(l.snap)
	}
}

func (l *Leaf[T]) commit(v T) {
	l.n.editing = false
	x, err := l.fromWidget(v)
	if err == nil {
		err = l.n.write(x)
	}
	if err != nil {
		Logger().Warn("inspect: edit rejected", "path", l.n.path, "value", v, "err", err)
		l.n.rebuild = true
	}
}

func (l *Leaf[T]) Destroy() {
	if l.widget != nil {
		l.widget.Destroy()
		l.widget = nil
		l.input = nil
	}
}

// newIntLeaf edits integers as int64. Unsigned values above MaxInt64 are
// shown clamped and read-only.
func newIntLeaf(n *Node) Inspectable {
	l := NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[int64]) {
			w := gui.NewIntField(title)
			return w, &w.Input
		},
		func(v any) int64 {
			rv := reflect.ValueOf(v)
			if rv.CanUint() {
				return int64(min(rv.Uint(), math.MaxInt64))
			}
			return rv.Int()
		},
		func(v int64) (any, error) { return v, nil },
	)
	l.decorate = func(snap any) {
		if rv := reflect.ValueOf(snap); rv.CanUint() && rv.Uint() > math.MaxInt64 {
			l.widget.SetDisabled(true)
		}
	}
	return l
}

func newFloatLeaf(n *Node) Inspectable {
	return NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[float64]) {
			w := gui.NewFloatField(title)
			return w, &w.Input
		},
		func(v any) float64 { return reflect.ValueOf(v).Float() },
		func(v float64) (any, error) { return v, nil },
	)
}

func newBoolLeaf(n *Node) Inspectable {
	return NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[bool]) {
			w := gui.NewToggle(title)
			return w, &w.Input
		},
		func(v any) bool { return reflect.ValueOf(v).Bool() },
		func(v bool) (any, error) { return v, nil },
	)
}

func newStringLeaf(n *Node) Inspectable {
	return NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[string]) {
			w := gui.NewTextField(title)
			return w, &w.Input
		},
		func(v any) string { return reflect.ValueOf(v).String() },
		func(v string) (any, error) { return v, nil },
	)
}

func newColorLeaf(n *Node) Inspectable {
	return NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[color.RGBA]) {
			w := gui.NewColorField(title)
			return w, &w.Input
		},
		func(v any) color.RGBA { return v.(color.RGBA) },
		func(v color.RGBA) (any, error) { return v, nil },
	)
}

func newVectorLeaf(n *Node) Inspectable {
	size := 2
	switch n.prop.Kind() {
	case property.Vector3:
		size = 3
	case property.Vector4:
		size = 4
	}
	return NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[mgl32.Vec4]) {
			w := gui.NewVectorField(title, size)
			return w, &w.Input
		},
		func(v any) mgl32.Vec4 {
			switch v := v.(type) {
			case mgl32.Vec2:
				return mgl32.Vec4{v[0], v[1], 0, 0}
			case mgl32.Vec3:
				return v.Vec4(0)
			case mgl32.Vec4:
				return v
			}
			return mgl32.Vec4{}
		},
		func(v mgl32.Vec4) (any, error) {
			switch size {
			case 2:
				return mgl32.Vec2{v[0], v[1]}, nil
			case 3:
				return v.Vec3(), nil
			}
			return v, nil
		},
	)
}

// RefResolver returns the display name of the object an id refers to.
type RefResolver func(id uint64) (string, bool)

// refSnap pairs a reference with the name of its target so that renaming
// the target refreshes the field.
type refSnap struct {
	ID      uint64
	Display string
}

func newRefLeaf(n *Node) Inspectable {
	var field *gui.RefField
	l := NewLeaf(n,
		func(title string) (gui.Element, *gui.Input[uint64]) {
			field = gui.NewRefField(title)
			return field, &field.Input
		},
		func(v any) uint64 { return v.(refSnap).ID },
		func(id uint64) (any, error) { return property.MakeRef(n.prop.Type(), id) },
	)
	l.view = func(v any) any {
		id := v.(property.Referencer).RefID()
		return refSnap{ID: id, Display: refDisplay(n.tree.resolver, id)}
	}
	l.decorate = func(snap any) {
		field.Display = snap.(refSnap).Display
	}
	return l
}

func refDisplay(resolve RefResolver, id uint64) string {
	if id == 0 {
		return "None"
	}
	if resolve == nil {
		return fmt.Sprintf("#%d", id)
	}
	if name, ok := resolve(id); ok {
		return name
	}
	return fmt.Sprintf("Missing (#%d)", id)
}
