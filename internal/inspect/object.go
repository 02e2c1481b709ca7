package inspect

import (
	"editor3d/internal/property"

	"cogentcore.org/core/base/errors"
)

// ObjectField shows the fields of a struct, or of the struct a pointer
// refers to, below a foldout.
type ObjectField struct {
	group
	shape Shape
}

func newObjectField(n *Node) Inspectable {
	return &ObjectField{group: group{n: n}}
}

func (o *ObjectField) Snapshot() any { return o.shape }

func (o *ObjectField) Modified() bool {
	return !equal(o.shape, readShape(o.n.prop))
}

func (o *ObjectField) Update(layoutIndex int) {
	if o.root == nil {
		o.build(layoutIndex)
	}
	o.shape = readShape(o.n.prop)
	o.toolbar.Clear()
	o.header.SetDisabled(o.shape.Stale)
	switch {
	case o.shape.Stale:
		o.note("Missing")
		return
	case o.shape.Null:
		o.note("None")
		if o.nullable() {
			o.button("Create", func() { errors.Log(o.Create()) })
		}
		return
	}
	if o.nullable() && o.n.depth > 0 {
		o.button("Clear", func() { errors.Log(o.Clear()) })
	}
	if o.tooDeep() {
		o.note("...")
		return
	}
	obj, ok := o.n.prop.(property.Struct)
	if !ok {
		return
	}
	fields, err := obj.Fields()
	if err != nil {
		errors.Log(err)
		return
	}
	for _, f := range fields {
		o.n.AddChild(f.Name(), f.Path(), o.content, f)
	}
	o.n.RefreshChildren()
}

// Create assigns a new default instance to a nil pointer.
func (o *ObjectField) Create() error {
	return o.n.Mutate("Create "+o.n.title, o.n.prop.(property.Nullable).Create)
}

// Clear sets the pointer to nil.
func (o *ObjectField) Clear() error {
	return o.n.Mutate("Clear "+o.n.title, o.n.prop.(property.Nullable).Clear)
}
