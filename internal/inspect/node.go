package inspect

import (
	"fmt"
	"slices"

	"editor3d/internal/gui"
	"editor3d/internal/property"
)

// Inspectable is the per-kind behaviour of a node.
type Inspectable interface {
	// Modified reports whether the live value differs from the snapshot
	// taken by the last Update.
	Modified() bool
	// Update builds the node's widgets on first use, re-reads the live value
	// into the snapshot and regrows the node's children.
	Update(layoutIndex int)
	// NumElements is the number of elements the node occupies in its layout.
	NumElements() int
	// Element is the node's outermost element, or nil before the first Update.
	Element() gui.Element
	Snapshot() any
	// Destroy removes the node's widgets.
	Destroy()
}

// Factory creates the inspectable for a node.
type Factory func(n *Node) Inspectable

// Node mirrors one property of the inspected object graph.
type Node struct {
	tree     *Tree
	id       NodeID
	parent   NodeID
	children []NodeID

	title  string
	path   string
	depth  int
	layout *gui.Layout
	prop   property.Property
	impl   Inspectable

	layoutIndex int
	initialized bool
	destroyed   bool
	// editing is set while the user has an uncommitted edit in the widget.
	editing bool
	// pending records a committed edit to report from the next Refresh.
	pending bool
	// rebuild forces the next Refresh to run Update.
	rebuild bool
}

func (n *Node) ID() NodeID                  { return n.id }
func (n *Node) Tree() *Tree                 { return n.tree }
func (n *Node) Title() string               { return n.title }
func (n *Node) Path() string                { return n.path }
func (n *Node) Depth() int                  { return n.depth }
func (n *Node) Layout() *gui.Layout         { return n.layout }
func (n *Node) Property() property.Property { return n.prop }
func (n *Node) Inspectable() Inspectable    { return n.impl }
func (n *Node) Initialized() bool           { return n.initialized }
func (n *Node) Destroyed() bool             { return n.destroyed }
func (n *Node) Editing() bool               { return n.editing }
func (n *Node) Snapshot() any               { return n.impl.Snapshot() }
func (n *Node) Element() gui.Element        { return n.impl.Element() }
func (n *Node) LayoutIndex() int            { return n.layoutIndex }
func (n *Node) Parent() *Node               { return n.tree.Node(n.parent) }
func (n *Node) Invalidate()                 { n.rebuild = true }
func (n *Node) MarkModified()               { n.pending = true }
func (n *Node) SetEditing(editing bool)     { n.editing = editing }

// NumElements is the number of layout elements the node occupies.
func (n *Node) NumElements() int {
	if n.destroyed || !n.initialized {
		return 0
	}
	return n.impl.NumElements()
}

// Children returns the live child nodes in construction order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if c := n.tree.Node(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Refresh brings the node's view up to date with the live value. The node's
// elements start at layoutIndex in its layout. It reports whether anything in
// the subtree changed, including edits committed since the previous call.
func (n *Node) Refresh(layoutIndex int) bool {
	if n.destroyed {
		return false
	}
	n.layoutIndex = layoutIndex
	modified := n.pending
	n.pending = false
	if !n.initialized || n.rebuild || n.impl.Modified() {
		n.rebuild = false
		n.destroyChildren()
		n.impl.Update(layoutIndex)
		n.initialized = true
		Logger().Debug("inspect: rebuilt node", "path", n.path, "kind", n.prop.Kind(), "children", len(n.children))
		return true
	}
	return n.RefreshChildren() || modified
}

// AddChild creates a child node whose elements go into layout.
func (n *Node) AddChild(title, path string, layout *gui.Layout, prop property.Property) *Node {
	return n.tree.NewField(n, title, path, n.depth+1, layout, prop)
}

// RefreshChildren refreshes the children in order. Each child starts where
// the elements of the previous child end.
func (n *Node) RefreshChildren() bool {
	modified := false
	idx := 0
	for _, c := range n.Children() {
		if c.Refresh(idx) {
			modified = true
		}
		idx += c.NumElements()
	}
	return modified
}

// Destroy tears down the subtree depth-first and detaches the node from its
// parent. Calling it again does nothing.
func (n *Node) Destroy() { n.destroy(true) }

// destroy releases the subtree. detach is false when the parent is dropping
// all of its children at once.
func (n *Node) destroy(detach bool) {
	if n.destroyed {
		return
	}
	n.destroyChildren()
	n.impl.Destroy()
	n.destroyed = true
	if p := n.Parent(); detach && p != nil {
		p.children = slices.DeleteFunc(p.children, func(id NodeID) bool { return id == n.id })
	}
	n.tree.release(n.id)
}

func (n *Node) destroyChildren() {
	children := n.Children()
	n.children = nil
	for _, c := range children {
		c.destroy(false)
	}
}

// write assigns v through the property and records the edit.
func (n *Node) write(v any) error {
	before, _ := n.prop.Get()
	before, _ = property.Copy(before)
	if err := n.prop.Set(v); err != nil {
		return err
	}
	n.pending = true
	if _, ok := n.prop.(interface{ untracked() }); ok {
		return nil
	}
	after, _ := n.prop.Get()
	after, _ = property.Copy(after)
	n.tree.history.Record(n.prop, "Edit "+n.title, before, after)
	return nil
}

// Mutate runs a structural change on the node's property, records it for
// undo and forces a rebuild on the next Refresh.
func (n *Node) Mutate(label string, fn func() error) error {
	before, _ := n.prop.Get()
	before, _ = property.Copy(before)
	if err := fn(); err != nil {
		return fmt.Errorf("%s %s: %w", label, n.path, err)
	}
	after, _ := n.prop.Get()
	after, _ = property.Copy(after)
	n.tree.history.Record(n.prop, label, before, after)
	Logger().Debug("inspect: operation", "path", n.path, "op", label)
	n.rebuild = true
	n.pending = true
	return nil
}
