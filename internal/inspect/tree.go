// Package inspect builds and incrementally refreshes an editable view of a
// reflected object graph.
//
// Every reflected property is mirrored by a [Node] in a [Tree]. Each tick the
// host calls Refresh on the root; a node compares its cached snapshot with the
// live value and, when they differ, discards its children and regrows them.
// Unchanged subtrees keep their widgets.
package inspect

import (
	"fmt"
	"reflect"

	"editor3d/internal/gui"
	"editor3d/internal/property"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DefaultMaxDepth bounds the nesting of composite nodes.
const DefaultMaxDepth = 8

// NodeID addresses a node in a tree. The zero NodeID is never valid.
type NodeID struct {
	index uint32
	gen   uint32
}

func (id NodeID) IsZero() bool { return id.gen == 0 }

func (id NodeID) String() string {
	return fmt.Sprintf("%d:%d", id.index, id.gen)
}

type slot struct {
	node *Node
	gen  uint32
}

// Tree owns every node of one inspector in a flat arena. Parent and child
// links are ids into the arena; destroyed nodes return their slot to the free
// list.
type Tree struct {
	slots []slot
	free  []uint32
	live  int

	registry *Registry
	state    Persistent
	history  *History
	resolver RefResolver
	maxDepth int
}

// NewTree returns an empty tree configured by opts.
func NewTree(opts ...Option) *Tree {
	o := newOptions(opts)
	return &Tree{
		registry: o.registry,
		state:    o.state,
		history:  o.history,
		resolver: o.resolver,
		maxDepth: o.maxDepth,
	}
}

// Node returns the node for id, or nil if it was destroyed.
func (t *Tree) Node(id NodeID) *Node {
	if id.IsZero() || int(id.index) >= len(t.slots) {
		return nil
	}
	s := t.slots[id.index]
	if s.gen != id.gen {
		return nil
	}
	return s.node
}

// Live returns the number of nodes currently alive.
func (t *Tree) Live() int { return t.live }

func (t *Tree) History() *History { return t.history }

func (t *Tree) State() Persistent { return t.state }

func (t *Tree) alloc(n *Node) NodeID {
	var i uint32
	if k := len(t.free); k > 0 {
		i = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		t.slots = append(t.slots, slot{})
		i = uint32(len(t.slots) - 1)
	}
	s := &t.slots[i]
	s.gen++
	s.node = n
	t.live++
	return NodeID{index: i, gen: s.gen}
}

func (t *Tree) release(id NodeID) {
	if t.Node(id) == nil {
		return
	}
	t.slots[id.index].node = nil
	t.free = append(t.free, id.index)
	t.live--
}

// NewField creates the node for prop. A factory registered for the
// property's Go type wins over the built-in inspector for its kind. It panics
// when neither exists, since that means a type was never mapped.
func (t *Tree) NewField(parent *Node, title, path string, depth int, layout *gui.Layout, prop property.Property) *Node {
	n := &Node{
		tree:   t,
		title:  title,
		path:   path,
		depth:  depth,
		layout: layout,
		prop:   prop,
	}
	factory, ok := t.registry.Lookup(prop.Type())
	if !ok {
		factory = builtin(prop)
	}
	n.impl = factory(n)
	if n.impl == nil {
		panic(fmt.Sprintf("inspect: factory for %s returned no inspectable", prop.Type()))
	}
	n.id = t.alloc(n)
	if parent != nil {
		n.parent = parent.id
		parent.children = append(parent.children, n.id)
	}
	return n
}

func builtin(prop property.Property) Factory {
	switch prop.Kind() {
	case property.Int:
		return newIntLeaf
	case property.Float:
		return newFloatLeaf
	case property.Bool:
		return newBoolLeaf
	case property.String:
		return newStringLeaf
	case property.Color:
		return newColorLeaf
	case property.Vector2, property.Vector3, property.Vector4:
		return newVectorLeaf
	case property.ObjectRef:
		return newRefLeaf
	case property.Object:
		return newObjectField
	case property.Array, property.List:
		return newListField
	case property.Dictionary:
		return newDictionaryField
	}
	panic(fmt.Sprintf("inspect: no inspector for %s %s of type %v", prop.Kind(), prop.Path(), prop.Type()))
}

var equalOpts = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// equal compares two snapshots.
func equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts...)
}
