package inspect

import (
	"editor3d/internal/gui"
	"editor3d/internal/property"
)

// Option configures a Tree or an Inspector.
type Option func(*options)

type options struct {
	registry *Registry
	state    Persistent
	history  *History
	resolver RefResolver
	alive    func() bool
	maxDepth int
}

func newOptions(opts []Option) *options {
	o := &options{
		registry: DefaultRegistry,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.state == nil {
		o.state = MapState{}
	}
	return o
}

// WithRegistry sets the custom inspector registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithState sets where foldout state is kept.
func WithState(p Persistent) Option {
	return func(o *options) { o.state = p }
}

// WithHistory records edits into h. Without it edits are not undoable.
func WithHistory(h *History) Option {
	return func(o *options) { o.history = h }
}

// WithResolver sets how object references are turned into display names.
func WithResolver(r RefResolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithLiveness marks the inspected object as gone once alive returns false.
// The view then shows it as missing instead of failing.
func WithLiveness(alive func() bool) Option {
	return func(o *options) { o.alive = alive }
}

// WithMaxDepth bounds how deep nested composites are expanded.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// Inspector hosts the node tree of one inspected object inside a layout.
type Inspector struct {
	tree   *Tree
	root   *Node
	layout *gui.Layout
}

// New creates an inspector for the struct target points to. The view is
// built by the first Refresh and appended to layout.
func New(title string, target any, layout *gui.Layout, opts ...Option) (*Inspector, error) {
	o := newOptions(opts)
	var popts []property.Option
	if o.alive != nil {
		popts = append(popts, property.WithLiveness(o.alive))
	}
	prop, err := property.Of(target, popts...)
	if err != nil {
		return nil, err
	}
	return NewFor(title, prop, layout, opts...), nil
}

// NewFor creates an inspector over an existing property.
func NewFor(title string, prop property.Property, layout *gui.Layout, opts ...Option) *Inspector {
	t := NewTree(opts...)
	root := t.NewField(nil, title, prop.Path(), 0, layout, prop)
	return &Inspector{tree: t, root: root, layout: layout}
}

func (in *Inspector) Root() *Node { return in.root }

func (in *Inspector) Tree() *Tree { return in.tree }

// Refresh updates the view and reports whether anything changed, including
// edits made through the view since the previous call.
func (in *Inspector) Refresh() bool {
	idx := in.layout.Len()
	if e := in.root.Element(); e != nil {
		if i := in.layout.IndexOf(e); i >= 0 {
			idx = i
		}
	}
	return in.root.Refresh(idx)
}

// Destroy removes the view. The inspected object is not touched.
func (in *Inspector) Destroy() {
	in.root.Destroy()
}

// Undo reverts the last recorded edit. It reports false when there was
// nothing to undo.
func (in *Inspector) Undo() bool {
	return step(in.tree.history.Undo)
}

// Redo re-applies the last undone edit.
func (in *Inspector) Redo() bool {
	return step(in.tree.history.Redo)
}

func step(fn func() (Edit, error)) bool {
	e, err := fn()
	if err != nil {
		if e.Label != "" {
			Logger().Warn("inspect: history step failed", "edit", e.Label, "path", e.Path, "err", err)
		}
		return false
	}
	Logger().Debug("inspect: history step", "edit", e.Label, "path", e.Path)
	return true
}
