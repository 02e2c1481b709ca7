package inspect

import (
	"errors"
	"reflect"

	"editor3d/internal/gui"
	"editor3d/internal/property"
)

// Shape is the structural signal of a composite value. A change in any field
// rebuilds the composite's subtree.
type Shape struct {
	Null     bool
	Stale    bool
	Identity uintptr
	Count    int
}

// readShape reads the structural signal of p. A backing object that went
// away reports Stale; any other failure to read reports Null.
func readShape(p property.Property) Shape {
	var s Shape
	if nb, ok := p.(property.Nullable); ok {
		null, err := nb.IsNull()
		switch {
		case errors.Is(err, property.ErrStale):
			s.Stale = true
			return s
		case err != nil:
			s.Null = true
			return s
		}
		s.Null = null
	} else if _, err := p.Get(); err != nil {
		s.Stale = errors.Is(err, property.ErrStale)
		s.Null = !s.Stale
		return s
	}
	if s.Null {
		return s
	}
	switch p.Kind() {
	case property.Object:
		if o, ok := p.(property.Struct); ok {
			s.Identity, _ = o.Identity()
		}
	case property.Array, property.List:
		if q, ok := p.(property.Sequence); ok {
			s.Count, _ = q.Len()
		}
	case property.Dictionary:
		if m, ok := p.(property.Map); ok {
			s.Count, _ = m.Len()
		}
	}
	return s
}

// group is the element block shared by composite inspectors: a foldout
// header, a toolbar and a content layout holding the children.
type group struct {
	n       *Node
	root    *gui.Layout
	header  *gui.Foldout
	toolbar *gui.Layout
	content *gui.Layout
}

func (g *group) build(layoutIndex int) {
	expanded := true
	if st := g.n.tree.state; st != nil {
		expanded = st.Expanded(g.n.path, g.n.depth)
	}
	g.root = g.n.layout.AddLayout(layoutIndex, gui.Vertical)
	g.header = gui.NewFoldout(g.n.title, expanded)
	g.root.Append(g.header)
	g.toolbar = g.root.AddLayout(1, gui.Horizontal)
	g.content = g.root.AddLayout(2, gui.Vertical)
	g.setExpanded(expanded)
	g.header.OnToggled.AddListener(func(expanded bool) {
		if st := g.n.tree.state; st != nil {
			st.SetExpanded(g.n.path, expanded)
		}
		g.setExpanded(expanded)
	})
}

func (g *group) setExpanded(expanded bool) {
	g.toolbar.SetActive(expanded)
	g.content.SetActive(expanded)
}

// Header is the foldout at the top of the group.
func (g *group) Header() *gui.Foldout { return g.header }

// Toolbar holds the structural operation buttons.
func (g *group) Toolbar() *gui.Layout { return g.toolbar }

// Content holds the children's elements.
func (g *group) Content() *gui.Layout { return g.content }

func (g *group) Element() gui.Element {
	if g.root == nil {
		return nil
	}
	return g.root
}

func (g *group) NumElements() int {
	if g.root == nil {
		return 0
	}
	return 1
}

func (g *group) Destroy() {
	if g.root != nil {
		g.root.Destroy()
		g.root, g.header, g.toolbar, g.content = nil, nil, nil, nil
	}
}

func (g *group) tooDeep() bool {
	return g.n.depth >= g.n.tree.maxDepth
}

func (g *group) note(text string) {
	g.toolbar.Append(gui.NewLabel(text))
}

func (g *group) button(text string, do func()) {
	g.toolbar.Append(gui.NewButton(text, do))
}

// nullable reports whether the composite's value can be set to nil.
func (g *group) nullable() bool {
	_, ok := g.n.prop.(property.Nullable)
	return ok && isNilable(g.n.prop)
}

func isNilable(p property.Property) bool {
	switch p.Type().Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return true
	}
	return false
}
