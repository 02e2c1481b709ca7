package editor

import (
	"errors"
	"fmt"

	"editor3d/internal/engine"
	"editor3d/internal/scenefile"
)

var ErrCycle = errors.New("cannot parent an object to its own descendant")

// CreateObject adds an empty object named after base, numbered when the name
// is taken, and selects it.
func (s *Session) CreateObject(base string) *engine.GameObject {
	if base == "" {
		base = "GameObject"
	}
	name := base
	for i := 1; s.Scene.FindByName(name) != nil; i++ {
		name = fmt.Sprintf("%s (%d)", base, i)
	}
	g := engine.NewGameObject(name)
	s.Scene.AddGameObject(g)
	s.Select(g)
	s.setStatus("Created %s", name)
	return g
}

// Duplicate copies the selection and its children next to it and selects
// the copy.
func (s *Session) Duplicate() (*engine.GameObject, error) {
	g := s.selected
	if g == nil {
		return nil, ErrNoSelection
	}
	c, err := scenefile.Clone(g)
	if err != nil {
		return nil, err
	}
	addTree(s.Scene, c)
	if g.Parent != nil {
		g.Parent.AddChild(c)
	}
	s.Select(c)
	s.setStatus("Duplicated %s", g.Name)
	return c, nil
}

func addTree(scene *engine.Scene, g *engine.GameObject) {
	scene.AddGameObject(g)
	for _, c := range g.Children {
		addTree(scene, c)
	}
}

// Reparent moves child under parent, or to the top level when parent is
// nil. The world position of child is kept.
func (s *Session) Reparent(child, parent *engine.GameObject) error {
	if child == nil || child == parent {
		return nil
	}
	if parent != nil && isDescendantOf(parent, child) {
		return ErrCycle
	}
	if child.Parent == parent {
		return nil
	}
	world := child.WorldPosition()
	if parent != nil {
		parent.AddChild(child)
		child.Transform.Position = world.Sub(parent.WorldPosition())
	} else {
		child.Parent.RemoveChild(child)
		child.Transform.Position = world
	}
	s.Scene.MarkDirty()
	s.setStatus("Reparented %s", child.Name)
	return nil
}

func isDescendantOf(g, ancestor *engine.GameObject) bool {
	for p := g.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
