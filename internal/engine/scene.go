package engine

import "slices"

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[UID]*GameObject
	dirty       bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[UID]*GameObject),
	}
}

// AddGameObject adds g to the scene. Children must be added separately.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[UID]*GameObject)
	}
	if g.UID == 0 {
		g.UID = NextUID()
	}
	g.Scene = s
	s.uidMap[g.UID] = g
	s.GameObjects = append(s.GameObjects, g)
	s.dirty = true
}

// RemoveGameObject removes g and all of its children, and marks them
// destroyed.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, c := range slices.Clone(g.Children) {
		s.RemoveGameObject(c)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if i := slices.Index(s.GameObjects, g); i >= 0 {
		s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
		s.dirty = true
	}
	if s.uidMap[g.UID] == g {
		delete(s.uidMap, g.UID)
	}
	g.Scene = nil
	g.destroyed = true
}

func (s *Scene) FindByUID(uid UID) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Roots returns the objects without a parent, in scene order.
func (s *Scene) Roots() []*GameObject {
	var roots []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			roots = append(roots, g)
		}
	}
	return roots
}

// Dirty reports whether the scene changed since it was last saved.
func (s *Scene) Dirty() bool { return s.dirty }

func (s *Scene) MarkDirty() { s.dirty = true }

func (s *Scene) ClearDirty() { s.dirty = false }

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
