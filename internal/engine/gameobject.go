package engine

import (
	"slices"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees
	Scale    mgl32.Vec3
}

// UID identifies a GameObject within a process. Zero means none.
type UID uint64

var lastUID atomic.Uint64

// NextUID returns a fresh nonzero UID.
func NextUID() UID {
	return UID(lastUID.Add(1))
}

// ReserveUID makes sure NextUID never hands out id again. Loaders call it for
// every id read from a file.
func ReserveUID(id UID) {
	for {
		cur := lastUID.Load()
		if uint64(id) <= cur || lastUID.CompareAndSwap(cur, uint64(id)) {
			return
		}
	}
}

type GameObject struct {
	UID        UID
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene        `inspect:"-" yaml:"-"`
	Parent     *GameObject   `inspect:"-" yaml:"-"`
	Children   []*GameObject `inspect:"-" yaml:"-"`
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    NextUID(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: mgl32.Vec3{1, 1, 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// RemoveComponent detaches c. It reports false when c was not attached.
func (g *GameObject) RemoveComponent(c Component) bool {
	i := slices.Index(g.components, c)
	if i < 0 {
		return false
	}
	g.components = slices.Delete(g.components, i, i+1)
	c.SetGameObject(nil)
	return true
}

func (g *GameObject) HasComponent(c Component) bool {
	return slices.Contains(g.components, c)
}

// GetComponent returns the first component of type T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// Destroy marks g and its children as gone and takes them out of their scene.
// Views holding on to a destroyed object see it through Alive.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	if g.Scene != nil {
		g.Scene.RemoveGameObject(g)
		return
	}
	g.markDestroyed()
}

func (g *GameObject) markDestroyed() {
	g.destroyed = true
	for _, c := range g.Children {
		c.markDestroyed()
	}
}

func (g *GameObject) Alive() bool {
	return g != nil && !g.destroyed
}

// ComponentAlive reports whether c is still attached to a live object.
func ComponentAlive(c Component) bool {
	g := c.GetGameObject()
	return g.Alive() && g.HasComponent(c)
}

func (g *GameObject) WorldPosition() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := mgl32.Vec3{
		g.Transform.Position.X() * parentScale.X(),
		g.Transform.Position.Y() * parentScale.Y(),
		g.Transform.Position.Z() * parentScale.Z(),
	}

	// X then Y then Z
	rot := mgl32.Rotate3DZ(mgl32.DegToRad(parentRot.Z())).
		Mul3(mgl32.Rotate3DY(mgl32.DegToRad(parentRot.Y()))).
		Mul3(mgl32.Rotate3DX(mgl32.DegToRad(parentRot.X())))
	return parentPos.Add(rot.Mul3x1(scaled))
}

func (g *GameObject) WorldRotation() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation().Add(g.Transform.Rotation)
}

func (g *GameObject) WorldScale() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return mgl32.Vec3{
		ps.X() * g.Transform.Scale.X(),
		ps.Y() * g.Transform.Scale.Y(),
		ps.Z() * g.Transform.Scale.Z(),
	}
}
