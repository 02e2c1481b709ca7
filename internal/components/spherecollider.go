package components

import (
	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("SphereCollider", func() engine.Component {
		return NewSphereCollider(0.5)
	})
}

type SphereCollider struct {
	engine.BaseComponent `yaml:"-"`
	Radius               float32    `yaml:"radius"`
	Offset               mgl32.Vec3 `yaml:"offset,flow"`
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// Center returns the world-space center of this collider
func (s *SphereCollider) Center() mgl32.Vec3 {
	if g := s.GetGameObject(); g != nil {
		return g.WorldPosition().Add(s.Offset)
	}
	return s.Offset
}
