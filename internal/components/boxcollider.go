package components

import (
	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Component {
		return NewBoxCollider(mgl32.Vec3{1, 1, 1})
	})
}

type BoxCollider struct {
	engine.BaseComponent `yaml:"-"`
	Size                 mgl32.Vec3 `yaml:"size,flow"`
	Offset               mgl32.Vec3 `yaml:"offset,flow"`
	IsTrigger            bool       `yaml:"isTrigger" inspect:"Is Trigger"`
}

func NewBoxCollider(size mgl32.Vec3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// Bounds returns the world-space min and max corners, ignoring rotation.
func (b *BoxCollider) Bounds() (lo, hi mgl32.Vec3) {
	center := b.Offset
	if g := b.GetGameObject(); g != nil {
		center = g.WorldPosition().Add(b.Offset)
	}
	half := b.Size.Mul(0.5)
	return center.Sub(half), center.Add(half)
}
