package components

import (
	"image/color"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("PointLight", func() engine.Component {
		return NewPointLight()
	})
}

var White = color.RGBA{255, 255, 255, 255}

type PointLight struct {
	engine.BaseComponent `yaml:"-"`
	Color                color.RGBA `yaml:"color,flow"`
	Intensity            float32    `yaml:"intensity"`
	Radius               float32    `yaml:"radius"` // falloff distance
}

func NewPointLight() *PointLight {
	return &PointLight{
		Color:     White,
		Intensity: 1.0,
		Radius:    10.0,
	}
}

func (p *PointLight) Position() mgl32.Vec3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return mgl32.Vec3{}
}

// ColorFloat returns the color scaled by intensity.
func (p *PointLight) ColorFloat() mgl32.Vec3 {
	return colorVec(p.Color).Mul(p.Intensity)
}

func colorVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
