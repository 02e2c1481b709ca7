package components

import (
	"image/color"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("DirectionalLight", func() engine.Component {
		return NewDirectionalLight()
	})
}

type DirectionalLight struct {
	engine.BaseComponent `yaml:"-"`
	Direction            mgl32.Vec3 `yaml:"direction,flow"`
	Color                color.RGBA `yaml:"color,flow"`
	Intensity            float32    `yaml:"intensity"`
	AmbientColor         color.RGBA `yaml:"ambientColor,flow" inspect:"Ambient Color"`
	ShadowDistance       float32    `yaml:"shadowDistance" inspect:"Shadow Distance"`
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:      mgl32.Vec3{0.35, -1.0, -0.35}.Normalize(),
		Color:          White,
		Intensity:      1.0,
		AmbientColor:   color.RGBA{25, 25, 25, 255},
		ShadowDistance: 50.0,
	}
}

// MoveLightDir nudges the direction and renormalizes it.
func (l *DirectionalLight) MoveLightDir(dx, dy, dz float32) {
	l.Direction = l.Direction.Add(mgl32.Vec3{dx, dy, dz}).Normalize()
}

func (l *DirectionalLight) ColorFloat() mgl32.Vec3 {
	return colorVec(l.Color).Mul(l.Intensity)
}
