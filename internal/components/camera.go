package components

import (
	"math"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Component {
		return NewCamera()
	})
}

type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

type Camera struct {
	engine.BaseComponent `yaml:"-"`
	FOV                  float32    `yaml:"fov"`
	Near                 float32    `yaml:"near"`
	Far                  float32    `yaml:"far"`
	Projection           Projection `yaml:"projection"`
	IsMain               bool       `yaml:"isMain" inspect:"Is Main"` // the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:  45.0,
		Near: 0.1,
		Far:  1000.0,
	}
}

// Forward returns the view direction from the object's yaw.
func (c *Camera) Forward() mgl32.Vec3 {
	g := c.GetGameObject()
	if g == nil {
		return mgl32.Vec3{0, 0, -1}
	}
	yaw := float64(g.WorldRotation().Y()) * math.Pi / 180
	return mgl32.Vec3{float32(-math.Sin(yaw)), 0, float32(-math.Cos(yaw))}
}

// ProjectionMatrix returns the camera projection for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == Orthographic {
		h := c.FOV / 2
		return mgl32.Ortho(-h*aspect, h*aspect, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
