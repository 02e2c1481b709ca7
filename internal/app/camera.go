package app

import (
	"math"

	"editor3d/internal/components"
	"editor3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flyCamera is the editor's free camera: hold the right mouse button to look
// around and fly with WASD, Q and E.
type flyCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32

	zoom [3]*gween.Tween
}

func newFlyCamera() *flyCamera {
	return &flyCamera{
		Position:  rl.Vector3{X: -8, Y: 6, Z: -8},
		Yaw:       45,
		Pitch:     -25,
		MoveSpeed: 10,
	}
}

func (c *flyCamera) directions() (forward, right rl.Vector3) {
	yaw := float64(c.Yaw) * math.Pi / 180
	pitch := float64(c.Pitch) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yaw)),
		Y: 0,
		Z: float32(-math.Cos(yaw)),
	}
	return forward, right
}

func (c *flyCamera) Camera3D() rl.Camera3D {
	forward, _ := c.directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// Update moves the camera. Keys only steer while the right button is held,
// so they stay free for the panels otherwise.
func (c *flyCamera) Update(dt float32) {
	c.updateZoom(dt)

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		c.zoom = [3]*gween.Tween{}

		delta := rl.GetMouseDelta()
		c.Yaw += delta.X * 0.1
		c.Pitch = max(-89, min(89, c.Pitch-delta.Y*0.1))

		forward, right := c.directions()
		speed := c.MoveSpeed * dt
		if rl.IsKeyDown(rl.KeyW) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			c.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			c.Position.Y -= speed
		}
	}

	if scroll := rl.GetMouseWheelMove(); scroll != 0 && rl.IsKeyDown(rl.KeyLeftShift) {
		c.MoveSpeed = max(1, min(100, c.MoveSpeed+scroll*2))
	}
}

// Focus glides the camera to look at g from the current direction.
func (c *flyCamera) Focus(g *engine.GameObject) {
	if g == nil {
		return
	}
	target := vec3(g.WorldPosition())
	distance := max(3, objectRadius(g)*3)
	forward, _ := c.directions()
	to := rl.Vector3Subtract(target, rl.Vector3Scale(forward, distance))
	const d = 0.3
	c.zoom = [3]*gween.Tween{
		gween.New(c.Position.X, to.X, d, ease.OutCubic),
		gween.New(c.Position.Y, to.Y, d, ease.OutCubic),
		gween.New(c.Position.Z, to.Z, d, ease.OutCubic),
	}
}

func (c *flyCamera) updateZoom(dt float32) {
	if c.zoom[0] == nil {
		return
	}
	x, done := c.zoom[0].Update(dt)
	y, _ := c.zoom[1].Update(dt)
	z, _ := c.zoom[2].Update(dt)
	c.Position = rl.Vector3{X: x, Y: y, Z: z}
	if done {
		c.zoom = [3]*gween.Tween{}
	}
}

// objectRadius estimates the size of g from its colliders.
func objectRadius(g *engine.GameObject) float32 {
	r := float32(1)
	s := g.WorldScale()
	scale := max(abs(s.X()), abs(s.Y()), abs(s.Z()))
	if b := engine.GetComponent[*components.BoxCollider](g); b != nil {
		r = max(b.Size.X(), b.Size.Y(), b.Size.Z()) / 2
	}
	if sc := engine.GetComponent[*components.SphereCollider](g); sc != nil {
		r = max(r, sc.Radius)
	}
	return r * scale
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
