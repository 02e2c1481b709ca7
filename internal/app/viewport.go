package app

import (
	"editor3d/internal/components"
	"editor3d/internal/engine"
	"editor3d/internal/gui/rlgui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	colorObject = rl.NewColor(150, 150, 170, 255)
	colorGrid   = rl.NewColor(60, 60, 75, 255)
)

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// drawScene draws every object as a wireframe of its colliders and lights.
// Objects without any get a small marker cube.
func drawScene(scene *engine.Scene, selected *engine.GameObject) {
	rl.DrawGrid(20, 1)
	rl.DrawLine3D(rl.Vector3{X: -10}, rl.Vector3{X: 10}, colorGrid)

	for _, g := range scene.GameObjects {
		c := colorObject
		if g == selected {
			c = rlgui.ColorAccentLight
		} else if !g.Active {
			c = rlgui.Fade(colorObject, 0.35)
		}
		drawObject(g, c)
	}
}

func drawObject(g *engine.GameObject, c rl.Color) {
	pos := vec3(g.WorldPosition())
	drawn := false

	if b := engine.GetComponent[*components.BoxCollider](g); b != nil {
		lo, hi := b.Bounds()
		size := hi.Sub(lo)
		center := vec3(lo.Add(hi).Mul(0.5))
		rl.DrawCubeV(center, vec3(size), rlgui.Fade(c, 0.15))
		rl.DrawCubeWiresV(center, vec3(size), c)
		drawn = true
	}
	if s := engine.GetComponent[*components.SphereCollider](g); s != nil {
		rl.DrawSphereWires(vec3(s.Center()), s.Radius, 8, 12, c)
		drawn = true
	}
	if l := engine.GetComponent[*components.PointLight](g); l != nil {
		rl.DrawSphere(pos, 0.15, rlgui.RGBA(l.Color))
		rl.DrawCircle3D(pos, l.Radius, rl.Vector3{X: 1}, 90, rlgui.Fade(rlgui.RGBA(l.Color), 0.3))
		drawn = true
	}
	if l := engine.GetComponent[*components.DirectionalLight](g); l != nil {
		if l.Direction.Len() > 0 {
			dir := l.Direction.Normalize().Mul(2)
			rl.DrawLine3D(pos, rl.Vector3Add(pos, vec3(dir)), rlgui.RGBA(l.Color))
		}
		rl.DrawSphere(pos, 0.1, rlgui.RGBA(l.Color))
		drawn = true
	}
	if cam := engine.GetComponent[*components.Camera](g); cam != nil {
		rl.DrawCubeWiresV(pos, rl.Vector3{X: 0.4, Y: 0.3, Z: 0.3}, c)
		rl.DrawLine3D(pos, rl.Vector3Add(pos, vec3(cam.Forward())), c)
		drawn = true
	}
	if !drawn {
		rl.DrawCubeWiresV(pos, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, c)
	}
}

// pickBounds is the box used to click g in the viewport.
func pickBounds(g *engine.GameObject) rl.BoundingBox {
	if b := engine.GetComponent[*components.BoxCollider](g); b != nil {
		lo, hi := b.Bounds()
		return rl.BoundingBox{Min: vec3(lo), Max: vec3(hi)}
	}
	r := float32(0.25)
	center := g.WorldPosition()
	if s := engine.GetComponent[*components.SphereCollider](g); s != nil {
		r = s.Radius
		center = s.Center()
	}
	half := mgl32.Vec3{r, r, r}
	return rl.BoundingBox{Min: vec3(center.Sub(half)), Max: vec3(center.Add(half))}
}

// pick returns the closest object under ray, or nil.
func pick(scene *engine.Scene, ray rl.Ray) *engine.GameObject {
	var best *engine.GameObject
	var dist float32
	for _, g := range scene.GameObjects {
		hit := rl.GetRayCollisionBox(ray, pickBounds(g))
		if hit.Hit && (best == nil || hit.Distance < dist) {
			best, dist = g, hit.Distance
		}
	}
	return best
}
