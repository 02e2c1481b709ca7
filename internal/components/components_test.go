package components

import (
	"testing"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredComponents(t *testing.T) {
	names := engine.ComponentNames()
	for _, name := range []string{"BoxCollider", "Camera", "DirectionalLight", "PointLight", "Rigidbody", "SphereCollider", "Spawner"} {
		assert.Contains(t, names, name)

		c, err := engine.NewComponent(name)
		require.NoError(t, err)
		assert.Equal(t, name, engine.ComponentName(c))
	}
}

func TestRigidbodySleeps(t *testing.T) {
	rb := NewRigidbody()
	rb.Update(0.2)
	assert.False(t, rb.IsSleeping)
	rb.Update(0.2)
	assert.True(t, rb.IsSleeping)

	rb.Wake()
	assert.False(t, rb.IsSleeping)

	rb.Velocity = mgl32.Vec3{5, 0, 0}
	rb.Update(1)
	assert.False(t, rb.IsSleeping)
}

func TestBoxColliderBounds(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Position = mgl32.Vec3{1, 2, 3}
	b := NewBoxCollider(mgl32.Vec3{2, 2, 2})
	g.AddComponent(b)

	lo, hi := b.Bounds()
	assert.Equal(t, mgl32.Vec3{0, 1, 2}, lo)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, hi)
}

func TestSpawnerUpdate(t *testing.T) {
	s := NewSpawner()
	s.Interval = 0.5
	s.MaxAlive = 3
	s.SpawnPoints = []mgl32.Vec3{{1, 0, 0}, {2, 0, 0}}

	s.Update(1.2)
	assert.Equal(t, 2, s.Stats.Spawned)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.NextPoint())

	s.Update(10)
	assert.Equal(t, 3, s.Stats.Spawned, "capped at MaxAlive")
	assert.Equal(t, "3 spawned, 11.2s", s.Stats.String())

	s.Reset()
	assert.Zero(t, s.Stats.Spawned)
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera()
	g := engine.NewGameObject("Cam")
	g.AddComponent(c)

	assert.True(t, c.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}))
	g.Transform.Rotation = mgl32.Vec3{0, 90, 0}
	fwd := c.Forward()
	assert.InDelta(t, -1, fwd.X(), 1e-6)
	assert.InDelta(t, 0, fwd.Y(), 1e-6)
	assert.InDelta(t, 0, fwd.Z(), 1e-6)
	g.Transform.Rotation = mgl32.Vec3{0, 180, 0}
	assert.InDelta(t, 1, c.Forward().Z(), 1e-6)

	assert.NotEqual(t, c.ProjectionMatrix(1), mgl32.Mat4{})
	c.Projection = Orthographic
	assert.Equal(t, mgl32.Ortho(-22.5, 22.5, -22.5, 22.5, 0.1, 1000), c.ProjectionMatrix(1))
}
