package editor

import (
	"testing"

	"editor3d/internal/components"
	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateObjectNumbersNames(t *testing.T) {
	s := open(t)

	a := s.CreateObject("")
	assert.Equal(t, "GameObject", a.Name)
	b := s.CreateObject("")
	assert.Equal(t, "GameObject (1)", b.Name)
	c := s.CreateObject("Crate")
	assert.Equal(t, "Crate (1)", c.Name)

	assert.Same(t, c, s.Selected())
	assert.Same(t, c, s.Scene.FindByUID(c.UID))
	assert.True(t, s.Scene.Dirty())
	assert.Equal(t, "Created Crate (1)", s.Status())
}

func TestDuplicate(t *testing.T) {
	s := open(t)
	_, err := s.Duplicate()
	assert.ErrorIs(t, err, ErrNoSelection)

	crate := s.Scene.FindByUID(10)
	child := engine.NewGameObject("Lid")
	s.Scene.AddGameObject(child)
	crate.AddChild(child)
	s.Select(crate)

	c, err := s.Duplicate()
	require.NoError(t, err)
	assert.Same(t, c, s.Selected())
	assert.NotEqual(t, crate.UID, c.UID)
	assert.Same(t, c, s.Scene.FindByUID(c.UID))
	require.Len(t, c.Children, 1)
	assert.Same(t, c.Children[0], s.Scene.FindByUID(c.Children[0].UID))
	assert.Len(t, s.Scene.GameObjects, 5)

	rb := engine.GetComponent[*components.Rigidbody](c)
	require.NotNil(t, rb)
	assert.Equal(t, float32(2), rb.Mass)
}

func TestReparentKeepsWorldPosition(t *testing.T) {
	s := open(t)
	crate := s.Scene.FindByUID(10)
	spawner := s.Scene.FindByUID(11)
	crate.Transform.Position = mgl32.Vec3{1, 0, 0}
	spawner.Transform.Position = mgl32.Vec3{3, 2, 0}
	s.Scene.ClearDirty()

	require.NoError(t, s.Reparent(spawner, crate))
	assert.Same(t, crate, spawner.Parent)
	assert.Equal(t, mgl32.Vec3{2, 2, 0}, spawner.Transform.Position)
	assert.Equal(t, mgl32.Vec3{3, 2, 0}, spawner.WorldPosition())
	assert.True(t, s.Scene.Dirty())

	assert.ErrorIs(t, s.Reparent(crate, spawner), ErrCycle)

	require.NoError(t, s.Reparent(spawner, nil))
	assert.Nil(t, spawner.Parent)
	assert.Empty(t, crate.Children)
	assert.Equal(t, mgl32.Vec3{3, 2, 0}, spawner.Transform.Position)
}
