package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"editor3d/internal/components"
	"editor3d/internal/engine"
	"editor3d/internal/gui"
	"editor3d/internal/inspect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scene = `name: test
objects:
  - uid: 10
    name: Crate
    components:
      - type: Rigidbody
        fields:
          mass: 2
      - type: BoxCollider
  - uid: 11
    name: Spawner
    components:
      - type: Spawner
        fields:
          interval: 1
          target: {uid: 10}
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func open(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := Open(writeScene(t, scene), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func find(t *testing.T, n *inspect.Node, title string) *inspect.Node {
	t.Helper()
	for _, c := range n.Children() {
		if c.Title() == title {
			return c
		}
	}
	t.Fatalf("no child %q under %s", title, n.Path())
	return nil
}

func inspectorFor(t *testing.T, s *Session, title string) *inspect.Inspector {
	t.Helper()
	for _, in := range s.Inspectors() {
		if in.Root().Title() == title {
			return in
		}
	}
	t.Fatalf("no inspector %q", title)
	return nil
}

func TestSelectBuildsPanel(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))

	require.Len(t, s.Inspectors(), 3)
	assert.Equal(t, "GameObject", s.Inspectors()[0].Root().Title())
	assert.Equal(t, "Rigidbody", s.Inspectors()[1].Root().Title())
	assert.Equal(t, "BoxCollider", s.Inspectors()[2].Root().Title())
	assert.Equal(t, 4, s.Panel.Len(), "inspectors and the add component section")

	uid := find(t, s.Inspectors()[0].Root(), "UID")
	label, ok := uid.Element().(*gui.Label)
	require.True(t, ok, "uid is read-only")
	assert.Equal(t, "UID: #10", label.Text)

	assert.False(t, s.Tick(0), "nothing changed")
	assert.False(t, s.Scene.Dirty())

	assert.False(t, s.SelectUID(99))
	assert.Nil(t, s.Selected())
	assert.Equal(t, 0, s.Panel.Len())
}

func TestEditMarksDirtyAndUndo(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))
	rb := engine.GetComponent[*components.Rigidbody](s.Selected())

	mass := find(t, inspectorFor(t, s, "Rigidbody").Root(), "Mass")
	f, ok := mass.Element().(*gui.FloatField)
	require.True(t, ok)
	f.BeginEdit()
	f.Edit(5)
	f.Commit()

	assert.Equal(t, float32(5), rb.Mass)
	assert.True(t, s.Tick(0))
	assert.True(t, s.Scene.Dirty())

	require.True(t, s.Undo())
	assert.Equal(t, float32(2), rb.Mass)
	assert.True(t, s.Tick(0))
	assert.Equal(t, 2.0, f.Value())
	assert.Contains(t, s.Status(), "Undo Edit Mass")

	require.True(t, s.Redo())
	assert.Equal(t, float32(5), rb.Mass)
	assert.False(t, s.Redo(), "nothing left to redo")

	require.NoError(t, s.Save())
	assert.False(t, s.Scene.Dirty())
	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mass: 5")
}

func TestUndoAfterSelectionChange(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))
	crate := s.Selected()

	name := find(t, s.Inspectors()[0].Root(), "Name")
	w := name.Element().(*gui.TextField)
	w.Set("Barrel")
	assert.Equal(t, "Barrel", crate.Name)

	require.True(t, s.SelectUID(11))
	require.True(t, s.Undo())
	assert.Equal(t, "Crate", crate.Name)
}

func TestAddRemoveComponent(t *testing.T) {
	s := open(t)
	assert.ErrorIs(t, s.AddComponent("PointLight"), ErrNoSelection)

	require.True(t, s.SelectUID(10))
	require.NoError(t, s.AddComponent("PointLight"))
	require.Len(t, s.Inspectors(), 4)
	assert.NotNil(t, engine.GetComponent[*components.PointLight](s.Selected()))
	assert.True(t, s.Scene.Dirty())

	assert.ErrorIs(t, s.AddComponent("Teapot"), engine.ErrUnknownComponent)

	header := inspectorFor(t, s, "PointLight").Root().Element().(*gui.Layout).At(0)
	require.Len(t, header.Actions(), 1)
	assert.Equal(t, "Remove Component", header.Actions()[0].Label)
	header.Actions()[0].Do()

	require.Len(t, s.Inspectors(), 3)
	assert.Nil(t, engine.GetComponent[*components.PointLight](s.Selected()))

	rb := engine.GetComponent[*components.Rigidbody](s.Selected())
	require.NoError(t, s.RemoveComponent(rb))
	assert.Error(t, s.RemoveComponent(rb))
}

func TestAddComponentMenu(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))

	menu := s.Panel.At(s.Panel.Len() - 1).(*gui.Layout)
	header := menu.At(0).(*gui.Foldout)
	list := menu.At(1).(*gui.Layout)
	assert.False(t, list.Active())
	header.Toggle()
	assert.True(t, list.Active())

	for _, e := range list.Elements() {
		if b := e.(*gui.Button); b.Text == "SphereCollider" {
			b.Click()
		}
	}
	assert.NotNil(t, engine.GetComponent[*components.SphereCollider](s.Selected()))
	assert.Equal(t, "SphereCollider", s.Inspectors()[len(s.Inspectors())-1].Root().Title())
}

func TestReferenceShowsTargetName(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(11))

	target := find(t, inspectorFor(t, s, "Spawner").Root(), "Target")
	ref := target.Element().(*gui.RefField)
	assert.Equal(t, "Crate", ref.Display)

	s.Scene.FindByUID(10).Name = "Box"
	assert.True(t, s.Tick(0))
	assert.Equal(t, "Box", ref.Display)
}

func TestPlayingDoesNotDirty(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(11))

	stats := find(t, inspectorFor(t, s, "Spawner").Root(), "Stats")
	label := stats.Element().(*gui.Label)
	assert.Equal(t, "Stats: 0 spawned, 0.0s", label.Text)

	s.Playing = true
	assert.True(t, s.Tick(1.5))
	assert.Equal(t, "Stats: 1 spawned, 1.5s", label.Text)
	assert.False(t, s.Scene.Dirty())
}

func TestDeleteSelected(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))
	crate := s.Selected()

	require.NoError(t, s.DeleteSelected())
	assert.Nil(t, s.Selected())
	assert.Equal(t, 0, s.Panel.Len())
	assert.False(t, crate.Alive())
	assert.Nil(t, s.Scene.FindByUID(10))
	assert.True(t, s.Scene.Dirty())

	assert.ErrorIs(t, s.DeleteSelected(), ErrNoSelection)
}

func TestDestroyedSelectionIsDropped(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))

	s.Selected().Destroy()
	assert.True(t, s.Tick(0))
	assert.Nil(t, s.Selected())
	assert.Empty(t, s.Inspectors())
}

func TestReload(t *testing.T) {
	s := open(t)
	require.True(t, s.SelectUID(10))
	old := s.Selected()
	name := find(t, s.Inspectors()[0].Root(), "Name")
	name.Element().(*gui.TextField).Set("Edited")
	require.Equal(t, 1, s.History().Len())

	require.NoError(t, os.WriteFile(s.Path, []byte(strings.Replace(scene, "name: Crate", "name: Chest", 1)), 0o644))
	require.NoError(t, s.Reload())

	require.NotNil(t, s.Selected())
	assert.Equal(t, "Chest", s.Selected().Name)
	assert.False(t, old.Alive())
	assert.Equal(t, 0, s.History().Len())
	assert.False(t, s.Scene.Dirty())
	assert.Len(t, s.Inspectors(), 3)
}

func TestWatchReloads(t *testing.T) {
	s := open(t, WithWatch())
	require.True(t, s.SelectUID(10))

	require.NoError(t, os.WriteFile(s.Path, []byte(strings.Replace(scene, "name: Crate", "name: Chest", 1)), 0o644))
	assert.Eventually(t, func() bool {
		s.Tick(0)
		return s.Selected() != nil && s.Selected().Name == "Chest"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchIgnoresOwnSave(t *testing.T) {
	s := open(t, WithWatch())
	require.True(t, s.SelectUID(10))
	crate := s.Selected()
	crate.Name = "Saved"
	require.NoError(t, s.Save())

	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		s.Tick(0)
		time.Sleep(10 * time.Millisecond)
	}
	assert.Same(t, crate, s.Selected(), "own save does not reload")
}

func TestWatchKeepsUnsavedEdits(t *testing.T) {
	s := open(t, WithWatch())
	require.True(t, s.SelectUID(10))
	crate := s.Selected()
	s.Scene.MarkDirty()

	require.NoError(t, os.WriteFile(s.Path, []byte(strings.Replace(scene, "name: Crate", "name: Chest", 1)), 0o644))
	assert.Eventually(t, func() bool {
		s.Tick(0)
		return strings.Contains(s.Status(), "keeping unsaved edits")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Same(t, crate, s.Selected())
}

func TestFoldoutStateIsShared(t *testing.T) {
	state := inspect.MapState{}
	s := open(t, WithState(state))
	require.True(t, s.SelectUID(10))

	header := inspectorFor(t, s, "Rigidbody").Root().Element().(*gui.Layout).At(0).(*gui.Foldout)
	require.True(t, header.Expanded())
	header.Toggle()
	assert.False(t, state["Rigidbody"])

	require.True(t, s.SelectUID(10))
	header = inspectorFor(t, s, "Rigidbody").Root().Element().(*gui.Layout).At(0).(*gui.Foldout)
	assert.False(t, header.Expanded())
}

func TestSaveWithoutPath(t *testing.T) {
	s := New(engine.NewScene("memory"))
	assert.Error(t, s.Save())
	assert.False(t, s.Undo())
}
