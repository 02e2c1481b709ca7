package prefs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"editor3d/internal/inspect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ inspect.Persistent = (*Prefs)(nil)

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, p.Window.Width)
	assert.Equal(t, 50, p.UndoDepth)
	assert.Equal(t, path, p.Path())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	p, err := Load(path)
	require.NoError(t, err)
	p.Window.Width = 1600
	p.LogLevel = "debug"
	p.LastScene = "level.yaml"
	p.LastSelected = 42
	p.SetExpanded("Spawner.Waves", false)
	require.NoError(t, p.Save())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1600, got.Window.Width)
	assert.Equal(t, 720, got.Window.Height)
	assert.Equal(t, slog.LevelDebug, got.Level())
	assert.Equal(t, "level.yaml", got.LastScene)
	assert.Equal(t, uint64(42), got.LastSelected)
	assert.False(t, got.Expanded("Spawner.Waves", 1))
}

func TestLoadFixesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	data := "undo_depth = -3\nlog_level = \"loud\"\n\n[window]\nwidth = 0\nheight = 0\nfps = 30\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, p.UndoDepth)
	assert.Equal(t, 1280, p.Window.Width)
	assert.Equal(t, 30, p.Window.FPS)
	assert.Equal(t, slog.LevelInfo, p.Level())
	assert.NotNil(t, p.Foldouts)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("window = [oops"), 0o644))

	p, err := Load(path)
	assert.Error(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1280, p.Window.Width, "defaults on parse error")
	assert.Equal(t, path, p.Path())
}

func TestExpandedDefaults(t *testing.T) {
	p := Default()
	assert.True(t, p.Expanded("GameObject", 0))
	assert.True(t, p.Expanded("GameObject.Transform", 1))
	assert.False(t, p.Expanded("Spawner.Template.Tags", 2))

	p.SetExpanded("GameObject", false)
	assert.False(t, p.Expanded("GameObject", 0))

	var empty Prefs
	empty.SetExpanded("x", true)
	assert.True(t, empty.Expanded("x", 5))
}

func TestSaveWithoutPath(t *testing.T) {
	assert.Error(t, Default().Save())
}
