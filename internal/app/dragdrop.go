package app

import (
	"path/filepath"
	"strings"

	"editor3d/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleFileDrop opens a scene file dropped onto the window. The current
// scene is kept when it has unsaved changes.
func (a *App) handleFileDrop() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	defer rl.UnloadDroppedFiles()

	for _, file := range files {
		switch ext := strings.ToLower(filepath.Ext(file)); ext {
		case ".yaml", ".yml":
			a.openScene(file)
		default:
			a.notify("Unsupported file type: %s", ext)
		}
	}
}

func (a *App) openScene(path string) {
	if a.session.Scene.Dirty() {
		a.notify("Save or reload %s before opening another scene", a.session.Scene.Name)
		return
	}
	s, err := editor.Open(path, a.opts...)
	if err != nil {
		a.notify("Open failed: %v", err)
		return
	}
	if err := a.session.Close(); err != nil {
		a.log.Warn("app: close session", "err", err)
	}
	a.session = s
	a.dragging, a.dropTarget, a.lastClicked = nil, nil, nil
	a.hierarchyScroll = 0
	rl.SetWindowTitle(a.title())
	a.notify("Opened %s", filepath.Base(path))
}
