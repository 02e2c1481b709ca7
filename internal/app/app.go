// Package app is the windowed editor: a 3D view of the scene with the object
// hierarchy on the left and the inspector panel on the right.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"editor3d/internal/editor"
	"editor3d/internal/engine"
	"editor3d/internal/gui/rlgui"
	"editor3d/internal/prefs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	topBarH     = 36
	messageTime = 2.0
)

type App struct {
	// FontDir is where the editor fonts are looked up.
	FontDir string

	session *editor.Session
	prefs   *prefs.Prefs
	opts    []editor.Option
	log     *slog.Logger
	panel   *rlgui.Panel
	camera  *flyCamera

	hierarchyWidth  int32
	hierarchyScroll int32
	dragging        *engine.GameObject
	dropTarget      *engine.GameObject
	lastClicked     *engine.GameObject
	lastClick       float64

	resizing     bool
	resizeStartX float32
	resizeStartW int

	lastStatus  string
	message     string
	messageTime float64
}

// New wraps a session in a window. opts are reused when another scene file
// is dropped onto the window.
func New(s *editor.Session, p *prefs.Prefs, log *slog.Logger, opts ...editor.Option) *App {
	return &App{
		FontDir:        "assets/fonts",
		session:        s,
		prefs:          p,
		opts:           opts,
		log:            log,
		panel:          rlgui.NewPanel(int32(p.Inspector.RowHeight)),
		camera:         newFlyCamera(),
		hierarchyWidth: 210,
	}
}

// Session is the session being edited. It changes when a scene file is
// dropped onto the window.
func (a *App) Session() *editor.Session { return a.session }

// Run opens the window and blocks until it is closed. The window geometry
// and selection are written back into the preferences.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(int32(a.prefs.Window.Width), int32(a.prefs.Window.Height), a.title())
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.prefs.Window.FPS))
	rl.SetExitKey(rl.KeyNull)

	rlgui.InitStyle(a.FontDir, a.log)
	defer rlgui.UnloadStyle()

	if sel := a.session.Selected(); sel != nil {
		a.camera.Focus(sel)
	}

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		a.update(dt)
		a.session.Tick(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rlgui.ColorBgDark)
		a.draw(dt)
		rl.EndDrawing()
	}

	if a.session.Scene.Dirty() {
		a.log.Warn("app: closing with unsaved changes", "scene", a.session.Path)
	}
	a.remember()
	return nil
}

func (a *App) title() string {
	name := a.session.Path
	if name == "" {
		name = a.session.Scene.Name
	}
	return "editor3d - " + name
}

// remember stores the state that should survive a restart.
func (a *App) remember() {
	a.prefs.Window.Width = rl.GetScreenWidth()
	a.prefs.Window.Height = rl.GetScreenHeight()
	a.prefs.LastScene = a.session.Path
	a.prefs.LastSelected = 0
	if g := a.session.Selected(); g != nil {
		a.prefs.LastSelected = uint64(g.UID)
	}
}

func (a *App) notify(format string, args ...any) {
	a.message = fmt.Sprintf(format, args...)
	a.messageTime = rl.GetTime()
}

func (a *App) update(dt float32) {
	s := a.session
	a.handleFileDrop()

	if !a.panel.Typing() {
		a.shortcuts()
	}

	if !a.panel.Busy() {
		a.camera.Update(dt)
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.inViewport(rl.GetMousePosition()) && !a.overInspectorEdge() && a.dragging == nil && !a.panel.Busy() {
		ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), a.camera.Camera3D())
		s.Select(pick(s.Scene, ray))
	}

	if st := s.Status(); st != a.lastStatus {
		a.lastStatus = st
		a.notify("%s", st)
	}
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper)
}

func (a *App) shortcuts() {
	s := a.session
	if ctrlDown() {
		switch {
		case rl.IsKeyPressed(rl.KeyZ) && rl.IsKeyDown(rl.KeyLeftShift), rl.IsKeyPressed(rl.KeyY):
			if !s.Redo() {
				a.notify("Nothing to redo")
			}
		case rl.IsKeyPressed(rl.KeyZ):
			if !s.Undo() {
				a.notify("Nothing to undo")
			}
		case rl.IsKeyPressed(rl.KeyS):
			if err := s.Save(); err != nil {
				a.notify("Save failed: %v", err)
			}
		case rl.IsKeyPressed(rl.KeyR):
			if err := s.Reload(); err != nil {
				a.notify("Reload failed: %v", err)
			}
		case rl.IsKeyPressed(rl.KeyD):
			if _, err := s.Duplicate(); err != nil {
				a.notify("%v", err)
			}
		case rl.IsKeyPressed(rl.KeyN):
			s.CreateObject("")
		case rl.IsKeyPressed(rl.KeyBackspace):
			if err := s.DeleteSelected(); err != nil {
				a.notify("%v", err)
			}
		}
		return
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyDelete):
		if err := s.DeleteSelected(); err != nil {
			a.notify("%v", err)
		}
	case rl.IsKeyPressed(rl.KeyF):
		a.camera.Focus(s.Selected())
	case rl.IsKeyPressed(rl.KeyP):
		s.Playing = !s.Playing
		if s.Playing {
			a.notify("Playing")
		} else {
			a.notify("Stopped")
		}
	}
}

func (a *App) inspectorX() int32 {
	return int32(rl.GetScreenWidth()) - int32(a.prefs.Inspector.Width)
}

func (a *App) inViewport(p rl.Vector2) bool {
	return p.Y > topBarH && p.X > float32(a.hierarchyWidth) && p.X < float32(a.inspectorX())
}

func (a *App) draw(dt float32) {
	s := a.session

	rl.BeginMode3D(a.camera.Camera3D())
	drawScene(s.Scene, s.Selected())
	rl.EndMode3D()

	a.drawTopBar()
	a.drawHierarchy(topBarH)
	a.drawInspector(dt)
	a.handleResize()

	if a.message != "" && rl.GetTime()-a.messageTime < messageTime {
		c := rlgui.ColorOK
		if strings.Contains(a.message, "failed") || strings.HasPrefix(a.message, "Nothing") {
			c = rlgui.ColorError
		}
		w := rlgui.MeasureText(rlgui.Bold(), a.message, 16)
		rlgui.DrawText(rlgui.Bold(), a.message, (int32(rl.GetScreenWidth())-w)/2, topBarH+11, 16, c)
	}

	switch {
	case a.resizing || a.overInspectorEdge():
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	case a.panel.HoverField():
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (a *App) drawTopBar() {
	s := a.session
	w := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, w, topBarH, rlgui.ColorBgDark)
	rl.DrawRectangle(0, topBarH-1, w, 1, rlgui.ColorBorder)

	if s.Playing {
		rlgui.DrawText(rlgui.Bold(), "PLAYING", 12, 7, 22, rl.Orange)
	} else {
		rlgui.DrawText(rlgui.Bold(), "EDITOR", 12, 7, 22, rlgui.ColorAccent)
	}

	name := s.Scene.Name
	if s.Scene.Dirty() {
		name += " *"
	}
	rlgui.DrawText(rlgui.Regular(), name, 125, 9, 18, rlgui.ColorTextSecondary)

	help := "Ctrl+S: Save  |  Ctrl+Z/Y: Undo/Redo  |  P: Play  |  F: Focus"
	rlgui.DrawText(rlgui.Regular(), help, 300, 9, 18, rlgui.ColorTextMuted)
	rlgui.DrawText(rlgui.Mono(), fmt.Sprintf("%d fps", rl.GetFPS()), w-80, 9, 18, rlgui.ColorTextMuted)
}

func (a *App) drawInspector(dt float32) {
	s := a.session
	x := a.inspectorX()
	h := int32(rl.GetScreenHeight()) - topBarH
	w := int32(a.prefs.Inspector.Width)

	rl.DrawRectangle(x, topBarH, w, h, rlgui.ColorBgPanel)
	rl.DrawRectangle(x, topBarH, 2, h, rlgui.ColorBorder)
	if s.Selected() == nil {
		rlgui.DrawText(rlgui.Regular(), "No object selected", x+12, topBarH+12, 16, rlgui.ColorTextMuted)
		return
	}
	bounds := rl.Rectangle{X: float32(x + 2), Y: topBarH, Width: float32(w - 2), Height: float32(h)}
	a.panel.Draw(s.Panel, bounds, dt)
}

func (a *App) overInspectorEdge() bool {
	m := rl.GetMousePosition()
	edge := float32(a.inspectorX())
	return m.Y > topBarH && m.X >= edge-2 && m.X <= edge+2
}

// handleResize lets the inspector be resized by dragging its left edge.
func (a *App) handleResize() {
	m := rl.GetMousePosition()
	if !a.resizing && a.overInspectorEdge() && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.resizing = true
		a.resizeStartX = m.X
		a.resizeStartW = a.prefs.Inspector.Width
	}
	if !a.resizing {
		return
	}
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		a.resizing = false
		return
	}
	w := a.resizeStartW + int(a.resizeStartX-m.X)
	a.prefs.Inspector.Width = max(240, min(w, rl.GetScreenWidth()/2))
}
