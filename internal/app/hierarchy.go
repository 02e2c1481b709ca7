package app

import (
	"editor3d/internal/engine"
	"editor3d/internal/gui/rlgui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hierarchyItemH = 22

type hierarchyRow struct {
	g     *engine.GameObject
	depth int32
}

// flatten lists the scene tree depth first.
func flatten(scene *engine.Scene) []hierarchyRow {
	var rows []hierarchyRow
	var walk func(g *engine.GameObject, depth int32)
	walk = func(g *engine.GameObject, depth int32) {
		rows = append(rows, hierarchyRow{g: g, depth: depth})
		for _, c := range g.Children {
			walk(c, depth+1)
		}
	}
	for _, g := range scene.Roots() {
		walk(g, 0)
	}
	return rows
}

// drawHierarchy draws the object tree on the left. Releasing a press on an
// item selects it. Dragging an item onto another reparents it, onto the
// bottom strip unparents it, and onto a reference field in the inspector
// assigns it.
func (a *App) drawHierarchy(panelY int32) {
	s := a.session
	panelX := int32(0)
	panelW := a.hierarchyWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, rlgui.ColorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, rlgui.ColorBorder)
	rlgui.DrawText(rlgui.Bold(), "Hierarchy", panelX+12, panelY+8, 18, rlgui.ColorTextSecondary)

	mouse := rl.GetMousePosition()
	btn := rl.Rectangle{X: float32(panelX + panelW - 62), Y: float32(panelY + 6), Width: 54, Height: 22}
	btnColor, textColor := rlgui.ColorBgElement, rlgui.ColorTextSecondary
	btnHovered := rl.CheckCollisionPointRec(mouse, btn)
	if btnHovered {
		btnColor, textColor = rlgui.ColorAccent, rlgui.ColorTextPrimary
	}
	rl.DrawRectangleRounded(btn, 0.5, 6, btnColor)
	rlgui.DrawText(rlgui.Regular(), "+ New", int32(btn.X)+8, int32(btn.Y)+3, 16, textColor)
	clickedNew := btnHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
	if clickedNew {
		s.CreateObject("")
	}

	listY := panelY + 34
	list := rl.Rectangle{X: float32(panelX), Y: float32(listY), Width: float32(panelW), Height: float32(panelH - 34)}
	mouseIn := rl.CheckCollisionPointRec(mouse, list)
	if mouseIn && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		a.hierarchyScroll -= int32(rl.GetMouseWheelMove() * 20)
	}
	rows := flatten(s.Scene)
	a.hierarchyScroll = max(0, min(a.hierarchyScroll, int32(len(rows))*hierarchyItemH-int32(list.Height)+30))

	a.dropTarget = nil
	rl.BeginScissorMode(int32(list.X), int32(list.Y), int32(list.Width), int32(list.Height))
	for i, row := range rows {
		g := row.g
		itemY := listY + int32(i)*hierarchyItemH - a.hierarchyScroll
		if itemY+hierarchyItemH < listY || itemY > panelY+panelH {
			continue
		}
		hovered := mouseIn && mouse.Y >= float32(itemY) && mouse.Y < float32(itemY+hierarchyItemH)
		selected := s.Selected() == g
		dropTarget := a.dragging != nil && hovered && a.dragging != g && !isDescendant(g, a.dragging)

		switch {
		case dropTarget:
			rl.DrawRectangle(panelX, itemY, panelW, hierarchyItemH, rlgui.ColorSelection)
			a.dropTarget = g
		case selected:
			rl.DrawRectangle(panelX, itemY, panelW, hierarchyItemH, rlgui.ColorSelection)
			rl.DrawRectangle(panelX, itemY, 3, hierarchyItemH, rlgui.ColorAccent)
		case hovered:
			rl.DrawRectangle(panelX, itemY, panelW, hierarchyItemH, rlgui.ColorBgHover)
		}

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !clickedNew && a.dragging == nil {
			now := rl.GetTime()
			if now-a.lastClick < 0.3 && a.lastClicked == g {
				a.camera.Focus(g)
			}
			a.dragging = g
			a.lastClick = now
			a.lastClicked = g
		}

		c := rlgui.ColorTextSecondary
		if !g.Active {
			c = rlgui.ColorTextMuted
		}
		if selected {
			c = rlgui.ColorAccentLight
		}
		if a.dragging == g {
			c = rlgui.ColorAccent
		}
		rlgui.DrawText(rlgui.Regular(), g.Name, panelX+12+row.depth*16, itemY+3, 16, c)
	}
	rl.EndScissorMode()

	unparent := false
	if a.dragging != nil && a.dragging.Parent != nil {
		y := panelY + panelH - hierarchyItemH - 4
		zone := rl.Rectangle{X: float32(panelX), Y: float32(y), Width: float32(panelW), Height: hierarchyItemH}
		bg := rl.NewColor(80, 50, 50, 180)
		if rl.CheckCollisionPointRec(mouse, zone) {
			bg = rl.NewColor(180, 80, 80, 200)
			unparent = true
			a.dropTarget = nil
		}
		rl.DrawRectangleRec(zone, bg)
		rlgui.DrawText(rlgui.Regular(), "- Unparent -", panelX+55, y+3, 16, rlgui.ColorTextSecondary)
	}

	a.panel.Dragged = 0
	if a.dragging != nil && mouse.X > float32(panelW) {
		a.panel.Dragged = uint64(a.dragging.UID)
	}

	if a.dragging != nil && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		var err error
		switch {
		case unparent:
			err = s.Reparent(a.dragging, nil)
		case a.dropTarget != nil:
			err = s.Reparent(a.dragging, a.dropTarget)
		case mouseIn && s.Selected() != a.dragging:
			s.Select(a.dragging)
		}
		if err != nil {
			a.log.Warn("app: reparent failed", "object", a.dragging.Name, "err", err)
		}
		a.dragging = nil
		a.dropTarget = nil
	}

	if a.dragging != nil && rl.IsMouseButtonDown(rl.MouseLeftButton) && !mouseIn {
		rlgui.DrawText(rlgui.Regular(), a.dragging.Name, int32(mouse.X)+10, int32(mouse.Y)-8, 14, rlgui.ColorAccentLight)
	}
}

func isDescendant(g, ancestor *engine.GameObject) bool {
	for p := g.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
