package rlgui

import (
	"editor3d/internal/gui"
	"editor3d/internal/gui/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelPad  = 8
	widgetGap = 6
	menuItemH = 22
)

// Panel draws a gui layout as a scrolling list of rows. Widget callbacks run
// after the frame is drawn, so a callback may rebuild the layout freely.
type Panel struct {
	RowHeight   int32
	IndentWidth int32
	Flash       *view.Flash
	// Dragged is the uid of an object being dragged from the hierarchy, or
	// zero. Reference fields accept it on release.
	Dragged uint64

	scroll int32
	text   view.TextEdit
	drag   drag
	menu   *menu
	later  []func()

	mouseIn    bool
	hoverField bool
}

type drag struct {
	target gui.Element
	part   int
	startX float32
	start  float64
	moved  bool
}

type menu struct {
	actions []gui.Action
	at      rl.Vector2
}

func NewPanel(rowHeight int32) *Panel {
	return &Panel{
		RowHeight:   rowHeight,
		IndentWidth: 14,
		Flash:       view.NewFlash(view.DefaultFlashDuration),
	}
}

// Typing reports whether a field has keyboard focus. Hosts should not treat
// keys as shortcuts while it is set.
func (p *Panel) Typing() bool { return p.text.Active() }

// Busy reports whether the panel is typing, dragging or showing a menu.
func (p *Panel) Busy() bool {
	return p.text.Active() || p.drag.target != nil || p.menu != nil
}

// HoverField reports whether the mouse is over a draggable field.
func (p *Panel) HoverField() bool { return p.hoverField || p.drag.moved }

// Draw lays out root inside bounds, draws it and handles input for one frame.
func (p *Panel) Draw(root *gui.Layout, bounds rl.Rectangle, dt float32) {
	p.dropStale()
	p.Flash.Update(dt)

	x, y := int32(bounds.X), int32(bounds.Y)
	w, h := int32(bounds.Width), int32(bounds.Height)
	rl.DrawRectangleRec(bounds, ColorBgPanel)

	rows := view.Rows(root)
	content := view.Height(rows, p.RowHeight) + 2*panelPad
	p.mouseIn = hovered(bounds) && p.menu == nil
	if p.mouseIn && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		p.scroll -= int32(rl.GetMouseWheelMove() * 20)
	}
	p.scroll = view.ClampScroll(p.scroll, content, h)
	p.hoverField = false

	rl.BeginScissorMode(x, y, w, h)
	for i, row := range rows {
		ry := y + panelPad + int32(i)*p.RowHeight - p.scroll
		if ry+p.RowHeight < y || ry > y+h {
			continue
		}
		rx := x + panelPad + int32(row.Indent)*p.IndentWidth
		spans := view.Split(rx, x+w-panelPad-rx, len(row.Elements), widgetGap)
		for j, e := range row.Elements {
			p.element(e, rect(spans[j].X, ry+2, spans[j].W, p.RowHeight-4))
		}
	}
	rl.EndScissorMode()

	if content > h {
		bar := float32(h) * float32(h) / float32(content)
		by := bounds.Y + (float32(h)-bar)*float32(p.scroll)/float32(content-h)
		rl.DrawRectangleRounded(rl.Rectangle{X: bounds.X + bounds.Width - 4, Y: by, Width: 3, Height: bar}, 1, 4, ColorBgActive)
	}

	p.drawMenu()
	p.flush()
}

// dropStale forgets focus on widgets that the last frame destroyed.
func (p *Panel) dropStale() {
	if p.text.Target != nil && p.text.Target.Destroyed() {
		p.text.Stop()
	}
	if p.drag.target != nil && p.drag.target.Destroyed() {
		p.drag = drag{}
	}
}

func (p *Panel) post(fn func()) {
	p.later = append(p.later, fn)
}

func (p *Panel) flush() {
	fns := p.later
	p.later = nil
	for _, fn := range fns {
		fn()
	}
}

func (p *Panel) clicked(r rl.Rectangle) bool {
	return p.mouseIn && hovered(r) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (p *Panel) element(e gui.Element, r rl.Rectangle) {
	enabled := gui.Enabled(e)
	if acts := e.Actions(); len(acts) > 0 && enabled {
		if p.mouseIn && hovered(r) && rl.IsMouseButtonPressed(rl.MouseRightButton) {
			p.menu = &menu{actions: acts, at: rl.GetMousePosition()}
		}
		DrawText(fontRegular, "...", int32(r.X+r.Width)-16, int32(r.Y)+2, 14, ColorTextMuted)
		r.Width -= 20
	}
	p.Flash.Observe(e)

	switch w := e.(type) {
	case *gui.Label:
		DrawText(fontRegular, w.Text, int32(r.X)+2, int32(r.Y)+3, 15, ColorTextMuted)
	case *gui.Button:
		p.button(w, r, enabled)
	case *gui.Foldout:
		p.foldout(w, r, enabled)
	case *gui.IntField:
		p.intField(w, r, enabled)
	case *gui.FloatField:
		p.floatField(w, r, enabled)
	case *gui.Toggle:
		p.toggle(w, r, enabled)
	case *gui.TextField:
		p.textField(w, r, enabled)
	case *gui.ColorField:
		p.colorField(w, r, enabled)
	case *gui.VectorField:
		p.vectorField(w, r, enabled)
	case *gui.RefField:
		p.refField(w, r, enabled)
	}

	if a := p.Flash.Alpha(e); a > 0 {
		rl.DrawRectangleRounded(r, 0.2, 4, Fade(ColorAccent, a*0.4))
	}
	if !enabled {
		rl.DrawRectangleRec(r, Fade(ColorBgPanel, 0.6))
	}
}

func (p *Panel) button(b *gui.Button, r rl.Rectangle, enabled bool) {
	bg, fg := ColorBgElement, ColorTextSecondary
	if enabled && p.mouseIn && hovered(r) {
		bg, fg = ColorAccent, ColorTextPrimary
	}
	rl.DrawRectangleRounded(r, 0.5, 6, bg)
	tw := MeasureText(fontRegular, b.Text, 15)
	DrawText(fontRegular, b.Text, int32(r.X+(r.Width-float32(tw))/2), int32(r.Y)+3, 15, fg)
	if enabled && p.clicked(r) {
		p.post(b.Click)
	}
}

func (p *Panel) foldout(f *gui.Foldout, r rl.Rectangle, enabled bool) {
	arrow := ">"
	if f.Expanded() {
		arrow = "v"
	}
	if p.mouseIn && hovered(r) {
		rl.DrawRectangleRec(r, ColorBgHover)
	}
	DrawText(fontMono, arrow, int32(r.X)+2, int32(r.Y)+3, 14, ColorTextMuted)
	DrawText(fontBold, f.Text, int32(r.X)+16, int32(r.Y)+2, 16, ColorTextPrimary)
	if enabled && p.clicked(r) {
		p.post(f.Toggle)
	}
}

// fieldRects splits r into the label column and the value box.
func fieldRects(r rl.Rectangle) (label, box rl.Rectangle) {
	lw := r.Width * 0.4
	label = rl.Rectangle{X: r.X, Y: r.Y, Width: lw, Height: r.Height}
	box = rl.Rectangle{X: r.X + lw, Y: r.Y, Width: r.Width - lw, Height: r.Height}
	return label, box
}

func drawLabel(text string, r rl.Rectangle, editing bool) {
	c := ColorTextSecondary
	if editing {
		c = ColorAccentLight
	}
	DrawText(fontRegular, text, int32(r.X)+2, int32(r.Y)+3, 15, c)
}

func (p *Panel) drawMenu() {
	if p.menu == nil {
		return
	}
	m := p.menu
	w := float32(140)
	h := float32(len(m.actions) * menuItemH)
	bg := rl.Rectangle{X: m.at.X, Y: m.at.Y, Width: w, Height: h}
	rl.DrawRectangleRec(bg, ColorBgDark)
	rl.DrawRectangleLinesEx(bg, 1, ColorAccent)

	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	for i, a := range m.actions {
		item := rl.Rectangle{X: bg.X, Y: bg.Y + float32(i*menuItemH), Width: w, Height: menuItemH}
		if hovered(item) {
			rl.DrawRectangleRec(item, ColorSelection)
			if pressed {
				p.post(a.Do)
			}
		}
		DrawText(fontRegular, a.Label, int32(item.X)+8, int32(item.Y)+3, 15, ColorTextSecondary)
	}
	if pressed || rl.IsKeyPressed(rl.KeyEscape) {
		p.menu = nil
	}
}
