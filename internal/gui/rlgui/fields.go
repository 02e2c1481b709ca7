package rlgui

import (
	"fmt"
	"math"

	"editor3d/internal/gui"
	"editor3d/internal/gui/view"
	"editor3d/internal/textdump"

	raygui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// scalar describes one draggable number box.
type scalar struct {
	value  float64
	step   float64
	parse  func(string) (float64, error)
	begin  func()
	set    func(v float64)
	finish func()
	cancel func()
}

// finish publishes the staged value, or drops the edit when nothing changed
// so that no empty undo step is recorded.
func finish[T comparable](p *Panel, e gui.Element, in *gui.Input[T]) {
	if in.Staged() == in.Value() {
		in.Cancel()
		return
	}
	p.Flash.Committed(e)
	in.Commit()
}

func (p *Panel) intField(f *gui.IntField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	p.scalarBox(f, 0, box, scalar{
		value: float64(in.Staged()),
		step:  0.1,
		parse: func(s string) (float64, error) {
			i, err := view.ParseInt(s)
			return float64(i), err
		},
		begin:  in.BeginEdit,
		set:    func(v float64) { in.Edit(int64(math.Round(v))) },
		finish: func() { finish(p, f, in) },
		cancel: in.Cancel,
	}, enabled)
}

func (p *Panel) floatField(f *gui.FloatField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	p.scalarBox(f, 0, box, scalar{
		value:  in.Staged(),
		step:   f.Step,
		parse:  view.ParseFloat,
		begin:  in.BeginEdit,
		set:    in.Edit,
		finish: func() { finish(p, f, in) },
		cancel: in.Cancel,
	}, enabled)
}

func (p *Panel) vectorField(f *gui.VectorField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	spans := view.Split(int32(box.X), int32(box.Width), f.N, 4)
	for i, s := range spans {
		part := rect(s.X, int32(box.Y), s.W, int32(box.Height))
		p.scalarBox(f, i, part, scalar{
			value: float64(in.Staged()[i]),
			step:  0.01,
			parse: view.ParseFloat,
			begin: in.BeginEdit,
			set: func(v float64) {
				vec := in.Staged()
				vec[i] = float32(v)
				in.Edit(vec)
			},
			finish: func() { finish(p, f, in) },
			cancel: in.Cancel,
		}, enabled)
	}
}

// scalarBox draws a number that can be dragged horizontally to scrub it or
// clicked to type a new value.
func (p *Panel) scalarBox(e gui.Element, part int, r rl.Rectangle, s scalar, enabled bool) {
	typing := p.text.On(e, part)
	dragging := p.drag.target == e && p.drag.part == part
	hover := p.mouseIn && hovered(r)
	if hover && !typing && enabled {
		p.hoverField = true
	}

	bg := ColorBgElement
	if typing {
		bg = ColorBgActive
	} else if hover || dragging {
		bg = ColorBgHover
	}
	rl.DrawRectangleRounded(r, 0.2, 4, bg)
	if typing || (dragging && p.drag.moved) {
		rl.DrawRectangleRoundedLinesEx(r, 0.2, 4, 1, ColorAccent)
	}

	if typing {
		DrawText(fontMono, p.text.Text+"_", int32(r.X)+6, int32(r.Y)+3, 15, ColorTextPrimary)
		p.typing(r, func(text string) bool {
			v, err := s.parse(text)
			if err != nil {
				return false
			}
			s.set(v)
			s.finish()
			return true
		}, s.cancel)
		return
	}
	DrawText(fontMono, view.FormatFloat(s.value), int32(r.X)+6, int32(r.Y)+3, 15, ColorTextSecondary)
	if !enabled {
		return
	}

	mouse := rl.GetMousePosition()
	if !dragging {
		if p.drag.target == nil && !p.text.Active() && p.clicked(r) {
			p.drag = drag{target: e, part: part, startX: mouse.X, start: s.value}
			s.begin()
		}
		return
	}

	dx := mouse.X - p.drag.startX
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if !view.IsClick(dx) {
			p.drag.moved = true
		}
		if p.drag.moved {
			s.set(view.Scrub(p.drag.start, dx, s.step, rl.IsKeyDown(rl.KeyLeftShift)))
		}
		return
	}
	moved := p.drag.moved
	p.drag = drag{}
	if moved {
		p.post(s.finish)
		return
	}
	p.text.Start(e, part, view.FormatFloat(s.value), view.Numeric)
}

// typing feeds keyboard input to the focused box. Enter, Tab or a click
// elsewhere hands the text to accept; Escape or rejected text cancels.
func (p *Panel) typing(r rl.Rectangle, accept func(text string) bool, cancel func()) {
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		p.text.Type(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		p.text.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		p.text.Stop()
		p.post(cancel)
		return
	}
	outside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered(r)
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || outside {
		text := p.text.Stop()
		p.post(func() {
			if !accept(text) {
				cancel()
			}
		})
	}
}

func (p *Panel) toggle(t *gui.Toggle, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(t.Label, lr, false)
	cb := rl.Rectangle{X: box.X, Y: box.Y + (box.Height-16)/2, Width: 16, Height: 16}
	v := raygui.CheckBox(cb, "", t.Value())
	if enabled && p.mouseIn && v != t.Value() {
		p.post(func() {
			p.Flash.Committed(t)
			t.Set(v)
		})
	}
}

// textBox draws a click-to-type box showing shown. While typing, the box
// holds the text started with initial.
func (p *Panel) textBox(e gui.Element, r rl.Rectangle, enabled bool, shown, initial string, filter func(rune) bool, begin func(), accept func(string) bool, cancel func()) {
	typing := p.text.On(e, 0)
	hover := p.mouseIn && hovered(r)
	bg := ColorBgElement
	if typing {
		bg = ColorBgActive
	} else if hover {
		bg = ColorBgHover
	}
	rl.DrawRectangleRounded(r, 0.2, 4, bg)
	if typing {
		rl.DrawRectangleRoundedLinesEx(r, 0.2, 4, 1, ColorAccent)
		DrawText(fontRegular, p.text.Text+"_", int32(r.X)+6, int32(r.Y)+3, 15, ColorTextPrimary)
		p.typing(r, accept, cancel)
		return
	}
	DrawText(fontRegular, shown, int32(r.X)+6, int32(r.Y)+3, 15, ColorTextSecondary)
	if enabled && !p.text.Active() && p.drag.target == nil && p.clicked(r) {
		begin()
		p.text.Start(e, 0, initial, filter)
	}
}

func (p *Panel) textField(f *gui.TextField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	p.textBox(f, box, enabled, in.Value(), in.Value(), nil, in.BeginEdit,
		func(text string) bool {
			in.Edit(text)
			finish(p, f, in)
			return true
		}, in.Cancel)
}

func (p *Panel) colorField(f *gui.ColorField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	swatch := rl.Rectangle{X: box.X, Y: box.Y + 2, Width: box.Height - 4, Height: box.Height - 4}
	rl.DrawRectangleRec(swatch, RGBA(in.Value()))
	rl.DrawRectangleLinesEx(swatch, 1, ColorBorder)
	box.X += box.Height
	box.Width -= box.Height
	hex := textdump.FormatColor(in.Value())
	p.textBox(f, box, enabled, hex, hex, view.Hex, in.BeginEdit,
		func(text string) bool {
			c, err := view.ParseColor(text)
			if err != nil {
				return false
			}
			in.Edit(c)
			finish(p, f, in)
			return true
		}, in.Cancel)
}

func (p *Panel) refField(f *gui.RefField, r rl.Rectangle, enabled bool) {
	lr, box := fieldRects(r)
	drawLabel(f.Label, lr, f.Editing())
	in := &f.Input
	initial := ""
	if id := in.Value(); id != 0 {
		initial = fmt.Sprintf("#%d", id)
	}
	p.textBox(f, box, enabled, f.Display, initial,
		func(r rune) bool { return r == '#' || (r >= '0' && r <= '9') },
		in.BeginEdit,
		func(text string) bool {
			id, err := view.ParseRef(text)
			if err != nil {
				return false
			}
			in.Edit(id)
			finish(p, f, in)
			return true
		}, in.Cancel)

	if p.Dragged != 0 && enabled && hovered(box) {
		rl.DrawRectangleRoundedLinesEx(box, 0.2, 4, 1, ColorAccentLight)
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			id := p.Dragged
			p.post(func() {
				in.Edit(id)
				finish(p, f, in)
			})
		}
	}
}
