// Package rlgui draws gui layouts with raylib and raygui and feeds mouse and
// keyboard input back into the widgets.
package rlgui

import (
	"image/color"
	"log/slog"
	"path/filepath"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fonts used by the panels. A zero font falls back to the raylib default.
var (
	fontRegular rl.Font
	fontBold    rl.Font
	fontMono    rl.Font
	fontsLoaded bool
)

// Indigo dark theme.
var (
	ColorBgDark    = rl.NewColor(10, 10, 15, 255)
	ColorBgPanel   = rl.NewColor(18, 18, 24, 245)
	ColorBgElement = rl.NewColor(28, 28, 38, 255)
	ColorBgHover   = rl.NewColor(38, 38, 52, 255)
	ColorBgActive  = rl.NewColor(48, 48, 65, 255)

	ColorAccent      = rl.NewColor(108, 99, 255, 255)
	ColorAccentLight = rl.NewColor(167, 139, 250, 255)

	ColorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	ColorTextSecondary = rl.NewColor(200, 200, 208, 255)
	ColorTextMuted     = rl.NewColor(119, 119, 119, 255)

	ColorBorder    = rl.NewColor(255, 255, 255, 13)
	ColorSelection = rl.NewColor(108, 99, 255, 60)
	ColorOK        = rl.NewColor(100, 220, 100, 255)
	ColorError     = rl.NewColor(255, 120, 120, 255)
)

// InitStyle loads the editor fonts from dir, if present, and applies the
// theme to raygui. It needs an open window.
func InitStyle(dir string, log *slog.Logger) {
	if !fontsLoaded {
		fontsLoaded = true
		fontRegular = loadFont(filepath.Join(dir, "Outfit-Regular.ttf"), log)
		fontBold = loadFont(filepath.Join(dir, "Outfit-Bold.ttf"), log)
		fontMono = loadFont(filepath.Join(dir, "JetBrainsMono-Regular.ttf"), log)
		if fontRegular.Texture.ID > 0 {
			gui.SetFont(fontRegular)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(ColorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(ColorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(ColorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(ColorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(ColorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func loadFont(path string, log *slog.Logger) rl.Font {
	if !rl.FileExists(path) {
		log.Debug("rlgui: font not found, using default", "path", path)
		return rl.Font{}
	}
	f := rl.LoadFontEx(path, 48, nil)
	if f.Texture.ID == 0 {
		log.Warn("rlgui: failed to load font", "path", path)
		return rl.Font{}
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	log.Debug("rlgui: loaded font", "path", path)
	return f
}

// UnloadStyle frees the fonts loaded by InitStyle.
func UnloadStyle() {
	for _, f := range []*rl.Font{&fontRegular, &fontBold, &fontMono} {
		if f.Texture.ID > 0 {
			rl.UnloadFont(*f)
		}
		*f = rl.Font{}
	}
	fontsLoaded = false
}

// DrawText draws text with font scaled to size.
func DrawText(font rl.Font, text string, x, y int32, size float32, c rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, c)
	} else {
		rl.DrawText(text, x, y, int32(size), c)
	}
}

// MeasureText is the pixel width of text in font at size.
func MeasureText(font rl.Font, text string, size float32) int32 {
	if font.Texture.ID > 0 {
		return int32(rl.MeasureTextEx(font, text, size, 0).X)
	}
	return rl.MeasureText(text, int32(size))
}

func Regular() rl.Font { return fontRegular }
func Bold() rl.Font    { return fontBold }
func Mono() rl.Font    { return fontMono }

// RGBA converts a stored color to a raylib color.
func RGBA(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Fade returns c with its alpha scaled by a.
func Fade(c rl.Color, a float32) rl.Color {
	c.A = uint8(float32(c.A) * max(0, min(a, 1)))
	return c
}

func hovered(r rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
