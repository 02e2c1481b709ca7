// Package prefs holds the editor preferences, stored as TOML.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the preferences file name used when none is given.
const DefaultFile = ".editor3d.toml"

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	FPS    int `toml:"fps"`
}

type Inspector struct {
	Width     int `toml:"width"`
	RowHeight int `toml:"row_height"`
	MaxDepth  int `toml:"max_depth"`
}

// Prefs is the editor state that survives restarts. It also keeps the
// inspector foldout state, so it can be handed to the inspector directly.
type Prefs struct {
	Window       Window          `toml:"window"`
	Inspector    Inspector       `toml:"inspector"`
	UndoDepth    int             `toml:"undo_depth"`
	LogLevel     string          `toml:"log_level"`
	LastScene    string          `toml:"last_scene,omitempty"`
	LastSelected uint64          `toml:"last_selected,omitempty"`
	Foldouts     map[string]bool `toml:"foldouts,omitempty"`

	path string
}

func Default() *Prefs {
	return &Prefs{
		Window:    Window{Width: 1280, Height: 720, FPS: 60},
		Inspector: Inspector{Width: 340, RowHeight: 22, MaxDepth: 8},
		UndoDepth: 50,
		LogLevel:  "info",
		Foldouts:  map[string]bool{},
	}
}

// Load reads the preferences at path. A missing file is not an error: the
// defaults are returned and Save creates the file.
func Load(path string) (*Prefs, error) {
	p := Default()
	p.path = path
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	if err := toml.Unmarshal(data, p); err != nil {
		return Default().at(path), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	p.fix()
	return p, nil
}

func (p *Prefs) at(path string) *Prefs {
	p.path = path
	return p
}

// fix replaces values that would make the editor unusable.
func (p *Prefs) fix() {
	d := Default()
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		p.Window.Width, p.Window.Height = d.Window.Width, d.Window.Height
	}
	if p.Window.FPS <= 0 {
		p.Window.FPS = d.Window.FPS
	}
	if p.Inspector.Width <= 0 {
		p.Inspector.Width = d.Inspector.Width
	}
	if p.Inspector.RowHeight <= 0 {
		p.Inspector.RowHeight = d.Inspector.RowHeight
	}
	if p.Inspector.MaxDepth <= 0 {
		p.Inspector.MaxDepth = d.Inspector.MaxDepth
	}
	if p.UndoDepth <= 0 {
		p.UndoDepth = d.UndoDepth
	}
	if p.Foldouts == nil {
		p.Foldouts = map[string]bool{}
	}
}

func (p *Prefs) Path() string { return p.path }

// Save writes the preferences back to the file they were loaded from.
func (p *Prefs) Save() error {
	if p.path == "" {
		return errors.New("save prefs: no file")
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write prefs: %w", err)
		}
	}
	if err := os.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Level parses LogLevel, falling back to info.
func (p *Prefs) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Expanded reports the stored foldout state for path. Paths without one are
// expanded for the first two levels.
func (p *Prefs) Expanded(path string, depth int) bool {
	if v, ok := p.Foldouts[path]; ok {
		return v
	}
	return depth <= 1
}

func (p *Prefs) SetExpanded(path string, expanded bool) {
	if p.Foldouts == nil {
		p.Foldouts = map[string]bool{}
	}
	p.Foldouts[path] = expanded
}
