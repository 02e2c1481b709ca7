// Package editor ties a scene file to the inspector panel: it owns the
// selection, one inspector per inspected object, the shared undo history and
// the dirty state of the scene.
package editor

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"editor3d/internal/engine"
	"editor3d/internal/gui"
	"editor3d/internal/inspect"
	"editor3d/internal/scenefile"
	"editor3d/internal/watch"
)

var ErrNoSelection = errors.New("no object selected")

type Option func(*Session)

// WithState keeps foldout state in p, typically the editor preferences.
func WithState(p inspect.Persistent) Option {
	return func(s *Session) { s.state = p }
}

func WithUndoDepth(n int) Option {
	return func(s *Session) { s.history = inspect.NewHistory(n) }
}

func WithMaxDepth(n int) Option {
	return func(s *Session) { s.maxDepth = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithWatch reloads the scene file when it changes on disk.
func WithWatch() Option {
	return func(s *Session) { s.watchFile = true }
}

// Session is the editing state of one scene. It is not safe for concurrent
// use: the host calls it from its frame loop only.
type Session struct {
	Path  string
	Scene *engine.Scene
	// Panel holds the inspectors of the selection followed by the Add
	// Component section.
	Panel *gui.Layout
	// Playing runs the scene's Update on every Tick.
	Playing bool

	selected   *engine.GameObject
	inspectors []*inspect.Inspector
	addMenu    *gui.Layout

	history   *inspect.History
	registry  *inspect.Registry
	state     inspect.Persistent
	maxDepth  int
	log       *slog.Logger
	watchFile bool
	watcher   *watch.Watcher
	// disk is the file content last loaded or saved, to tell our own saves
	// from external changes.
	disk   []byte
	status string
}

// Open loads the scene at path.
func Open(path string, opts ...Option) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	scene, err := scenefile.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s := New(scene, opts...)
	s.Path = path
	s.disk = data
	if s.watchFile {
		s.watcher, err = watch.New(path, watch.WithLogger(s.log))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// New starts a session on a scene that has no file yet.
func New(scene *engine.Scene, opts ...Option) *Session {
	s := &Session{
		Scene:    scene,
		Panel:    gui.NewLayout(gui.Vertical),
		history:  inspect.NewHistory(inspect.DefaultUndoDepth),
		registry: newRegistry(),
		state:    inspect.MapState{},
		maxDepth: inspect.DefaultMaxDepth,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Selected() *engine.GameObject { return s.selected }

func (s *Session) Inspectors() []*inspect.Inspector { return s.inspectors }

func (s *Session) History() *inspect.History { return s.history }

// Status is the last message for the user.
func (s *Session) Status() string { return s.status }

func (s *Session) setStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
	s.log.Info("editor: " + s.status)
}

// Select shows g in the panel. Pass nil to clear the panel.
func (s *Session) Select(g *engine.GameObject) {
	s.clearPanel()
	s.selected = g
	if g == nil || !g.Alive() {
		s.selected = nil
		return
	}
	s.buildPanel()
}

// SelectUID selects the object with the given uid, or nothing when it is not
// in the scene.
func (s *Session) SelectUID(uid engine.UID) bool {
	g := s.Scene.FindByUID(uid)
	s.Select(g)
	return g != nil
}

func (s *Session) clearPanel() {
	for _, in := range s.inspectors {
		in.Destroy()
	}
	s.inspectors = nil
	s.Panel.Clear()
	s.addMenu = nil
}

func (s *Session) options(alive func() bool) []inspect.Option {
	return []inspect.Option{
		inspect.WithRegistry(s.registry),
		inspect.WithState(s.state),
		inspect.WithHistory(s.history),
		inspect.WithResolver(s.resolve),
		inspect.WithMaxDepth(s.maxDepth),
		inspect.WithLiveness(alive),
	}
}

func (s *Session) resolve(id uint64) (string, bool) {
	g := s.Scene.FindByUID(engine.UID(id))
	if g == nil {
		return "", false
	}
	return g.Name, true
}

func (s *Session) buildPanel() {
	g := s.selected
	in, err := inspect.New("GameObject", g, s.Panel, s.options(g.Alive)...)
	if err != nil {
		s.log.Error("editor: inspect object", "name", g.Name, "err", err)
		return
	}
	in.Refresh()
	s.inspectors = append(s.inspectors, in)

	for _, c := range g.Components() {
		name := engine.ComponentName(c)
		in, err := inspect.New(name, c, s.Panel, s.options(func() bool { return engine.ComponentAlive(c) })...)
		if err != nil {
			s.log.Error("editor: inspect component", "component", name, "err", err)
			continue
		}
		in.Refresh()
		if h, ok := in.Root().Inspectable().(interface{ Header() *gui.Foldout }); ok {
			h.Header().SetActions([]gui.Action{{Label: "Remove Component", Do: func() {
				if err := s.RemoveComponent(c); err != nil {
					s.log.Warn("editor: remove component", "component", name, "err", err)
				}
			}}})
		}
		s.inspectors = append(s.inspectors, in)
	}

	s.addMenu = s.Panel.AddLayout(s.Panel.Len(), gui.Vertical)
	header := gui.NewFoldout("Add Component", false)
	s.addMenu.Append(header)
	list := s.addMenu.AddLayout(1, gui.Vertical)
	list.SetActive(false)
	header.OnToggled.AddListener(list.SetActive)
	for _, name := range engine.ComponentNames() {
		list.Append(gui.NewButton(name, func() {
			if err := s.AddComponent(name); err != nil {
				s.log.Warn("editor: add component", "component", name, "err", err)
			}
		}))
	}
}

// rebuild recreates the panel for the current selection, keeping foldout
// state.
func (s *Session) rebuild() {
	s.Select(s.selected)
}

// Tick runs one frame: it plays the scene when Playing, picks up file
// changes and refreshes the inspectors. It reports whether the panel
// changed. Changes seen while not playing mark the scene dirty.
func (s *Session) Tick(deltaTime float32) bool {
	if s.Playing {
		s.Scene.Update(deltaTime)
	}
	if s.watcher != nil {
		select {
		case <-s.watcher.Changes():
			if err := s.reloadIfChanged(); err != nil {
				s.setStatus("Reload failed: %v", err)
			}
		default:
		}
	}
	if s.selected != nil && !s.selected.Alive() {
		s.Select(nil)
		return true
	}
	modified := false
	for _, in := range s.inspectors {
		if in.Refresh() {
			modified = true
		}
	}
	if modified && !s.Playing {
		s.Scene.MarkDirty()
	}
	return modified
}

// Save writes the scene back to its file.
func (s *Session) Save() error {
	if s.Path == "" {
		return errors.New("save scene: no file")
	}
	if err := scenefile.Save(s.Path, s.Scene); err != nil {
		s.setStatus("Save failed: %v", err)
		return err
	}
	if data, err := os.ReadFile(s.Path); err == nil {
		s.disk = data
	}
	s.setStatus("Scene saved!")
	return nil
}

// Reload replaces the scene with the file content. The selection is kept by
// uid and the undo history is dropped, since it refers to the old objects.
func (s *Session) Reload() error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return s.replace(data)
}

func (s *Session) reloadIfChanged() error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if bytes.Equal(data, s.disk) {
		return nil
	}
	if s.Scene.Dirty() {
		s.disk = data
		s.setStatus("%s changed on disk; keeping unsaved edits", s.Path)
		return nil
	}
	return s.replace(data)
}

func (s *Session) replace(data []byte) error {
	scene, err := scenefile.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}
	var uid engine.UID
	if s.selected != nil {
		uid = s.selected.UID
	}
	s.clearPanel()
	for _, g := range s.Scene.Roots() {
		g.Destroy()
	}
	s.Scene = scene
	s.disk = data
	s.history.Clear()
	s.selected = nil
	if uid != 0 {
		s.SelectUID(uid)
	}
	s.setStatus("Reloaded %s", s.Path)
	return nil
}

// Undo reverts the last edit made through any inspector of the session.
func (s *Session) Undo() bool {
	e, err := s.history.Undo()
	return s.afterStep("Undo", e, err)
}

func (s *Session) Redo() bool {
	e, err := s.history.Redo()
	return s.afterStep("Redo", e, err)
}

func (s *Session) afterStep(op string, e inspect.Edit, err error) bool {
	if e.Label == "" {
		return false
	}
	if err != nil {
		s.setStatus("%s %s failed: %v", op, e.Label, err)
		return false
	}
	s.Scene.MarkDirty()
	s.setStatus("%s %s", op, e.Label)
	return true
}

// AddComponent adds a new component of the registered type to the
// selection.
func (s *Session) AddComponent(name string) error {
	if s.selected == nil {
		return ErrNoSelection
	}
	c, err := engine.NewComponent(name)
	if err != nil {
		return err
	}
	s.selected.AddComponent(c)
	s.Scene.MarkDirty()
	s.rebuild()
	return nil
}

// RemoveComponent detaches c from the selection.
func (s *Session) RemoveComponent(c engine.Component) error {
	if s.selected == nil {
		return ErrNoSelection
	}
	if !s.selected.RemoveComponent(c) {
		return fmt.Errorf("remove %s: not on %s", engine.ComponentName(c), s.selected.Name)
	}
	s.Scene.MarkDirty()
	s.rebuild()
	return nil
}

// DeleteSelected destroys the selection and its children.
func (s *Session) DeleteSelected() error {
	g := s.selected
	if g == nil {
		return ErrNoSelection
	}
	s.Select(nil)
	g.Destroy()
	s.Scene.MarkDirty()
	s.setStatus("Deleted %s", g.Name)
	return nil
}

// Close tears down the panel and stops watching the file. The scene is not
// saved.
func (s *Session) Close() error {
	s.clearPanel()
	s.selected = nil
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
