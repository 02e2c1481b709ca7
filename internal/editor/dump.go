package editor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"editor3d/internal/engine"
	"editor3d/internal/textdump"
)

// DumpOptions selects what Dump renders.
type DumpOptions struct {
	textdump.Options
	// Object limits the dump to the object with this name. Empty dumps
	// every object of the scene.
	Object string
}

// Dump renders the inspector panel of the requested objects as text. Each
// panel is preceded by a header naming the object. The selection is restored
// afterwards.
func (s *Session) Dump(w io.Writer, opts DumpOptions) error {
	var objects []*engine.GameObject
	if opts.Object != "" {
		g := s.Scene.FindByName(opts.Object)
		if g == nil {
			return fmt.Errorf("dump: no object named %q in %s", opts.Object, s.Scene.Name)
		}
		objects = append(objects, g)
	} else {
		objects = hierarchy(s.Scene)
	}

	prev := s.selected
	defer s.Select(prev)

	for i, g := range objects {
		s.Select(g)
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("== %s (#%d)", g.Name, g.UID)
		if _, err := io.WriteString(w, opts.Colors.Color(textdump.HeaderAttr, "%s", header)+"\n"); err != nil {
			return err
		}
		if err := textdump.Dump(w, s.Panel, opts.Options); err != nil {
			return err
		}
	}
	return nil
}

// DumpString is Dump into a string.
func (s *Session) DumpString(opts DumpOptions) (string, error) {
	var sb strings.Builder
	err := s.Dump(&sb, opts)
	return sb.String(), err
}

// Follow writes the dump once, then ticks the session every interval and
// writes a diff whenever the dump changes, until ctx is done. Use it on a
// session opened WithWatch to follow edits made to the file.
func (s *Session) Follow(ctx context.Context, w io.Writer, opts DumpOptions, interval time.Duration) error {
	last, err := s.DumpString(opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, last); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		s.Tick(float32(interval.Seconds()))
		cur, err := s.DumpString(opts)
		if err != nil {
			s.log.Warn("editor: dump", "err", err)
			continue
		}
		if cur == last {
			continue
		}
		d := textdump.Diff(last, cur, opts.Colors)
		last = cur
		if _, err := fmt.Fprintf(w, "\n%s\n%s", opts.Colors.Color(textdump.HeaderAttr, "@@ %s", time.Now().Format(time.TimeOnly)), d); err != nil {
			return err
		}
	}
}

// hierarchy lists the scene tree depth first.
func hierarchy(scene *engine.Scene) []*engine.GameObject {
	var out []*engine.GameObject
	var walk func(g *engine.GameObject)
	walk = func(g *engine.GameObject) {
		out = append(out, g)
		for _, c := range g.Children {
			walk(c)
		}
	}
	for _, g := range scene.Roots() {
		walk(g)
	}
	return out
}
