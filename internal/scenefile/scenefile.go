// Package scenefile reads and writes scenes as YAML documents.
//
// Components are stored by their registered name with their exported fields
// under "fields", so any component registered with engine.RegisterComponent
// round-trips without extra code:
//
//	objects:
//	  - uid: 1
//	    name: Crate
//	    position: [0, 1, 0]
//	    components:
//	      - type: Rigidbody
//	        fields:
//	          mass: 2
package scenefile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDoc `yaml:"objects"`
}

type ObjectDoc struct {
	UID        engine.UID     `yaml:"uid"`
	Name       string         `yaml:"name"`
	Parent     engine.UID     `yaml:"parent,omitempty"`
	Active     *bool          `yaml:"active,omitempty"`
	Tags       []string       `yaml:"tags,omitempty,flow"`
	Position   mgl32.Vec3     `yaml:"position,flow"`
	Rotation   mgl32.Vec3     `yaml:"rotation,flow"`
	Scale      mgl32.Vec3     `yaml:"scale,flow"`
	Components []ComponentDoc `yaml:"components,omitempty"`
}

type ComponentDoc struct {
	Type   string    `yaml:"type"`
	Fields yaml.Node `yaml:"fields"`
}

// --- Loading ---

// Load reads the scene file at path.
func Load(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode builds a scene from a YAML document. Objects keep the UIDs stored in
// the document; objects without one get a fresh UID.
func Decode(data []byte) (*engine.Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	for _, od := range doc.Objects {
		engine.ReserveUID(od.UID)
	}

	s := engine.NewScene(doc.Name)
	for _, od := range doc.Objects {
		if od.UID != 0 && s.FindByUID(od.UID) != nil {
			return nil, fmt.Errorf("object %q: duplicate uid %d", od.Name, od.UID)
		}
		g, err := decodeObject(od)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", od.Name, err)
		}
		s.AddGameObject(g)
	}

	for _, od := range doc.Objects {
		if od.Parent == 0 {
			continue
		}
		parent := s.FindByUID(od.Parent)
		if parent == nil {
			return nil, fmt.Errorf("object %q: unknown parent uid %d", od.Name, od.Parent)
		}
		parent.AddChild(s.FindByUID(od.UID))
	}

	s.ClearDirty()
	return s, nil
}

func decodeObject(od ObjectDoc) (*engine.GameObject, error) {
	g := engine.NewGameObject(od.Name)
	if od.UID != 0 {
		g.UID = od.UID
	}
	g.Tags = od.Tags
	if od.Active != nil {
		g.Active = *od.Active
	}
	g.Transform.Position = od.Position
	g.Transform.Rotation = od.Rotation

	// Default scale to 1 if zero
	if od.Scale != (mgl32.Vec3{}) {
		g.Transform.Scale = od.Scale
	}

	for _, cd := range od.Components {
		c, err := engine.NewComponent(cd.Type)
		if err != nil {
			return nil, err
		}
		if !cd.Fields.IsZero() {
			if err := cd.Fields.Decode(c); err != nil {
				return nil, fmt.Errorf("component %s: %w", cd.Type, err)
			}
		}
		g.AddComponent(c)
	}
	return g, nil
}

// --- Saving ---

// Save writes s to path and clears its dirty flag. The file is replaced
// atomically so that watchers never see a partial document.
func Save(path string, s *engine.Scene) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	s.ClearDirty()
	return nil
}

// Encode renders s as a YAML document.
func Encode(s *engine.Scene) ([]byte, error) {
	doc := Document{Name: s.Name}
	for _, g := range s.GameObjects {
		od, err := encodeObject(g)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", g.Name, err)
		}
		doc.Objects = append(doc.Objects, od)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeObject(g *engine.GameObject) (ObjectDoc, error) {
	od := ObjectDoc{
		UID:      g.UID,
		Name:     g.Name,
		Tags:     g.Tags,
		Position: g.Transform.Position,
		Rotation: g.Transform.Rotation,
		Scale:    g.Transform.Scale,
	}
	if g.Parent != nil {
		od.Parent = g.Parent.UID
	}
	if !g.Active {
		active := false
		od.Active = &active
	}
	for _, c := range g.Components() {
		cd := ComponentDoc{Type: engine.ComponentName(c)}
		if err := cd.Fields.Encode(c); err != nil {
			return od, fmt.Errorf("component %s: %w", cd.Type, err)
		}
		od.Components = append(od.Components, cd)
	}
	return od, nil
}

// Clone copies g and its children through their document form. The copies
// get fresh UIDs and belong to no scene.
func Clone(g *engine.GameObject) (*engine.GameObject, error) {
	od, err := encodeObject(g)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", g.Name, err)
	}
	od.UID = 0
	od.Parent = 0
	c, err := decodeObject(od)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", g.Name, err)
	}
	for _, child := range g.Children {
		cc, err := Clone(child)
		if err != nil {
			return nil, err
		}
		c.AddChild(cc)
	}
	return c, nil
}
