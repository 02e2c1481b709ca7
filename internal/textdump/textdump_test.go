package textdump

import (
	"image/color"
	"strings"
	"testing"

	"editor3d/internal/gui"
	"editor3d/internal/inspect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(title string) (root, toolbar, content *gui.Layout, header *gui.Foldout) {
	root = gui.NewLayout(gui.Vertical)
	header = gui.NewFoldout(title, true)
	root.Append(header)
	toolbar = root.AddLayout(1, gui.Horizontal)
	content = root.AddLayout(2, gui.Vertical)
	return root, toolbar, content, header
}

func playerTree() (*gui.Layout, *gui.IntField, *gui.Toggle) {
	root, toolbar, content, _ := section("Player")
	toolbar.Append(gui.NewButton("Create", func() {}))
	toolbar.Append(gui.NewLabel("Length 2"))

	health := gui.NewIntField("Health")
	health.SetValue(5)
	alive := gui.NewToggle("Alive")
	alive.SetValue(true)
	pos := gui.NewVectorField("Pos", 3)
	pos.SetValue(mgl32.Vec4{1, 2.5, 3, 9})
	tint := gui.NewColorField("Tint")
	tint.SetValue(color.RGBA{255, 0, 16, 255})
	name := gui.NewTextField("Name")
	name.SetValue("bob")
	target := gui.NewRefField("Target")
	target.Display = "None"
	content.Append(health)
	content.Append(alive)
	content.Append(pos)
	content.Append(tint)
	content.Append(name)
	content.Append(target)

	inner, _, innerContent, _ := section("Stats")
	speed := gui.NewFloatField("Speed")
	speed.SetValue(1.5)
	innerContent.Append(speed)
	content.Append(inner)
	return root, health, alive
}

func TestDump(t *testing.T) {
	root, _, _ := playerTree()

	want := strings.Join([]string{
		"- Player",
		"  [Create]  Length 2",
		"  Health: 5",
		"  Alive: [x]",
		"  Pos: (1, 2.5, 3)",
		"  Tint: #ff0010ff",
		`  Name: "bob"`,
		"  Target: None",
		"  - Stats",
		"    Speed: 1.5",
		"",
	}, "\n")
	assert.Equal(t, want, String(root, Options{}))
}

func TestDumpCollapsed(t *testing.T) {
	root, toolbar, content, header := section("Player")
	content.Append(gui.NewLabel("hidden"))
	toolbar.Append(gui.NewButton("Add", nil))
	header.SetExpanded(false)
	toolbar.SetActive(false)
	content.SetActive(false)

	assert.Equal(t, "+ Player\n", String(root, Options{}))
	assert.Equal(t, "+ Player\n  [Add]\n  hidden\n", String(root, Options{Collapsed: true}))
}

func TestDumpStateMarkers(t *testing.T) {
	root, health, alive := playerTree()
	health.BeginEdit()
	health.Edit(9)
	alive.SetDisabled(true)
	alive.SetActions([]gui.Action{{Label: "Delete"}, {Label: "Move Up"}})

	out := String(root, Options{Actions: true})
	assert.Contains(t, out, "  Health: 9*\n")
	assert.Contains(t, out, "  Alive: [x] (disabled) {Delete, Move Up}\n")
}

func TestDumpColors(t *testing.T) {
	root, _, _ := playerTree()
	out := String(root, Options{Colors: NewColors()})
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, String(root, Options{}), "\x1b[")
}

func TestDiff(t *testing.T) {
	assert.Equal(t, "", Diff("a\nb\n", "a\nb\n", nil))
	assert.Equal(t, "- b\n+ B\n", Diff("a\nb\nc\n", "a\nB\nc\n", nil))
	assert.Equal(t, "+ d\n", Diff("a\n", "a\nd\n", nil))

	colored := Diff("a\n", "b\n", NewColors())
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "- a")
}

type crate struct {
	Mass  float32
	Label string
	Tags  []string
}

func TestDumpInspector(t *testing.T) {
	c := &crate{Mass: 2, Label: "box", Tags: []string{"heavy"}}
	layout := gui.NewLayout(gui.Vertical)
	in, err := inspect.New("Crate", c, layout)
	require.NoError(t, err)
	in.Refresh()

	before := String(layout, Options{})
	assert.Contains(t, before, "- Crate\n")
	assert.Contains(t, before, "  Mass: 2\n")
	assert.Contains(t, before, `  Label: "box"`)
	assert.Contains(t, before, "    Element 0: \"heavy\"\n")

	c.Mass = 3
	require.True(t, in.Refresh())
	assert.Equal(t, "-   Mass: 2\n+   Mass: 3\n", Diff(before, String(layout, Options{}), nil))
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "(1, 2)", FormatVector(mgl32.Vec4{1, 2, 3, 4}, 2))
	assert.Equal(t, "#00000000", FormatColor(color.RGBA{}))
}
