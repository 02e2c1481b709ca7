package view

import (
	"image/color"
	"testing"

	"editor3d/internal/gui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(title string) (root, toolbar, content *gui.Layout) {
	root = gui.NewLayout(gui.Vertical)
	root.Append(gui.NewFoldout(title, true))
	toolbar = gui.NewLayout(gui.Horizontal)
	root.Append(toolbar)
	content = gui.NewLayout(gui.Vertical)
	root.Append(content)
	return root, toolbar, content
}

func TestRows(t *testing.T) {
	root, toolbar, content := group("Rigidbody")
	add := gui.NewButton("Add", func() {})
	note := gui.NewLabel("Length 2")
	toolbar.Append(add)
	toolbar.Append(note)
	mass := gui.NewFloatField("Mass")
	content.Append(mass)
	inner, _, innerContent := group("Velocity")
	content.Append(inner)
	x := gui.NewLabel("x")
	innerContent.Append(x)

	rows := Rows(root)
	require.Len(t, rows, 5)
	assert.Equal(t, 0, rows[0].Indent)
	assert.Equal(t, []gui.Element{add, note}, rows[1].Elements)
	assert.Equal(t, 1, rows[1].Indent)
	assert.Equal(t, []gui.Element{mass}, rows[2].Elements)
	assert.Equal(t, 1, rows[2].Indent)
	assert.Equal(t, 1, rows[3].Indent, "nested header")
	assert.Equal(t, []gui.Element{x}, rows[4].Elements)
	assert.Equal(t, 2, rows[4].Indent)

	innerContent.SetActive(false)
	assert.Len(t, Rows(root), 4)
	root.SetActive(false)
	assert.Empty(t, Rows(root))
}

func TestRowGeometry(t *testing.T) {
	rows := make([]Row, 10)
	assert.Equal(t, int32(220), Height(rows, 22))

	assert.Equal(t, int32(0), ClampScroll(-5, 220, 100))
	assert.Equal(t, int32(50), ClampScroll(50, 220, 100))
	assert.Equal(t, int32(120), ClampScroll(500, 220, 100))
	assert.Equal(t, int32(0), ClampScroll(30, 80, 100), "content fits")

	spans := Split(10, 100, 3, 5)
	assert.Equal(t, []Span{{10, 30}, {45, 30}, {80, 30}}, spans)
	assert.Nil(t, Split(0, 100, 0, 5))
}

func TestFlash(t *testing.T) {
	f := NewFlash(1)
	fld := gui.NewFloatField("Mass")

	f.Observe(fld)
	assert.Zero(t, f.Alpha(fld), "first sighting")

	fld.SetValue(2)
	f.Observe(fld)
	assert.Equal(t, float32(1), f.Alpha(fld))
	assert.Equal(t, 1, f.Active())

	f.Observe(fld)
	f.Update(0.5)
	a := f.Alpha(fld)
	assert.Greater(t, a, float32(0))
	assert.Less(t, a, float32(1))

	f.Update(0.6)
	assert.Zero(t, f.Alpha(fld))
	assert.Zero(t, f.Active())
}

func TestFlashSkipsOwnCommits(t *testing.T) {
	f := NewFlash(1)
	fld := gui.NewFloatField("Mass")
	f.Observe(fld)

	f.Committed(fld)
	fld.SetValue(3)
	f.Observe(fld)
	assert.Zero(t, f.Active())

	fld.SetValue(4)
	f.Observe(fld)
	assert.Equal(t, 1, f.Active())
}

func TestFlashForgetsDestroyed(t *testing.T) {
	f := NewFlash(1)
	fld := gui.NewFloatField("Mass")
	f.Observe(fld)
	fld.SetValue(1)
	f.Observe(fld)
	require.Equal(t, 1, f.Active())

	fld.Destroy()
	f.Update(0.1)
	assert.Zero(t, f.Active())
	assert.Zero(t, f.Alpha(fld))

	label := gui.NewLabel("static")
	f.Observe(label)
	assert.Zero(t, f.Active())
}

func TestTextEdit(t *testing.T) {
	var te TextEdit
	fld := gui.NewVectorField("Position", 3)
	assert.False(t, te.Active())

	te.Start(fld, 1, "2", Numeric)
	assert.True(t, te.On(fld, 1))
	assert.False(t, te.On(fld, 0))

	for _, r := range "x.5\b" {
		te.Type(r)
	}
	assert.Equal(t, "2.5", te.Text)
	te.Backspace()
	assert.Equal(t, "2.", te.Text)

	assert.Equal(t, "2.", te.Stop())
	assert.False(t, te.Active())
	te.Backspace()
	assert.Empty(t, te.Text)
}

func TestScrub(t *testing.T) {
	assert.InDelta(t, 2.0, Scrub(1, 10, 0.1, false), 1e-9)
	assert.InDelta(t, 1.1, Scrub(1, 10, 0.1, true), 1e-9)
	assert.True(t, IsClick(1.5))
	assert.False(t, IsClick(-2))
}

func TestParse(t *testing.T) {
	assert.Equal(t, "2.5", FormatFloat(2.5))
	assert.Equal(t, "0.333", FormatFloat(1.0/3))
	assert.Equal(t, "-1", FormatFloat(-1))

	f, err := ParseFloat(" 1.25 ")
	require.NoError(t, err)
	assert.Equal(t, 1.25, f)
	_, err = ParseFloat("abc")
	assert.Error(t, err)

	i, err := ParseInt("7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)
	i, err = ParseInt("2.6")
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	id, err := ParseRef("#12")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
	id, err = ParseRef("")
	require.NoError(t, err)
	assert.Zero(t, id)
	_, err = ParseRef("-1")
	assert.Error(t, err)

	c, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 128}, c)
	c, err = ParseColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c)
	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("#gg0000")
	assert.Error(t, err)
}
