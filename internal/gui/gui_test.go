package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls += 10 })
	e.AddListener(nil)
	e.Invoke()
	assert.Equal(t, 11, calls)

	e.Reset()
	e.Invoke()
	assert.Equal(t, 11, calls)
}

func TestDestroyDropsListeners(t *testing.T) {
	clicks, commits, toggles := 0, 0, 0
	b := NewButton("Add", func() { clicks++ })
	f := NewIntField("Count")
	f.OnCommit.AddListener(func(int64) { commits++ })
	fold := NewFoldout("Section", true)
	fold.OnToggled.AddListener(func(bool) { toggles++ })

	b.Destroy()
	f.Destroy()
	fold.Destroy()
	b.OnClick.Invoke()
	f.OnCommit.Invoke(1)
	fold.OnToggled.Invoke(false)
	assert.Zero(t, clicks+commits+toggles)
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.Invoke(3)
	e.Invoke(4)
	assert.Equal(t, 7, sum)
}

func TestLayoutInsertClampsAndMoves(t *testing.T) {
	root := NewLayout(Vertical)
	a, b, c := NewLabel("a"), NewLabel("b"), NewLabel("c")
	root.Insert(5, a)
	root.Insert(0, b)
	root.Insert(1, c)
	assert.Equal(t, []Element{b, c, a}, root.Elements())
	assert.Same(t, root, a.Parent())

	other := NewLayout(Vertical)
	other.Append(c)
	assert.Equal(t, 2, root.Len())
	assert.Equal(t, -1, root.IndexOf(c))
	assert.Same(t, other, c.Parent())
}

func TestDestroyDetachesFromParent(t *testing.T) {
	root := NewLayout(Vertical)
	group := root.AddLayout(0, Vertical)
	field := NewIntField("x")
	group.Append(field)
	root.Append(NewLabel("tail"))

	group.Destroy()
	assert.Equal(t, 1, root.Len())
	assert.True(t, group.Destroyed())
	assert.True(t, field.Destroyed())
	assert.Nil(t, field.Parent())

	// second destroy is a no-op
	group.Destroy()
	assert.Equal(t, 1, root.Len())
}

func TestInputEditCommitCancel(t *testing.T) {
	f := NewIntField("Health")
	var begun, cancelled int
	var committed []int64
	f.OnEditBegin.AddListener(func() { begun++ })
	f.OnCommit.AddListener(func(v int64) { committed = append(committed, v) })
	f.OnCancel.AddListener(func() { cancelled++ })

	f.SetValue(5)
	assert.Empty(t, committed)

	f.Edit(6)
	f.Edit(7)
	assert.True(t, f.Editing())
	assert.Equal(t, int64(5), f.Value())
	assert.Equal(t, int64(7), f.Staged())
	f.Commit()
	assert.Equal(t, []int64{7}, committed)
	assert.Equal(t, int64(7), f.Value())

	f.Edit(9)
	f.Cancel()
	assert.Equal(t, int64(7), f.Value())
	assert.Equal(t, 2, begun)
	assert.Equal(t, 1, cancelled)
}

func TestDisabledInputIgnoresEdits(t *testing.T) {
	f := NewTextField("Name")
	f.SetDisabled(true)
	committed := false
	f.OnCommit.AddListener(func(string) { committed = true })
	f.Set("x")
	assert.False(t, committed)
	assert.Equal(t, "", f.Value())
}

func TestButtonAndFoldout(t *testing.T) {
	clicks := 0
	b := NewButton("Go", func() { clicks++ })
	b.Click()
	b.SetDisabled(true)
	b.Click()
	assert.Equal(t, 1, clicks)

	f := NewFoldout("Section", false)
	var states []bool
	f.OnToggled.AddListener(func(v bool) { states = append(states, v) })
	f.SetExpanded(true)
	f.Toggle()
	assert.Equal(t, []bool{false}, states)
}

func TestVisibleAndEnabled(t *testing.T) {
	root := NewLayout(Vertical)
	inner := root.AddLayout(0, Vertical)
	l := NewLabel("x")
	inner.Append(l)
	require.True(t, Visible(l))

	inner.SetActive(false)
	assert.False(t, Visible(l))

	root.SetDisabled(true)
	assert.False(t, Enabled(l))
}

func TestWalkOrder(t *testing.T) {
	root := NewLayout(Vertical)
	root.Append(NewLabel("a"))
	g := root.AddLayout(1, Horizontal)
	g.Append(NewLabel("b"))
	root.Append(NewLabel("c"))

	var seen []string
	Walk(root, func(e Element, depth int) bool {
		if l, ok := e.(*Label); ok {
			seen = append(seen, l.Text)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}
