package gui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Label is static text.
type Label struct {
	base
	Text string
}

func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.self = l
	return l
}

// Button fires OnClick when clicked.
type Button struct {
	base
	Text    string
	OnClick Event
}

func NewButton(text string, onClick func()) *Button {
	b := &Button{Text: text}
	b.self = b
	b.OnClick.AddListener(onClick)
	return b
}

// Click fires OnClick unless the button is disabled.
func (b *Button) Click() {
	if b.disabled || b.destroyed {
		return
	}
	b.OnClick.Invoke()
}

func (b *Button) Destroy() {
	b.OnClick.Reset()
	b.base.Destroy()
}

// Foldout is a collapsible section header.
type Foldout struct {
	base
	Text      string
	expanded  bool
	OnToggled EventWithArg[bool]
}

func NewFoldout(text string, expanded bool) *Foldout {
	f := &Foldout{Text: text, expanded: expanded}
	f.self = f
	return f
}

func (f *Foldout) Destroy() {
	f.OnToggled.Reset()
	f.base.Destroy()
}

func (f *Foldout) Expanded() bool { return f.expanded }

// SetExpanded changes the state without firing OnToggled.
func (f *Foldout) SetExpanded(expanded bool) { f.expanded = expanded }

// Toggle flips the state and fires OnToggled.
func (f *Foldout) Toggle() {
	f.expanded = !f.expanded
	f.OnToggled.Invoke(f.expanded)
}

// IntField edits an integer.
type IntField struct {
	Input[int64]
}

func NewIntField(label string) *IntField {
	f := &IntField{}
	f.Label = label
	f.self = f
	return f
}

// FloatField edits a floating point number.
type FloatField struct {
	Input[float64]
	// Step is the value change per pixel when dragging.
	Step float64
}

func NewFloatField(label string) *FloatField {
	f := &FloatField{Step: 0.1}
	f.Label = label
	f.self = f
	return f
}

// Toggle edits a boolean.
type Toggle struct {
	Input[bool]
}

func NewToggle(label string) *Toggle {
	t := &Toggle{}
	t.Label = label
	t.self = t
	return t
}

// TextField edits a string.
type TextField struct {
	Input[string]
}

func NewTextField(label string) *TextField {
	f := &TextField{}
	f.Label = label
	f.self = f
	return f
}

// ColorField edits an RGBA color.
type ColorField struct {
	Input[color.RGBA]
}

func NewColorField(label string) *ColorField {
	f := &ColorField{}
	f.Label = label
	f.self = f
	return f
}

// VectorField edits the first N components of a Vec4.
type VectorField struct {
	Input[mgl32.Vec4]
	N int
}

func NewVectorField(label string, n int) *VectorField {
	f := &VectorField{N: max(2, min(n, 4))}
	f.Label = label
	f.self = f
	return f
}

// RefField edits a reference to another object by id. Display is the text
// shown for the current target.
type RefField struct {
	Input[uint64]
	Display string
}

func NewRefField(label string) *RefField {
	f := &RefField{}
	f.Label = label
	f.self = f
	return f
}
