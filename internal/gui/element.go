// Package gui is a small retained widget toolkit. The inspector builds and
// mutates a tree of layouts and widgets; renderers (see rlgui and textdump)
// walk the tree every frame and feed user input back into the widgets.
package gui

// Element is anything that can live inside a [Layout].
type Element interface {
	// Parent is the layout holding the element, or nil once removed.
	Parent() *Layout
	// Destroy removes the element from its parent. It is safe to call twice.
	Destroy()
	Destroyed() bool
	Disabled() bool
	SetDisabled(disabled bool)
	// Actions are the context menu entries of the element.
	Actions() []Action
	SetActions(actions []Action)

	elem() *base
}

// Action is a context menu entry.
type Action struct {
	Label string
	Do    func()
}

type base struct {
	self      Element
	parent    *Layout
	disabled  bool
	destroyed bool
	actions   []Action
}

func (b *base) elem() *base { return b }

func (b *base) Parent() *Layout { return b.parent }

func (b *base) Destroyed() bool { return b.destroyed }

func (b *base) Disabled() bool { return b.disabled }

func (b *base) SetDisabled(disabled bool) { b.disabled = disabled }

func (b *base) Actions() []Action { return b.actions }

func (b *base) SetActions(actions []Action) { b.actions = actions }

// AddAction appends a context menu entry.
func (b *base) AddAction(label string, do func()) {
	b.actions = append(b.actions, Action{Label: label, Do: do})
}

func (b *base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.parent != nil {
		b.parent.Remove(b.self)
	}
}

// Enabled reports whether e and every layout above it are enabled.
func Enabled(e Element) bool {
	for ; e != nil; e = parentElement(e) {
		if e.Disabled() {
			return false
		}
	}
	return true
}

// Visible reports whether every layout above e is active.
func Visible(e Element) bool {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if !p.Active() {
			return false
		}
	}
	return true
}

func parentElement(e Element) Element {
	if p := e.Parent(); p != nil {
		return p
	}
	return nil
}
