package inspect

import (
	"fmt"

	"editor3d/internal/property"
)

// DefaultUndoDepth is the number of edits a History keeps by default.
const DefaultUndoDepth = 50

// Edit is one recorded change of a property value.
type Edit struct {
	Label  string
	Path   string
	prop   property.Property
	before any
	after  any
}

// History is a capped undo/redo stack of property edits. It may be shared by
// several inspectors. A nil History records nothing.
type History struct {
	undo  []Edit
	redo  []Edit
	limit int
}

// NewHistory returns a history keeping at most limit edits.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultUndoDepth
	}
	return &History{limit: limit}
}

// Record pushes an edit and clears the redo stack. before and after must be
// copies that do not alias the live value.
func (h *History) Record(p property.Property, label string, before, after any) {
	if h == nil {
		return
	}
	// Cap stack size
	if len(h.undo) >= h.limit {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, Edit{Label: label, Path: p.Path(), prop: p, before: before, after: after})
	h.redo = nil
}

func (h *History) CanUndo() bool { return h != nil && len(h.undo) > 0 }

func (h *History) CanRedo() bool { return h != nil && len(h.redo) > 0 }

// Len returns the number of edits that can be undone.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.undo)
}

// Clear drops every recorded edit.
func (h *History) Clear() {
	if h == nil {
		return
	}
	h.undo, h.redo = nil, nil
}

// Undo restores the value from before the last edit.
func (h *History) Undo() (Edit, error) {
	if !h.CanUndo() {
		return Edit{}, fmt.Errorf("inspect: nothing to undo")
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if err := apply(e.prop, e.before); err != nil {
		return e, fmt.Errorf("undo %s: %w", e.Label, err)
	}
	h.redo = append(h.redo, e)
	return e, nil
}

// Redo re-applies the last undone edit.
func (h *History) Redo() (Edit, error) {
	if !h.CanRedo() {
		return Edit{}, fmt.Errorf("inspect: nothing to redo")
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if err := apply(e.prop, e.after); err != nil {
		return e, fmt.Errorf("redo %s: %w", e.Label, err)
	}
	h.undo = append(h.undo, e)
	return e, nil
}

func apply(p property.Property, v any) error {
	v, err := property.Copy(v)
	if err != nil {
		return err
	}
	return p.Set(v)
}
