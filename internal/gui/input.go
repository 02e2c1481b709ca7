package gui

// Input is the shared core of the editable widgets. A user edit goes through
// BeginEdit, any number of Edit calls on a staged value, then Commit or
// Cancel. SetValue changes the displayed value without firing events.
type Input[T any] struct {
	base
	Label string

	value    T
	staged   T
	editing  bool
	revision uint64

	OnEditBegin Event
	OnCommit    EventWithArg[T]
	OnCancel    Event
}

// Value returns the committed value.
func (in *Input[T]) Value() T { return in.value }

// Staged returns the value being edited, or the committed value when idle.
func (in *Input[T]) Staged() T {
	if in.editing {
		return in.staged
	}
	return in.value
}

// SetValue replaces the displayed value.
func (in *Input[T]) SetValue(v T) {
	in.value = v
	in.revision++
}

// Revision increases every time SetValue is called.
func (in *Input[T]) Revision() uint64 { return in.revision }

func (in *Input[T]) Editing() bool { return in.editing }

// BeginEdit starts an edit session. Disabled widgets ignore it.
func (in *Input[T]) BeginEdit() {
	if in.editing || in.disabled || in.destroyed {
		return
	}
	in.editing = true
	in.staged = in.value
	in.OnEditBegin.Invoke()
}

// Edit stages v, starting an edit session if needed.
func (in *Input[T]) Edit(v T) {
	in.BeginEdit()
	if !in.editing {
		return
	}
	in.staged = v
}

// Commit ends the edit session and publishes the staged value.
func (in *Input[T]) Commit() {
	if !in.editing {
		return
	}
	in.editing = false
	in.value = in.staged
	in.OnCommit.Invoke(in.value)
}

// Cancel ends the edit session and drops the staged value.
func (in *Input[T]) Cancel() {
	if !in.editing {
		return
	}
	in.editing = false
	in.OnCancel.Invoke()
}

// Set edits and commits v in one step.
func (in *Input[T]) Set(v T) {
	in.Edit(v)
	in.Commit()
}

// Destroy cancels a pending edit and drops all listeners.
func (in *Input[T]) Destroy() {
	if in.editing {
		in.Cancel()
	}
	in.OnEditBegin.Reset()
	in.OnCommit.Reset()
	in.OnCancel.Reset()
	in.base.Destroy()
}
