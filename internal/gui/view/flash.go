package view

import (
	"editor3d/internal/gui"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFlashDuration is how long a changed field stays highlighted, in
// seconds.
const DefaultFlashDuration = 0.6

type revisioned interface {
	Revision() uint64
}

// Flash highlights input widgets whose value changed from outside, such as
// an undo, a reload or a running scene. Call Observe for every drawn widget
// and Update once per frame.
type Flash struct {
	Duration float32

	seen   map[gui.Element]uint64
	own    map[gui.Element]bool
	tweens map[gui.Element]*gween.Tween
	alpha  map[gui.Element]float32
}

func NewFlash(duration float32) *Flash {
	return &Flash{
		Duration: duration,
		seen:     make(map[gui.Element]uint64),
		own:      make(map[gui.Element]bool),
		tweens:   make(map[gui.Element]*gween.Tween),
		alpha:    make(map[gui.Element]float32),
	}
}

// Committed tells the tracker that the next change of e comes from the user.
func (f *Flash) Committed(e gui.Element) {
	f.own[e] = true
}

// Observe starts a highlight when the revision of e moved since the last
// call. The first sighting of a widget never flashes, and neither does the
// echo of a value the user committed.
func (f *Flash) Observe(e gui.Element) {
	r, ok := e.(revisioned)
	if !ok {
		return
	}
	rev := r.Revision()
	prev, seen := f.seen[e]
	f.seen[e] = rev
	if !seen || prev == rev {
		return
	}
	if f.own[e] {
		delete(f.own, e)
		return
	}
	f.tweens[e] = gween.New(1, 0, f.Duration, ease.OutQuad)
	f.alpha[e] = 1
}

// Update advances the highlights by dt seconds and forgets destroyed
// widgets.
func (f *Flash) Update(dt float32) {
	for e, t := range f.tweens {
		v, done := t.Update(dt)
		if done || e.Destroyed() {
			delete(f.tweens, e)
			delete(f.alpha, e)
			continue
		}
		f.alpha[e] = v
	}
	for e := range f.seen {
		if e.Destroyed() {
			delete(f.seen, e)
			delete(f.own, e)
		}
	}
}

// Alpha is the highlight strength of e, from 0 to 1.
func (f *Flash) Alpha(e gui.Element) float32 {
	return f.alpha[e]
}

// Active is the number of running highlights.
func (f *Flash) Active() int {
	return len(f.tweens)
}
