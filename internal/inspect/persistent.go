package inspect

import "maps"

// Persistent stores per-path view state that outlives a node, such as
// whether a foldout is expanded.
type Persistent interface {
	Expanded(path string, depth int) bool
	SetExpanded(path string, expanded bool)
}

// MapState is an in-memory Persistent. Paths without a stored value are
// expanded for the first two levels.
type MapState map[string]bool

func (m MapState) Expanded(path string, depth int) bool {
	if v, ok := m[path]; ok {
		return v
	}
	return depth <= 1
}

func (m MapState) SetExpanded(path string, expanded bool) {
	m[path] = expanded
}

// Clone returns a copy of the state.
func (m MapState) Clone() MapState {
	return maps.Clone(m)
}
