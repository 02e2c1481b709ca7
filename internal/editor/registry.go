package editor

import (
	"fmt"
	"reflect"

	"editor3d/internal/components"
	"editor3d/internal/engine"
	"editor3d/internal/inspect"
)

// newRegistry returns the custom inspectors of the editor. Identifiers and
// runtime counters are shown but cannot be edited.
func newRegistry() *inspect.Registry {
	r := inspect.NewRegistry()
	r.Register(reflect.TypeFor[engine.UID](), inspect.ReadOnly(func(v any) string {
		return fmt.Sprintf("#%d", v)
	}))
	r.Register(reflect.TypeFor[components.SpawnStats](), inspect.ReadOnly(nil))
	return r
}
