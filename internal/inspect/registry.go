package inspect

import (
	"fmt"
	"reflect"
)

// Registry maps Go types to custom inspector factories.
type Registry struct {
	factories map[reflect.Type]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[reflect.Type]Factory{}}
}

// DefaultRegistry is used by trees created without WithRegistry.
var DefaultRegistry = NewRegistry()

// Register installs a factory for typ. Registering the same type twice panics.
func (r *Registry) Register(typ reflect.Type, f Factory) {
	if typ == nil || f == nil {
		panic("inspect: Register needs a type and a factory")
	}
	if _, exists := r.factories[typ]; exists {
		panic(fmt.Sprintf("inspect: inspector for %v already registered", typ))
	}
	r.factories[typ] = f
}

// Lookup returns the factory registered for typ.
func (r *Registry) Lookup(typ reflect.Type) (Factory, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.factories[typ]
	return f, ok
}

// Register installs f for T in the default registry.
func Register[T any](f Factory) {
	DefaultRegistry.Register(reflect.TypeFor[T](), f)
}
