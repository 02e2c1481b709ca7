package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ErrUnknownComponent is returned by NewComponent for unregistered names.
var ErrUnknownComponent = errors.New("unknown component")

// ComponentFactory returns a new component with its default values.
type ComponentFactory func() Component

var (
	componentFactories = map[string]ComponentFactory{}
	componentNames     = map[reflect.Type]string{}
)

// RegisterComponent makes a component type available by name to scene files
// and the editor's Add Component menu. Registering a name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentFactories[name]; exists {
		panic("component already registered: " + name)
	}
	componentFactories[name] = factory
	componentNames[reflect.TypeOf(factory())] = name
}

// NewComponent creates a registered component by name.
func NewComponent(name string) (Component, error) {
	factory, ok := componentFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return factory(), nil
}

// ComponentNames returns the registered names in sorted order.
func ComponentNames() []string {
	names := make([]string, 0, len(componentFactories))
	for name := range componentFactories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ComponentName returns the name c was registered under, or its Go type name
// when the type is not registered.
func ComponentName(c Component) string {
	t := reflect.TypeOf(c)
	if name, ok := componentNames[t]; ok {
		return name
	}
	s := t.String()
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}
