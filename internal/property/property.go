// Package property provides live accessors over a reflected object graph.
//
// An accessor never caches the value it points at: every Get resolves the
// path from the root object again, so callers always observe the current
// state of the backing object. Composite accessors (objects, arrays, lists,
// dictionaries) hand out child accessors for their fields, elements and
// entries.
package property

import (
	"errors"
	"reflect"
)

var (
	// ErrStale is returned when the backing object has been destroyed.
	ErrStale = errors.New("property: backing object is no longer alive")
	// ErrNull is returned when a nullable value on the path is nil.
	ErrNull = errors.New("property: value is null")
	// ErrKind is returned when an operation does not apply to the property kind.
	ErrKind = errors.New("property: operation not supported for kind")
	// ErrType is returned when a value cannot be assigned to the property type.
	ErrType = errors.New("property: value has the wrong type")
	// ErrIndex is returned for element indexes outside the sequence.
	ErrIndex = errors.New("property: index out of range")
	// ErrFixedSize is returned when resizing a fixed length array.
	ErrFixedSize = errors.New("property: array has a fixed size")
	// ErrKeyExists is returned when adding or renaming onto an existing key.
	ErrKeyExists = errors.New("property: key already exists")
	// ErrNoKey is returned when a dictionary key is missing.
	ErrNoKey = errors.New("property: key not found")
)

// MaxLen is the largest size Resize accepts for a list.
const MaxLen = 1 << 20

// Property is a get/set accessor over one value of the object graph.
type Property interface {
	// Name is the display name of the property.
	Name() string
	// Path is the full path from the root object, used as a stable identity.
	Path() string
	Kind() Kind
	// Type is the declared Go type of the value.
	Type() reflect.Type
	Get() (any, error)
	Set(v any) error
}

// Nullable is implemented by properties whose value may be nil
// (pointers to structs, slices and maps).
type Nullable interface {
	Property
	IsNull() (bool, error)
	// Create assigns a new default instance of the declared type.
	Create() error
	// Clear assigns nil.
	Clear() error
}

// Struct is implemented by struct properties.
type Struct interface {
	Nullable
	Fields() ([]Property, error)
	// Identity is the address of the referenced struct for pointer properties
	// and zero otherwise.
	Identity() (uintptr, error)
}

// Sequence is implemented by array and list properties.
type Sequence interface {
	Nullable
	Len() (int, error)
	Elem(i int) (Property, error)
	// Fixed reports whether the sequence length cannot change.
	Fixed() bool
	Resize(n int) error
	Insert(i int, v any) error
	Delete(i int) error
	Move(from, to int) error
	// CloneElem returns a deep copy of the element at i.
	CloneElem(i int) (any, error)
}

// Map is implemented by dictionary properties.
type Map interface {
	Nullable
	Len() (int, error)
	// Keys returns the keys in the map's native (unordered) iteration order.
	Keys() ([]any, error)
	Entry(key any) (Property, error)
	Contains(key any) (bool, error)
	AddEntry(key, value any) error
	RemoveEntry(key any) error
	RenameEntry(oldKey, newKey any) error
	// NewKey returns a detached accessor over a default key.
	NewKey() Property
	// NewValue returns a detached accessor over a default value.
	NewValue() Property
}
