package property

import (
	"image/color"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind is the type-tag of a reflected property.
type Kind int

const (
	Invalid Kind = iota
	Int
	Float
	Bool
	String
	Color
	Vector2
	Vector3
	Vector4
	ObjectRef
	Object
	Array
	List
	Dictionary
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	Int:        "Int",
	Float:      "Float",
	Bool:       "Bool",
	String:     "String",
	Color:      "Color",
	Vector2:    "Vector2",
	Vector3:    "Vector3",
	Vector4:    "Vector4",
	ObjectRef:  "ObjectRef",
	Object:     "Object",
	Array:      "Array",
	List:       "List",
	Dictionary: "Dictionary",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// IsLeaf reports whether properties of this kind are displayed by a single widget.
func (k Kind) IsLeaf() bool {
	switch k {
	case Int, Float, Bool, String, Color, Vector2, Vector3, Vector4, ObjectRef:
		return true
	}
	return false
}

// Referencer is implemented by value types that refer to another object by id.
// Such types are reported as ObjectRef.
type Referencer interface {
	RefID() uint64
}

// RefSetter is implemented by pointers to Referencer types so that a reference
// can be rebuilt from an id.
type RefSetter interface {
	SetRefID(id uint64)
}

var (
	colorType      = reflect.TypeFor[color.RGBA]()
	vec2Type       = reflect.TypeFor[mgl32.Vec2]()
	vec3Type       = reflect.TypeFor[mgl32.Vec3]()
	vec4Type       = reflect.TypeFor[mgl32.Vec4]()
	referencerType = reflect.TypeFor[Referencer]()
)

// KindOf maps a Go type to its property kind. Containers whose element type
// refers back to the container itself, such as type L []L, are Invalid.
func KindOf(t reflect.Type) Kind {
	return kindOf(t, nil)
}

func kindOf(t reflect.Type, seen map[reflect.Type]bool) Kind {
	if t == nil || seen[t] {
		return Invalid
	}
	switch t {
	case colorType:
		return Color
	case vec2Type:
		return Vector2
	case vec3Type:
		return Vector3
	case vec4Type:
		return Vector4
	}
	if t.Kind() != reflect.Pointer && t.Implements(referencerType) {
		return ObjectRef
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Struct:
		return Object
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct && kindOf(t.Elem(), seen) == Object {
			return Object
		}
	case reflect.Array, reflect.Slice, reflect.Map:
		if seen == nil {
			seen = map[reflect.Type]bool{}
		}
		seen[t] = true
		defer delete(seen, t)
		if kindOf(t.Elem(), seen) == Invalid {
			return Invalid
		}
		switch t.Kind() {
		case reflect.Array:
			return Array
		case reflect.Slice:
			return List
		}
		switch kindOf(t.Key(), seen) {
		case Int, Float, Bool, String, ObjectRef:
			return Dictionary
		}
	}
	return Invalid
}
