package property

import (
	"fmt"
	"math"
	"reflect"

	"github.com/jinzhu/copier"
)

// defaultValue returns the value a freshly created property of typ holds:
// a new instance for struct pointers, empty slices and maps, and the zero
// value otherwise.
func defaultValue(typ reflect.Type) reflect.Value {
	switch typ.Kind() {
	case reflect.Pointer:
		return reflect.New(typ.Elem())
	case reflect.Slice:
		return reflect.MakeSlice(typ, 0, 0)
	case reflect.Map:
		return reflect.MakeMap(typ)
	}
	return reflect.Zero(typ)
}

// Default returns the default value of typ as created by [Nullable.Create].
func Default(typ reflect.Type) any {
	return defaultValue(typ).Interface()
}

// Convert returns x converted to typ under the same rules as [Property.Set].
func Convert(x any, typ reflect.Type) (any, error) {
	v, err := toValue(x, typ)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// toValue converts x to a value assignable to typ. Numbers convert between
// integer and float types as long as the value fits.
func toValue(x any, typ reflect.Type) (reflect.Value, error) {
	if x == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrType, typ)
	}
	xv := reflect.ValueOf(x)
	if xv.Type().AssignableTo(typ) {
		return xv, nil
	}
	if isNumber(xv.Kind()) && isNumber(typ.Kind()) {
		return convertNumber(xv, typ)
	}
	if xv.Kind() == typ.Kind() && xv.Type().ConvertibleTo(typ) {
		return xv.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %T for %s", ErrType, x, typ)
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func convertNumber(xv reflect.Value, typ reflect.Type) (reflect.Value, error) {
	out := reflect.New(typ).Elem()
	var f float64
	switch {
	case isInt(xv.Kind()):
		f = float64(xv.Int())
	case isUint(xv.Kind()):
		f = float64(xv.Uint())
	default:
		f = xv.Float()
	}
	switch {
	case isInt(typ.Kind()):
		var n int64
		switch {
		case isInt(xv.Kind()):
			n = xv.Int()
		case isUint(xv.Kind()):
			if xv.Uint() > math.MaxInt64 {
				return out, fmt.Errorf("%w: %v overflows %s", ErrType, xv, typ)
			}
			n = int64(xv.Uint())
		default:
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return out, fmt.Errorf("%w: %v is not a valid %s", ErrType, f, typ)
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return out, fmt.Errorf("%w: %v overflows %s", ErrType, n, typ)
		}
		out.SetInt(n)
	case isUint(typ.Kind()):
		var n uint64
		switch {
		case isUint(xv.Kind()):
			n = xv.Uint()
		case isInt(xv.Kind()):
			if xv.Int() < 0 {
				return out, fmt.Errorf("%w: %v overflows %s", ErrType, xv, typ)
			}
			n = uint64(xv.Int())
		default:
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return out, fmt.Errorf("%w: %v is not a valid %s", ErrType, f, typ)
			}
			n = uint64(f)
		}
		if out.OverflowUint(n) {
			return out, fmt.Errorf("%w: %v overflows %s", ErrType, n, typ)
		}
		out.SetUint(n)
	default:
		if !math.IsInf(f, 0) && !math.IsNaN(f) && out.OverflowFloat(f) {
			return out, fmt.Errorf("%w: %v overflows %s", ErrType, f, typ)
		}
		out.SetFloat(f)
	}
	return out, nil
}

// Copy returns a deep copy of x. Leaf values are returned as they are.
func Copy(x any) (any, error) {
	if x == nil {
		return nil, nil
	}
	xv := reflect.ValueOf(x)
	t := xv.Type()
	if KindOf(t).IsLeaf() {
		return x, nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if xv.IsNil() {
			return x, nil
		}
	}
	var dst reflect.Value
	if t.Kind() == reflect.Pointer {
		dst = reflect.New(t.Elem())
		if err := copier.CopyWithOption(dst.Interface(), x, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
			return nil, err
		}
		return dst.Interface(), nil
	}
	dst = reflect.New(t)
	if err := copier.CopyWithOption(dst.Interface(), x, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		return nil, err
	}
	return dst.Elem().Interface(), nil
}

// MakeRef builds a reference value of typ pointing at id.
func MakeRef(typ reflect.Type, id uint64) (any, error) {
	p := reflect.New(typ)
	rs, ok := p.Interface().(RefSetter)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be built from an id", ErrType, typ)
	}
	rs.SetRefID(id)
	return p.Elem().Interface(), nil
}
