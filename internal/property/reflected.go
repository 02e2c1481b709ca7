package property

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/core/base/reflectx"
)

// Option configures a root accessor created by [Of].
type Option func(*options)

type options struct {
	alive func() bool
}

// WithLiveness makes every accessor under the root report [ErrStale] once
// alive returns false.
func WithLiveness(alive func() bool) Option {
	return func(o *options) {
		o.alive = alive
	}
}

// Value is a reflect-backed accessor. It implements [Object], [Sequence]
// and [Map]; operations that do not apply to its kind return [ErrKind].
type Value struct {
	name string
	path string
	typ  reflect.Type
	kind Kind
	opts *options

	get func() (reflect.Value, error)
	set func(reflect.Value) error
}

var _ interface {
	Struct
	Sequence
	Map
} = (*Value)(nil)

// Of returns an accessor over the struct pointed to by ptr.
func Of(ptr any, opts ...Option) (*Value, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: Of needs a non-nil pointer, got %T", ErrType, ptr)
	}
	if KindOf(rv.Type()) != Object {
		return nil, fmt.Errorf("%w: Of needs a pointer to a struct, got %T", ErrType, ptr)
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	name := rv.Type().Elem().Name()
	v := &Value{name: name, path: name, typ: rv.Type(), kind: Object, opts: o}
	v.get = func() (reflect.Value, error) {
		return rv, nil
	}
	v.set = func(nv reflect.Value) error {
		if nv.IsNil() {
			return fmt.Errorf("%w: cannot clear the root object", ErrKind)
		}
		rv.Elem().Set(nv.Elem())
		return nil
	}
	return v, nil
}

// New returns a detached accessor over a fresh default value of typ.
func New(typ reflect.Type, name string) *Value {
	holder := reflect.New(typ).Elem()
	holder.Set(defaultValue(typ))
	v := &Value{name: name, path: name, typ: typ, kind: KindOf(typ), opts: &options{}}
	v.get = func() (reflect.Value, error) {
		return holder, nil
	}
	v.set = func(nv reflect.Value) error {
		holder.Set(nv)
		return nil
	}
	return v
}

func (v *Value) Name() string       { return v.name }
func (v *Value) Path() string       { return v.path }
func (v *Value) Kind() Kind         { return v.kind }
func (v *Value) Type() reflect.Type { return v.typ }

func (v *Value) String() string {
	return v.kind.String() + " " + v.path
}

func (v *Value) resolve() (reflect.Value, error) {
	if v.opts.alive != nil && !v.opts.alive() {
		return reflect.Value{}, ErrStale
	}
	return v.get()
}

// Get returns the current value.
func (v *Value) Get() (any, error) {
	rv, err := v.resolve()
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}

// Set assigns x, converting between numeric types when needed.
func (v *Value) Set(x any) error {
	if v.opts.alive != nil && !v.opts.alive() {
		return ErrStale
	}
	nv, err := toValue(x, v.typ)
	if err != nil {
		return fmt.Errorf("%s: %w", v.path, err)
	}
	return v.set(nv)
}

func (v *Value) nullable() bool {
	switch v.typ.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return true
	}
	return false
}

// IsNull reports whether the value is a nil pointer, slice or map.
func (v *Value) IsNull() (bool, error) {
	rv, err := v.resolve()
	if err != nil {
		return false, err
	}
	if v.nullable() {
		return rv.IsNil(), nil
	}
	return false, nil
}

// Create assigns a new default instance.
func (v *Value) Create() error {
	if !v.nullable() {
		return fmt.Errorf("%w: create on %s", ErrKind, v)
	}
	if _, err := v.resolve(); err != nil {
		return err
	}
	return v.set(defaultValue(v.typ))
}

// Clear assigns nil.
func (v *Value) Clear() error {
	if !v.nullable() {
		return fmt.Errorf("%w: clear on %s", ErrKind, v)
	}
	if _, err := v.resolve(); err != nil {
		return err
	}
	return v.set(reflect.Zero(v.typ))
}

// composite resolves the value and dereferences pointers, failing with
// ErrNull on nil.
func (v *Value) composite() (reflect.Value, error) {
	rv, err := v.resolve()
	if err != nil {
		return rv, err
	}
	if v.nullable() && rv.IsNil() {
		return rv, fmt.Errorf("%s: %w", v.path, ErrNull)
	}
	return reflectx.NonPointerValue(rv), nil
}

// Identity returns the address of the referenced struct for pointer properties.
func (v *Value) Identity() (uintptr, error) {
	if v.kind != Object {
		return 0, fmt.Errorf("%w: identity on %s", ErrKind, v)
	}
	rv, err := v.resolve()
	if err != nil {
		return 0, err
	}
	if rv.Kind() == reflect.Pointer {
		return rv.Pointer(), nil
	}
	return 0, nil
}

// Fields returns accessors for the exported, inspectable fields of a struct.
// Fields tagged `inspect:"-"` are skipped; `inspect:"Title"` renames them.
func (v *Value) Fields() ([]Property, error) {
	if v.kind != Object {
		return nil, fmt.Errorf("%w: fields on %s", ErrKind, v)
	}
	if _, err := v.composite(); err != nil {
		return nil, err
	}
	st := reflectx.NonPointerType(v.typ)
	var fields []Property
	for _, sf := range reflect.VisibleFields(st) {
		if sf.Anonymous || !sf.IsExported() || throughPointer(st, sf.Index) {
			continue
		}
		tag := sf.Tag.Get("inspect")
		if tag == "-" || KindOf(sf.Type) == Invalid {
			continue
		}
		title := sf.Name
		if tag != "" {
			title = tag
		}
		fields = append(fields, v.field(title, sf))
	}
	return fields, nil
}

// throughPointer reports whether a promoted field is reached through an
// embedded pointer, which could be nil.
func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Pointer {
			return true
		}
	}
	return false
}

func (v *Value) field(title string, sf reflect.StructField) *Value {
	idx := sf.Index
	c := &Value{
		name: title,
		path: v.path + "." + sf.Name,
		typ:  sf.Type,
		kind: KindOf(sf.Type),
		opts: v.opts,
	}
	c.get = func() (reflect.Value, error) {
		sv, err := v.composite()
		if err != nil {
			return sv, err
		}
		return sv.FieldByIndex(idx), nil
	}
	c.set = func(nv reflect.Value) error {
		sv, err := v.composite()
		if err != nil {
			return err
		}
		if f := sv.FieldByIndex(idx); f.CanSet() {
			f.Set(nv)
			return nil
		}
		cp := reflect.New(sv.Type()).Elem()
		cp.Set(sv)
		cp.FieldByIndex(idx).Set(nv)
		return v.set(cp)
	}
	return c
}

func (v *Value) sequence() (reflect.Value, error) {
	if v.kind != Array && v.kind != List {
		return reflect.Value{}, fmt.Errorf("%w: sequence operation on %s", ErrKind, v)
	}
	return v.composite()
}

// Len returns the element or entry count; null values have length zero.
func (v *Value) Len() (int, error) {
	if v.kind != Array && v.kind != List && v.kind != Dictionary {
		return 0, fmt.Errorf("%w: len on %s", ErrKind, v)
	}
	rv, err := v.resolve()
	if err != nil {
		return 0, err
	}
	return rv.Len(), nil
}

// Fixed reports whether the value is a Go array.
func (v *Value) Fixed() bool {
	return v.kind == Array
}

// Elem returns an accessor for element i.
func (v *Value) Elem(i int) (Property, error) {
	sv, err := v.sequence()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= sv.Len() {
		return nil, fmt.Errorf("%w: %d of %d in %s", ErrIndex, i, sv.Len(), v.path)
	}
	et := v.typ.Elem()
	c := &Value{
		name: fmt.Sprintf("[%d]", i),
		path: fmt.Sprintf("%s[%d]", v.path, i),
		typ:  et,
		kind: KindOf(et),
		opts: v.opts,
	}
	c.get = func() (reflect.Value, error) {
		sv, err := v.sequence()
		if err != nil {
			return sv, err
		}
		if i >= sv.Len() {
			return reflect.Value{}, fmt.Errorf("%w: %d of %d in %s", ErrIndex, i, sv.Len(), v.path)
		}
		return sv.Index(i), nil
	}
	c.set = func(nv reflect.Value) error {
		sv, err := v.sequence()
		if err != nil {
			return err
		}
		if i >= sv.Len() {
			return fmt.Errorf("%w: %d of %d in %s", ErrIndex, i, sv.Len(), v.path)
		}
		if e := sv.Index(i); e.CanSet() {
			e.Set(nv)
			return nil
		}
		cp := reflect.New(sv.Type()).Elem()
		cp.Set(sv)
		cp.Index(i).Set(nv)
		return v.set(cp)
	}
	return c, nil
}

// Resize changes the length of a list, filling new slots with default values.
func (v *Value) Resize(n int) error {
	sv, err := v.sequence()
	if err != nil {
		return err
	}
	if v.Fixed() {
		if n == sv.Len() {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrFixedSize, v.path)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIndex, n)
	}
	if n > MaxLen {
		return fmt.Errorf("%w: size %d above %d", ErrIndex, n, MaxLen)
	}
	ns := reflect.MakeSlice(v.typ, n, n)
	reflect.Copy(ns, sv)
	for i := sv.Len(); i < n; i++ {
		ns.Index(i).Set(defaultValue(v.typ.Elem()))
	}
	return v.set(ns)
}

// Insert inserts x before index i of a list.
func (v *Value) Insert(i int, x any) error {
	sv, err := v.sequence()
	if err != nil {
		return err
	}
	if v.Fixed() {
		return fmt.Errorf("%w: %s", ErrFixedSize, v.path)
	}
	if i < 0 || i > sv.Len() {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndex, i, sv.Len())
	}
	ev, err := toValue(x, v.typ.Elem())
	if err != nil {
		return err
	}
	ns := reflect.MakeSlice(v.typ, 0, sv.Len()+1)
	ns = reflect.AppendSlice(ns, sv.Slice(0, i))
	ns = reflect.Append(ns, ev)
	ns = reflect.AppendSlice(ns, sv.Slice(i, sv.Len()))
	return v.set(ns)
}

// Delete removes element i of a list.
func (v *Value) Delete(i int) error {
	sv, err := v.sequence()
	if err != nil {
		return err
	}
	if v.Fixed() {
		return fmt.Errorf("%w: %s", ErrFixedSize, v.path)
	}
	if i < 0 || i >= sv.Len() {
		return fmt.Errorf("%w: delete %d of %d", ErrIndex, i, sv.Len())
	}
	ns := reflect.MakeSlice(v.typ, 0, sv.Len()-1)
	ns = reflect.AppendSlice(ns, sv.Slice(0, i))
	ns = reflect.AppendSlice(ns, sv.Slice(i+1, sv.Len()))
	return v.set(ns)
}

// Move moves the element at from so that it ends up at index to.
func (v *Value) Move(from, to int) error {
	sv, err := v.sequence()
	if err != nil {
		return err
	}
	n := sv.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d of %d", ErrIndex, from, to, n)
	}
	if from == to {
		return nil
	}
	cp := reflect.New(v.typ).Elem()
	if v.Fixed() {
		cp.Set(sv)
	} else {
		cp.Set(reflect.MakeSlice(v.typ, n, n))
		reflect.Copy(cp, sv)
	}
	moved := reflect.New(v.typ.Elem()).Elem()
	moved.Set(cp.Index(from))
	step := 1
	if to < from {
		step = -1
	}
	for i := from; i != to; i += step {
		cp.Index(i).Set(cp.Index(i + step))
	}
	cp.Index(to).Set(moved)
	return v.set(cp)
}

// CloneElem returns a deep copy of element i.
func (v *Value) CloneElem(i int) (any, error) {
	sv, err := v.sequence()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= sv.Len() {
		return nil, fmt.Errorf("%w: clone %d of %d", ErrIndex, i, sv.Len())
	}
	return Copy(sv.Index(i).Interface())
}

func (v *Value) mapValue() (reflect.Value, error) {
	if v.kind != Dictionary {
		return reflect.Value{}, fmt.Errorf("%w: dictionary operation on %s", ErrKind, v)
	}
	return v.composite()
}

func (v *Value) key(k any) (reflect.Value, error) {
	return toValue(k, v.typ.Key())
}

// Keys returns the map keys in native iteration order.
func (v *Value) Keys() ([]any, error) {
	mv, err := v.mapValue()
	if err != nil {
		return nil, err
	}
	keys := make([]any, 0, mv.Len())
	for _, k := range mv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	return keys, nil
}

// Contains reports whether the key is present.
func (v *Value) Contains(k any) (bool, error) {
	mv, err := v.mapValue()
	if err != nil {
		return false, err
	}
	kv, err := v.key(k)
	if err != nil {
		return false, err
	}
	return mv.MapIndex(kv).IsValid(), nil
}

// Entry returns an accessor for the value stored under key.
func (v *Value) Entry(k any) (Property, error) {
	if _, err := v.mapValue(); err != nil {
		return nil, err
	}
	kv, err := v.key(k)
	if err != nil {
		return nil, err
	}
	et := v.typ.Elem()
	label := fmt.Sprint(k)
	c := &Value{
		name: label,
		path: v.path + "[" + strings.ReplaceAll(label, "]", `\]`) + "]",
		typ:  et,
		kind: KindOf(et),
		opts: v.opts,
	}
	c.get = func() (reflect.Value, error) {
		mv, err := v.mapValue()
		if err != nil {
			return mv, err
		}
		ev := mv.MapIndex(kv)
		if !ev.IsValid() {
			return ev, fmt.Errorf("%w: %v in %s", ErrNoKey, k, v.path)
		}
		return ev, nil
	}
	c.set = func(nv reflect.Value) error {
		mv, err := v.mapValue()
		if err != nil {
			return err
		}
		if !mv.MapIndex(kv).IsValid() {
			return fmt.Errorf("%w: %v in %s", ErrNoKey, k, v.path)
		}
		mv.SetMapIndex(kv, nv)
		return nil
	}
	return c, nil
}

// AddEntry stores value under a new key.
func (v *Value) AddEntry(k, x any) error {
	mv, err := v.mapValue()
	if err != nil {
		return err
	}
	kv, err := v.key(k)
	if err != nil {
		return err
	}
	if mv.MapIndex(kv).IsValid() {
		return fmt.Errorf("%w: %v in %s", ErrKeyExists, k, v.path)
	}
	ev, err := toValue(x, v.typ.Elem())
	if err != nil {
		return err
	}
	mv.SetMapIndex(kv, ev)
	return nil
}

// RemoveEntry deletes key.
func (v *Value) RemoveEntry(k any) error {
	mv, err := v.mapValue()
	if err != nil {
		return err
	}
	kv, err := v.key(k)
	if err != nil {
		return err
	}
	if !mv.MapIndex(kv).IsValid() {
		return fmt.Errorf("%w: %v in %s", ErrNoKey, k, v.path)
	}
	mv.SetMapIndex(kv, reflect.Value{})
	return nil
}

// RenameEntry moves the value stored under oldKey to newKey.
func (v *Value) RenameEntry(oldKey, newKey any) error {
	mv, err := v.mapValue()
	if err != nil {
		return err
	}
	ok, err := v.key(oldKey)
	if err != nil {
		return err
	}
	nk, err := v.key(newKey)
	if err != nil {
		return err
	}
	ev := mv.MapIndex(ok)
	if !ev.IsValid() {
		return fmt.Errorf("%w: %v in %s", ErrNoKey, oldKey, v.path)
	}
	if ok.Interface() == nk.Interface() {
		return nil
	}
	if mv.MapIndex(nk).IsValid() {
		return fmt.Errorf("%w: %v in %s", ErrKeyExists, newKey, v.path)
	}
	mv.SetMapIndex(ok, reflect.Value{})
	mv.SetMapIndex(nk, ev)
	return nil
}

// NewKey returns a detached accessor over a default key.
func (v *Value) NewKey() Property {
	if v.kind != Dictionary {
		return nil
	}
	return New(v.typ.Key(), "Key")
}

// NewValue returns a detached accessor over a default value.
func (v *Value) NewValue() Property {
	if v.kind != Dictionary {
		return nil
	}
	return New(v.typ.Elem(), "Value")
}
