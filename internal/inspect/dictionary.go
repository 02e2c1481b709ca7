package inspect

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"editor3d/internal/gui"
	"editor3d/internal/property"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
)

// DictionaryField shows a map as key and value rows. Map iteration order is
// random, so the field keeps its own key order: keys stay where they are
// across refreshes, and new keys are appended.
type DictionaryField struct {
	group
	shape Shape
	keys  *keylist.List[any, property.Property]
}

func newDictionaryField(n *Node) Inspectable {
	return &DictionaryField{group: group{n: n}, keys: keylist.New[any, property.Property]()}
}

func (d *DictionaryField) m() property.Map {
	return d.n.prop.(property.Map)
}

func (d *DictionaryField) Snapshot() any { return d.shape }

// Keys returns the keys in display order.
func (d *DictionaryField) Keys() []any {
	return slices.Clone(d.keys.Keys)
}

func (d *DictionaryField) Modified() bool {
	if !equal(d.shape, readShape(d.n.prop)) {
		return true
	}
	for _, k := range d.keys.Keys {
		if ok, err := d.m().Contains(k); err != nil || !ok {
			return true
		}
	}
	return false
}

// SetValue panics: a dictionary is only changed through its entry operations.
func (d *DictionaryField) SetValue(v any) {
	panic(fmt.Sprintf("inspect: invalid mutation: %s cannot be assigned directly, use AddEntry, RemoveEntry or EditEntry", d.n.path))
}

func (d *DictionaryField) Update(layoutIndex int) {
	if d.root == nil {
		d.build(layoutIndex)
	}
	d.shape = readShape(d.n.prop)
	d.toolbar.Clear()
	d.header.SetDisabled(d.shape.Stale)
	switch {
	case d.shape.Stale:
		d.keys.Reset()
		d.note("Missing")
		return
	case d.shape.Null:
		d.keys.Reset()
		d.note("None")
		d.button("Create", func() { errors.Log(d.Create()) })
		return
	}
	d.syncKeys()
	d.button("Add", func() { errors.Log(d.AddDefault()) })
	d.button("Clear", func() { errors.Log(d.Clear()) })
	if d.tooDeep() {
		d.note("...")
		return
	}
	for i, k := range d.keys.Keys {
		entry := d.keys.Values[i]
		kp := &entryKey{d: d, key: k, path: entry.Path() + ".key"}
		d.n.AddChild("Key", kp.path, d.content, kp)
		d.n.AddChild(entry.Name(), entry.Path(), d.content, entry)
	}
	d.n.RefreshChildren()
	for i, c := range d.n.Children() {
		k := d.keys.Keys[i/2]
		if e := c.Element(); e != nil {
			e.SetActions([]gui.Action{
				{Label: "Remove", Do: func() { errors.Log(d.RemoveEntry(k)) }},
				{Label: "Duplicate", Do: func() { errors.Log(d.CloneEntry(k)) }},
			})
		}
	}
}

// syncKeys drops keys that left the map and appends new ones in a
// deterministic order.
func (d *DictionaryField) syncKeys() {
	live, err := d.m().Keys()
	if err != nil {
		errors.Log(err)
		return
	}
	present := make(map[any]bool, len(live))
	for _, k := range live {
		present[k] = true
	}
	for _, k := range slices.Clone(d.keys.Keys) {
		if !present[k] {
			d.keys.DeleteByKey(k)
		}
	}
	var added []any
	for _, k := range live {
		if d.keys.IndexByKey(k) < 0 {
			added = append(added, k)
		}
	}
	slices.SortFunc(added, compareKeys)
	for _, k := range added {
		d.addKey(k)
	}
}

func (d *DictionaryField) addKey(k any) {
	entry, err := d.m().Entry(k)
	if err != nil {
		errors.Log(err)
		return
	}
	errors.Log(d.keys.Add(k, entry))
}

func compareKeys(a, b any) int {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case av.CanInt() && bv.CanInt():
		return cmpOrdered(av.Int(), bv.Int())
	case av.CanUint() && bv.CanUint():
		return cmpOrdered(av.Uint(), bv.Uint())
	case av.CanFloat() && bv.CanFloat():
		return cmpOrdered(av.Float(), bv.Float())
	}
	return cmpOrdered(fmt.Sprint(a), fmt.Sprint(b))
}

func cmpOrdered[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d *DictionaryField) key(k any) (any, error) {
	return property.Convert(k, d.n.prop.Type().Key())
}

// AddEntry stores v under a new key k.
func (d *DictionaryField) AddEntry(k, v any) error {
	k, err := d.key(k)
	if err != nil {
		return err
	}
	err = d.n.Mutate(fmt.Sprintf("Add %s[%v]", d.n.title, k), func() error {
		return d.m().AddEntry(k, v)
	})
	if err != nil {
		return err
	}
	d.addKey(k)
	return nil
}

// AddDefault adds a default value under the first unused default key.
func (d *DictionaryField) AddDefault() error {
	k, err := d.freeKey()
	if err != nil {
		return err
	}
	v, err := d.m().NewValue().Get()
	if err != nil {
		return err
	}
	return d.AddEntry(k, v)
}

// freeKey returns the default key, or a numbered variant of it when the
// default is taken.
func (d *DictionaryField) freeKey() (any, error) {
	m := d.m()
	k, err := m.NewKey().Get()
	if err != nil {
		return nil, err
	}
	if ok, _ := m.Contains(k); !ok {
		return k, nil
	}
	kt := d.n.prop.Type().Key()
	for i := 1; i < 1<<16; i++ {
		var cand any
		switch property.KindOf(kt) {
		case property.String:
			cand = "key" + strconv.Itoa(i)
		case property.Int, property.Float:
			cand = i
		default:
			return nil, fmt.Errorf("%w: %v", property.ErrKeyExists, k)
		}
		c, err := d.key(cand)
		if err != nil {
			return nil, err
		}
		if ok, _ := m.Contains(c); !ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no free key in %s", property.ErrKeyExists, d.n.path)
}

// RemoveEntry deletes key k.
func (d *DictionaryField) RemoveEntry(k any) error {
	k, err := d.key(k)
	if err != nil {
		return err
	}
	err = d.n.Mutate(fmt.Sprintf("Remove %s[%v]", d.n.title, k), func() error {
		return d.m().RemoveEntry(k)
	})
	if err != nil {
		return err
	}
	d.keys.DeleteByKey(k)
	return nil
}

// CloneEntry stores a deep copy of the value under k at a free key, shown
// right after k.
func (d *DictionaryField) CloneEntry(k any) error {
	k, err := d.key(k)
	if err != nil {
		return err
	}
	src, err := d.m().Entry(k)
	if err != nil {
		return err
	}
	v, err := src.Get()
	if err != nil {
		return err
	}
	v, err = property.Copy(v)
	if err != nil {
		return err
	}
	nk, err := d.freeKey()
	if err != nil {
		return err
	}
	err = d.n.Mutate(fmt.Sprintf("Duplicate %s[%v]", d.n.title, k), func() error {
		return d.m().AddEntry(nk, v)
	})
	if err != nil {
		return err
	}
	entry, err := d.m().Entry(nk)
	if err != nil {
		return err
	}
	if i := d.keys.IndexByKey(k); i >= 0 {
		d.keys.Insert(i+1, nk, entry)
	} else {
		errors.Log(d.keys.Add(nk, entry))
	}
	return nil
}

// EditEntry renames oldKey to newKey, keeping its position. It fails when
// newKey is already in use.
func (d *DictionaryField) EditEntry(oldKey, newKey any) error {
	oldKey, err := d.key(oldKey)
	if err != nil {
		return err
	}
	newKey, err = d.key(newKey)
	if err != nil {
		return err
	}
	if oldKey == newKey {
		return nil
	}
	err = d.n.Mutate(fmt.Sprintf("Rename %s[%v]", d.n.title, oldKey), func() error {
		return d.m().RenameEntry(oldKey, newKey)
	})
	if err != nil {
		return err
	}
	entry, err := d.m().Entry(newKey)
	if err != nil {
		return err
	}
	if i := d.keys.IndexByKey(oldKey); i >= 0 {
		d.keys.RenameIndex(i, newKey)
		d.keys.Values[i] = entry
	} else {
		errors.Log(d.keys.Add(newKey, entry))
	}
	return nil
}

// Create assigns an empty map to a nil map.
func (d *DictionaryField) Create() error {
	return d.n.Mutate("Create "+d.n.title, d.m().Create)
}

// Clear sets the map to nil.
func (d *DictionaryField) Clear() error {
	err := d.n.Mutate("Clear "+d.n.title, d.m().Clear)
	if err == nil {
		d.keys.Reset()
	}
	return err
}

// entryKey exposes a dictionary key as a property so that it can be shown
// and edited by a leaf. Setting it renames the entry.
type entryKey struct {
	d    *DictionaryField
	key  any
	path string
}

func (k *entryKey) Name() string        { return "Key" }
func (k *entryKey) Path() string        { return k.path }
func (k *entryKey) Kind() property.Kind { return property.KindOf(k.Type()) }
func (k *entryKey) Type() reflect.Type  { return k.d.n.prop.Type().Key() }

// untracked keeps key edits out of the history; the rename is recorded on
// the dictionary itself.
func (k *entryKey) untracked() {}

func (k *entryKey) Get() (any, error) {
	ok, err := k.d.m().Contains(k.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %v", property.ErrNoKey, k.key)
	}
	return k.key, nil
}

func (k *entryKey) Set(v any) error {
	if err := k.d.EditEntry(k.key, v); err != nil {
		return err
	}
	nk, _ := k.d.key(v)
	k.key = nk
	return nil
}
