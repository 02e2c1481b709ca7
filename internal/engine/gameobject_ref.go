package engine

// GameObjectRef refers to a GameObject by UID. It is stored in components in
// place of a pointer so that scenes can be saved and the target can be
// destroyed without leaving a dangling pointer.
//
//	type Follow struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
type GameObjectRef struct {
	UID UID // 0 = none
}

// Get resolves the reference. It returns nil for an empty reference or when
// the object is not in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. It does not check that the
// object exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}

// RefID and SetRefID let the inspector show and edit the reference.
func (r GameObjectRef) RefID() uint64 { return uint64(r.UID) }

func (r *GameObjectRef) SetRefID(id uint64) { r.UID = UID(id) }
