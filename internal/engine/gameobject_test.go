package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op (no panic, no re-initialization)
	obj.Start() // Should not panic or cause issues
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}
	obj.AddComponent(comp)

	if !ComponentAlive(comp) {
		t.Error("attached component should be alive")
	}
	if !obj.RemoveComponent(comp) {
		t.Fatal("RemoveComponent should report true for an attached component")
	}
	if len(obj.components) != 0 {
		t.Errorf("Expected 0 components, got %d", len(obj.components))
	}
	if comp.GetGameObject() != nil {
		t.Error("removed component should be detached")
	}
	if ComponentAlive(comp) {
		t.Error("removed component should not be alive")
	}
	if obj.RemoveComponent(comp) {
		t.Error("second RemoveComponent should report false")
	}
}

func TestGameObjectDestroy(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	comp := &BaseComponent{}
	parent.AddComponent(comp)

	parent.Destroy()

	if parent.Alive() || child.Alive() {
		t.Error("destroyed object and its children should not be alive")
	}
	if ComponentAlive(comp) {
		t.Error("component of a destroyed object should not be alive")
	}

	var missing *GameObject
	if missing.Alive() {
		t.Error("nil object should not be alive")
	}
}

func TestGameObjectAddChildReparents(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	child := NewGameObject("Child")

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children) != 0 {
		t.Errorf("Expected old parent to have 0 children, got %d", len(a.Children))
	}
	if child.Parent != b {
		t.Error("Child.Parent should be the new parent")
	}
}

func TestGameObjectWorldTransform(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = mgl32.Vec3{10, 0, 0}
	parent.Transform.Rotation = mgl32.Vec3{0, 90, 0}
	parent.Transform.Scale = mgl32.Vec3{2, 2, 2}

	child := NewGameObject("Child")
	child.Transform.Position = mgl32.Vec3{1, 0, 0}
	parent.AddChild(child)

	// (1,0,0) scaled to (2,0,0), rotated 90 degrees about Y to (0,0,-2)
	want := mgl32.Vec3{10, 0, -2}
	if got := child.WorldPosition(); !got.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("WorldPosition: expected %v, got %v", want, got)
	}
	if got := child.WorldScale(); got != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("WorldScale: expected (2,2,2), got %v", got)
	}
	if got := child.WorldRotation(); got != (mgl32.Vec3{0, 90, 0}) {
		t.Errorf("WorldRotation: expected (0,90,0), got %v", got)
	}
}

func TestReserveUID(t *testing.T) {
	id := NextUID() + 1000
	ReserveUID(id)

	if next := NextUID(); next <= id {
		t.Errorf("NextUID should be above reserved %d, got %d", id, next)
	}
}
