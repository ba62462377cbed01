package engine

import "testing"

// ---------------------------------------------------------------------------
// Instance registry tests
// ---------------------------------------------------------------------------

func TestInstanceLifecycle(t *testing.T) {
	before := InstanceCount()

	obj := &ManualObject{}
	obj.Init(obj, "::Engine::ManualObject")

	if got := InstanceCount(); got != before+1 {
		t.Errorf("InstanceCount after Init = %d, want %d", got, before+1)
	}

	id := obj.GetInstanceId()
	if !id.IsValid() {
		t.Fatal("Init should mint a valid instance id")
	}
	if !IsInstanceValid(id) {
		t.Error("freshly constructed instance should be live")
	}
	if got := GetInstance(id); got != Object(obj) {
		t.Error("GetInstance should return the registered object")
	}

	obj.Destroy()
	if IsInstanceValid(id) {
		t.Error("destroyed instance should not be live")
	}
	if GetInstance(id) != nil {
		t.Error("GetInstance on destroyed id should return nil")
	}
	if got := InstanceCount(); got != before {
		t.Errorf("InstanceCount after Destroy = %d, want %d", got, before)
	}

	// Destroy is idempotent.
	obj.Destroy()
}

func TestInstanceIdsAreUnique(t *testing.T) {
	a := &ManualObject{}
	a.Init(a, "::Engine::ManualObject")
	defer a.Destroy()
	b := &ManualObject{}
	b.Init(b, "::Engine::ManualObject")
	defer b.Destroy()

	if a.GetInstanceId() == b.GetInstanceId() {
		t.Error("two live instances must have distinct ids")
	}
}

func TestInvalidInstanceId(t *testing.T) {
	if IsInstanceValid(0) {
		t.Error("the zero id is never valid")
	}
	if InstanceId(0).IsValid() {
		t.Error("InstanceId(0).IsValid() should be false")
	}
}

func TestObjectBaseClassName(t *testing.T) {
	obj := &ManualObject{}
	obj.Init(obj, "::Game::Player")
	defer obj.Destroy()

	if got := obj.GetClassName(); got != "::Game::Player" {
		t.Errorf("GetClassName = %q, want %q", got, "::Game::Player")
	}
}

// ---------------------------------------------------------------------------
// ReferencedObject tests
// ---------------------------------------------------------------------------

func TestReferencedObjectCounting(t *testing.T) {
	obj := &ReferencedObject{}
	obj.Init(obj, "::Engine::ReferencedObject")

	if got := obj.GetReferenceCount(); got != 0 {
		t.Errorf("initial count = %d, want 0", got)
	}
	if got := obj.Reference(); got != 1 {
		t.Errorf("Reference = %d, want 1", got)
	}
	if got := obj.Reference(); got != 2 {
		t.Errorf("Reference = %d, want 2", got)
	}

	id := obj.GetInstanceId()
	if got := obj.Dereference(); got != 1 {
		t.Errorf("Dereference = %d, want 1", got)
	}
	if !IsInstanceValid(id) {
		t.Error("instance should stay live while referenced")
	}

	if got := obj.Dereference(); got != 0 {
		t.Errorf("Dereference = %d, want 0", got)
	}
	if IsInstanceValid(id) {
		t.Error("instance should be destroyed when the count reaches zero")
	}
}
