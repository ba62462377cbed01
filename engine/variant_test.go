package engine

import "testing"

// ---------------------------------------------------------------------------
// Construction and kind tests
// ---------------------------------------------------------------------------

func TestNewVariantKinds(t *testing.T) {
	cases := []struct {
		name string
		v    Variant
		want VariantType
	}{
		{"null", NewVariant(), TypeNull},
		{"bool", NewVariantBool(true), TypeBool},
		{"int", NewVariantInt(42), TypeInt64},
		{"float", NewVariantFloat(2.5), TypeDouble},
		{"string", NewVariantGoString("hello"), TypeString},
	}
	for _, c := range cases {
		if got := c.v.GetType(); got != c.want {
			t.Errorf("%s: GetType() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestNewVariantObject(t *testing.T) {
	obj := &ManualObject{}
	obj.Init(obj, "::Engine::ManualObject")
	defer obj.Destroy()

	v := NewVariantObject(obj)
	if v.GetType() != TypeObject {
		t.Fatalf("GetType() = %v, want Object", v.GetType())
	}
	if v.GetObjectInstanceId() != obj.GetInstanceId() {
		t.Error("object variant should capture the instance id")
	}

	nilVariant := NewVariantObject(nil)
	if nilVariant.GetType() != TypeNull {
		t.Errorf("nil object should construct the Null variant, got %v", nilVariant.GetType())
	}
}

func TestVariantClear(t *testing.T) {
	v := NewVariantGoString("payload")
	v.Clear()
	if v.GetType() != TypeNull {
		t.Errorf("GetType() after Clear = %v, want Null", v.GetType())
	}
	if got := v.AsString().GoString(); got != "null" {
		t.Errorf("cleared variant renders %q, want %q", got, "null")
	}
}

func TestVariantSetReplacesPayload(t *testing.T) {
	v := NewVariantGoString("old")
	v.SetInt64(7)
	if v.GetType() != TypeInt64 {
		t.Fatalf("GetType() = %v, want Int64", v.GetType())
	}
	if got := v.AsInt64(0); got != 7 {
		t.Errorf("AsInt64 = %d, want 7", got)
	}
	// The string payload must be gone entirely.
	v.SetString(NewString("new"))
	if got := v.AsInt64(-1); got != -1 {
		t.Errorf("AsInt64 on String variant = %d, want default -1", got)
	}

	v.SetBool(true)
	if v.GetType() != TypeBool || !v.AsBool(false) {
		t.Error("SetBool should install a Bool payload")
	}
	v.SetDouble(2.5)
	if v.GetType() != TypeDouble || v.AsDouble(0) != 2.5 {
		t.Error("SetDouble should install a Double payload")
	}
}

func TestConversionsOnConstructorResults(t *testing.T) {
	// Read-only methods work on unnamed temporaries; only the Set family
	// needs an addressable variant.
	if got := NewVariantInt(3).AsDouble(0); got != 3.0 {
		t.Errorf("AsDouble on temporary = %v, want 3", got)
	}
	if got := NewVariantBool(true).AsInt64(0); got != 1 {
		t.Errorf("AsInt64 on temporary = %d, want 1", got)
	}
	if !NewVariantGoString("x").Equals(NewVariantGoString("x")) {
		t.Error("Equals on temporaries should work")
	}
	if got := NewVariant().ToString().GoString(); got != "null" {
		t.Errorf("ToString on temporary = %q, want null", got)
	}
}

// ---------------------------------------------------------------------------
// Forgiving conversion tests
// ---------------------------------------------------------------------------

func TestAsBool(t *testing.T) {
	cases := []struct {
		v    Variant
		def  bool
		want bool
	}{
		{NewVariantBool(true), false, true},
		{NewVariantBool(false), true, false},
		{NewVariantInt(0), true, false},
		{NewVariantInt(3), false, true},
		{NewVariantFloat(0), true, false},
		{NewVariantFloat(0.5), false, true},
		{NewVariantGoString("true"), false, false}, // incompatible: default
		{NewVariant(), true, true},                 // incompatible: default
	}
	for i, c := range cases {
		if got := c.v.AsBool(c.def); got != c.want {
			t.Errorf("case %d: AsBool(%v) = %v, want %v", i, c.def, got, c.want)
		}
	}
}

func TestAsIntegerFamily(t *testing.T) {
	v := NewVariantInt(300)
	if got := v.AsInt64(0); got != 300 {
		t.Errorf("AsInt64 = %d, want 300", got)
	}
	if got := v.AsInt32(0); got != 300 {
		t.Errorf("AsInt32 = %d, want 300", got)
	}
	if got := v.AsByte(0); got != 44 {
		t.Errorf("AsByte = %d, want 44 (300 truncated)", got)
	}

	b := NewVariantBool(true)
	if got := b.AsInt64(0); got != 1 {
		t.Errorf("AsInt64 on Bool true = %d, want 1", got)
	}

	d := NewVariantFloat(2.9)
	if got := d.AsInt64(0); got != 2 {
		t.Errorf("AsInt64 on Double 2.9 = %d, want 2", got)
	}

	s := NewVariantGoString("300")
	if got := s.AsInt64(-5); got != -5 {
		t.Errorf("AsInt64 on String = %d, want default -5", got)
	}
}

func TestAsDouble(t *testing.T) {
	if got := NewVariantInt(3).AsDouble(0); got != 3.0 {
		t.Errorf("AsDouble on Int64 = %v, want 3", got)
	}
	if got := NewVariantFloat(1.5).AsDouble(0); got != 1.5 {
		t.Errorf("AsDouble = %v, want 1.5", got)
	}
	if got := NewVariant().AsDouble(9.5); got != 9.5 {
		t.Errorf("AsDouble on Null = %v, want default 9.5", got)
	}
	if got := NewVariantFloat(1.5).AsFloat(0); got != 1.5 {
		t.Errorf("AsFloat = %v, want 1.5", got)
	}
}

func TestAsString(t *testing.T) {
	cases := []struct {
		v    Variant
		want string
	}{
		{NewVariant(), "null"},
		{NewVariantBool(true), "true"},
		{NewVariantBool(false), "false"},
		{NewVariantInt(-12), "-12"},
		{NewVariantFloat(2.5), "2.5"},
		{NewVariantGoString("MUR"), "MUR"},
	}
	for i, c := range cases {
		if got := c.v.AsString().GoString(); got != c.want {
			t.Errorf("case %d: AsString = %q, want %q", i, got, c.want)
		}
	}
}

func TestAsObjectStaleness(t *testing.T) {
	obj := &ManualObject{}
	obj.Init(obj, "::Engine::ManualObject")

	v := NewVariantObject(obj)
	if got := v.AsObject(nil); got != Object(obj) {
		t.Fatal("AsObject should return the live instance")
	}

	obj.Destroy()
	if got := v.AsObject(nil); got != nil {
		t.Error("AsObject on a stale reference should degrade to the default")
	}

	fallback := &ManualObject{}
	fallback.Init(fallback, "::Engine::ManualObject")
	defer fallback.Destroy()
	if got := v.AsObject(fallback); got != Object(fallback) {
		t.Error("AsObject on a stale reference should return the given default")
	}
}

// ---------------------------------------------------------------------------
// Equality
// ---------------------------------------------------------------------------

func TestVariantEquals(t *testing.T) {
	if !NewVariantInt(7).Equals(NewVariantInt(7)) {
		t.Error("Int64 7 should equal Int64 7")
	}
	if NewVariantInt(7).Equals(NewVariantInt(8)) {
		t.Error("Int64 7 should not equal Int64 8")
	}
	if !NewVariantGoString("a").Equals(NewVariantGoString("a")) {
		t.Error("equal strings should compare equal")
	}
	if !NewVariantInt(3).Equals(NewVariantFloat(3)) {
		t.Error("Int64 3 should equal Double 3 via numeric widening")
	}
	// Combination with no Equal evaluator compares unequal.
	if NewVariantBool(true).Equals(NewVariantInt(1)) {
		t.Error("Bool and Int64 have no Equal evaluator and must compare unequal")
	}
}
