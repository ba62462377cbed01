package engine

import (
	"fmt"
	"strconv"
)

// VariantType identifies the active payload kind of a Variant.
type VariantType byte

const (
	TypeNull VariantType = iota
	TypeBool
	TypeInt64
	TypeDouble
	TypeString
	TypeObject

	// typeEnd marks the end of the enum and sizes the evaluator table.
	typeEnd
)

// String returns the name of the type for diagnostics.
func (t VariantType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt64:
		return "Int64"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeObject:
		return "Object"
	default:
		return "?"
	}
}

// objectData is the Object payload: the raw reference plus the instance id
// captured at construction time, so staleness can be detected later.
type objectData struct {
	ptr Object
	id  InstanceId
}

// Variant is a tagged dynamic value holding exactly one of a fixed set of
// kinds. It is a discriminated union: the tag selects which payload field
// is meaningful, and changing the kind always goes through Clear first so
// no two payloads are ever simultaneously live.
//
// Variants are transient, stack-scoped values. Copying one is cheap; the
// String payload shares its underlying buffer.
type Variant struct {
	vtype   VariantType
	vBool   bool
	vInt64  int64
	vDouble float64
	vString String
	vObject objectData
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// NewVariant returns the Null variant.
func NewVariant() Variant {
	return Variant{vtype: TypeNull}
}

// NewVariantBool creates a Bool variant.
func NewVariantBool(value bool) Variant {
	return Variant{vtype: TypeBool, vBool: value}
}

// NewVariantInt creates an Int64 variant. Narrower integer widths fold
// into Int64; there is a single integer payload kind.
func NewVariantInt(value int64) Variant {
	return Variant{vtype: TypeInt64, vInt64: value}
}

// NewVariantFloat creates a Double variant. float32 widens to float64;
// there is a single floating payload kind.
func NewVariantFloat(value float64) Variant {
	return Variant{vtype: TypeDouble, vDouble: value}
}

// NewVariantString creates a String variant.
func NewVariantString(value String) Variant {
	return Variant{vtype: TypeString, vString: value}
}

// NewVariantGoString creates a String variant from a Go string.
func NewVariantGoString(value string) Variant {
	return Variant{vtype: TypeString, vString: NewString(value)}
}

// NewVariantObject creates an Object variant. The instance id is captured
// alongside the reference. A nil object yields the Null variant.
func NewVariantObject(value Object) Variant {
	if value == nil {
		return NewVariant()
	}
	return Variant{vtype: TypeObject, vObject: objectData{ptr: value, id: value.GetInstanceId()}}
}

// ---------------------------------------------------------------------------
// Kind and lifecycle
// ---------------------------------------------------------------------------

// GetType returns the active payload kind.
func (v Variant) GetType() VariantType {
	return v.vtype
}

// Clear destructs the active payload and resets the variant to Null.
// Every kind change funnels through here so the previous payload is torn
// down before the next one is constructed.
func (v *Variant) Clear() {
	*v = Variant{vtype: TypeNull}
}

// SetBool clears the variant and installs a Bool payload.
func (v *Variant) SetBool(value bool) {
	v.Clear()
	v.vtype = TypeBool
	v.vBool = value
}

// SetInt64 clears the variant and installs an Int64 payload.
func (v *Variant) SetInt64(value int64) {
	v.Clear()
	v.vtype = TypeInt64
	v.vInt64 = value
}

// SetDouble clears the variant and installs a Double payload.
func (v *Variant) SetDouble(value float64) {
	v.Clear()
	v.vtype = TypeDouble
	v.vDouble = value
}

// SetString clears the variant and installs a String payload.
func (v *Variant) SetString(value String) {
	v.Clear()
	v.vtype = TypeString
	v.vString = value
}

// SetObject clears the variant and installs an Object payload.
func (v *Variant) SetObject(value Object) {
	v.Clear()
	if value == nil {
		return
	}
	v.vtype = TypeObject
	v.vObject = objectData{ptr: value, id: value.GetInstanceId()}
}

// ---------------------------------------------------------------------------
// Forgiving conversions
//
// AsX never fails: an incompatible source kind yields the given default
// value unchanged. This is what lets the invocation protocol coerce
// best-effort instead of aborting on every mismatched argument.
// ---------------------------------------------------------------------------

// AsBool converts to bool. Numeric kinds are truthy when non-zero.
func (v Variant) AsBool(defaultValue bool) bool {
	switch v.vtype {
	case TypeBool:
		return v.vBool
	case TypeInt64:
		return v.vInt64 != 0
	case TypeDouble:
		return v.vDouble != 0
	default:
		return defaultValue
	}
}

// asInt64 is the shared integer conversion behind the width-specific AsX.
func (v Variant) asInt64(defaultValue int64) int64 {
	switch v.vtype {
	case TypeBool:
		if v.vBool {
			return 1
		}
		return 0
	case TypeInt64:
		return v.vInt64
	case TypeDouble:
		return int64(v.vDouble)
	default:
		return defaultValue
	}
}

// AsByte converts to byte, truncating wider integers.
func (v Variant) AsByte(defaultValue byte) byte {
	return byte(v.asInt64(int64(defaultValue)))
}

// AsSByte converts to int8, truncating wider integers.
func (v Variant) AsSByte(defaultValue int8) int8 {
	return int8(v.asInt64(int64(defaultValue)))
}

// AsInt16 converts to int16, truncating wider integers.
func (v Variant) AsInt16(defaultValue int16) int16 {
	return int16(v.asInt64(int64(defaultValue)))
}

// AsUInt16 converts to uint16, truncating wider integers.
func (v Variant) AsUInt16(defaultValue uint16) uint16 {
	return uint16(v.asInt64(int64(defaultValue)))
}

// AsInt32 converts to int32, truncating wider integers.
func (v Variant) AsInt32(defaultValue int32) int32 {
	return int32(v.asInt64(int64(defaultValue)))
}

// AsUInt32 converts to uint32, truncating wider integers.
func (v Variant) AsUInt32(defaultValue uint32) uint32 {
	return uint32(v.asInt64(int64(defaultValue)))
}

// AsInt64 converts to int64.
func (v Variant) AsInt64(defaultValue int64) int64 {
	return v.asInt64(defaultValue)
}

// AsUInt64 converts to uint64.
func (v Variant) AsUInt64(defaultValue uint64) uint64 {
	return uint64(v.asInt64(int64(defaultValue)))
}

// AsFloat converts to float32.
func (v Variant) AsFloat(defaultValue float32) float32 {
	return float32(v.asDouble(float64(defaultValue)))
}

// AsDouble converts to float64.
func (v Variant) AsDouble(defaultValue float64) float64 {
	return v.asDouble(defaultValue)
}

func (v Variant) asDouble(defaultValue float64) float64 {
	switch v.vtype {
	case TypeBool:
		if v.vBool {
			return 1
		}
		return 0
	case TypeInt64:
		return float64(v.vInt64)
	case TypeDouble:
		return v.vDouble
	default:
		return defaultValue
	}
}

// AsString renders any kind as a String. It never fails.
func (v Variant) AsString() String {
	return v.ToString()
}

// AsObject converts to an Object reference. The captured instance id is
// checked against the instance registry, so a stale reference degrades to
// the default instead of a dangling pointer.
func (v Variant) AsObject(defaultValue Object) Object {
	if v.vtype != TypeObject {
		return defaultValue
	}
	if !IsInstanceValid(v.vObject.id) {
		return defaultValue
	}
	return v.vObject.ptr
}

// GetObjectInstanceId returns the instance id captured in an Object
// payload, or 0 for any other kind.
func (v Variant) GetObjectInstanceId() InstanceId {
	if v.vtype != TypeObject {
		return 0
	}
	return v.vObject.id
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// ToString renders the variant for display.
func (v Variant) ToString() String {
	switch v.vtype {
	case TypeNull:
		return NewString("null")
	case TypeBool:
		if v.vBool {
			return NewString("true")
		}
		return NewString("false")
	case TypeInt64:
		return NewString(strconv.FormatInt(v.vInt64, 10))
	case TypeDouble:
		return NewString(strconv.FormatFloat(v.vDouble, 'g', -1, 64))
	case TypeString:
		return v.vString
	case TypeObject:
		return NewString(fmt.Sprintf("%s@%d", v.vObject.ptr.GetClassName(), v.vObject.id))
	default:
		return NewString("?")
	}
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return v.ToString().GoString()
}

// Equals reports operator== semantics between two variants. Combinations
// without a registered Equal evaluator compare unequal.
func (v Variant) Equals(other Variant) bool {
	result, err := Evaluate(OpEqual, v, other)
	if err != nil {
		return false
	}
	return result.AsBool(false)
}
