// Package jv is an in-memory JSON value representation with a
// recursive-descent parser and a compact textual serializer.
//
// A Value holds exactly one of the six JSON kinds. Array and Object
// payloads use Go slice and map storage, so copying a Value shares the
// underlying containers: mutation through one copy is visible through the
// other. Use Clone for a structurally independent copy.
package jv

import (
	"fmt"
	"maps"
)

// Kind identifies which of the six JSON kinds a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value represents any JSON datum. The zero value is null.
//
// Numbers are always float64; integers and floats are not distinguished.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	str     string
	array   Array
	object  Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// FromBool returns a boolean value.
func FromBool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// FromNumber returns a number value.
func FromNumber(f float64) Value {
	return Value{kind: KindNumber, number: f}
}

// FromInt returns a number value holding an integral amount.
func FromInt(i int) Value {
	return Value{kind: KindNumber, number: float64(i)}
}

// FromString returns a string value holding the unescaped form of s.
func FromString(s string) Value {
	return Value{kind: KindString, str: s}
}

// FromArray returns an array value. The slice header is copied, so
// appending to a afterwards does not affect the value; the elements
// themselves keep their container sharing.
func FromArray(a Array) Value {
	copied := make(Array, len(a))
	copy(copied, a)
	return Value{kind: KindArray, array: copied}
}

// FromObject returns an object value. The map is copied shallowly, so
// adding members to o afterwards does not affect the value.
func FromObject(o Object) Value {
	copied := make(Object, len(o))
	maps.Copy(copied, o)
	return Value{kind: KindObject, object: copied}
}

// FromStringlike returns a string value from the adapter's rendering.
// The adapter method is called exactly once.
func FromStringlike(s Stringlike) Value {
	return FromString(s.JSONString())
}

// FromArraylike returns an array value from the adapter's rendering.
// The adapter method is called exactly once and the returned container
// is copied.
func FromArraylike(a Arraylike) Value {
	return FromArray(a.JSONArray())
}

// FromObjectlike returns an object value from the adapter's rendering.
// The adapter method is called exactly once and the returned container
// is copied.
func FromObjectlike(o Objectlike) Value {
	return FromObject(o.JSONObject())
}

// New converts a native Go value into a Value. Supported inputs are nil,
// booleans, numeric types, strings, Array, Object, []any, map[string]any,
// Value itself, and types implementing Stringlike, Arraylike or
// Objectlike. Anything else fails with ErrUnsupportedType.
func New(x any) (Value, error) {
	switch current := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return current, nil
	case bool:
		return FromBool(current), nil
	case string:
		return FromString(current), nil
	case Array:
		return FromArray(current), nil
	case Object:
		return FromObject(current), nil
	case []any:
		arr := make(Array, 0, len(current))
		for _, element := range current {
			value, err := New(element)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, value)
		}
		return Value{kind: KindArray, array: arr}, nil
	case map[string]any:
		obj := make(Object, len(current))
		for key, element := range current {
			value, err := New(element)
			if err != nil {
				return Value{}, err
			}
			obj[key] = value
		}
		return Value{kind: KindObject, object: obj}, nil
	}

	if number, ok := toFloat64(x); ok {
		return FromNumber(number), nil
	}

	switch current := x.(type) {
	case Stringlike:
		return FromStringlike(current), nil
	case Arraylike:
		return FromArraylike(current), nil
	case Objectlike:
		return FromObjectlike(current), nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

// toFloat64 converts supported numeric values to float64.
func toFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	default:
		return 0, false
	}
}

// Kind reports which JSON kind the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the stored boolean, or ErrTypeMismatch if the value
// holds a different kind. No coercion is performed.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, typeError(KindBool, v.kind)
	}
	return v.boolean, nil
}

// AsNumber returns the stored number, or ErrTypeMismatch.
func (v Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, typeError(KindNumber, v.kind)
	}
	return v.number, nil
}

// AsString returns the stored unescaped string, or ErrTypeMismatch.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", typeError(KindString, v.kind)
	}
	return v.str, nil
}

// AsArray returns the stored array, or ErrTypeMismatch. The returned
// slice is the value's own storage: element mutations are visible
// through every copy of the value.
func (v Value) AsArray() (Array, error) {
	if v.kind != KindArray {
		return nil, typeError(KindArray, v.kind)
	}
	return v.array, nil
}

// AsObject returns the stored object, or ErrTypeMismatch. The returned
// map is the value's own storage: member mutations are visible through
// every copy of the value.
func (v Value) AsObject() (Object, error) {
	if v.kind != KindObject {
		return nil, typeError(KindObject, v.kind)
	}
	return v.object, nil
}

// Clone returns a structurally independent deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		return Value{kind: KindArray, array: v.array.Clone()}
	case KindObject:
		return Value{kind: KindObject, object: v.object.Clone()}
	default:
		return v
	}
}

// Interface lowers the value to the conventional Go JSON representation:
// nil, bool, float64, string, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.array))
		for i, element := range v.array {
			out[i] = element.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.object))
		for key, element := range v.object {
			out[key] = element.Interface()
		}
		return out
	default:
		return nil
	}
}
