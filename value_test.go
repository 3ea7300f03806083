package jv

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  Kind
	}{
		{name: "null", value: Null(), want: KindNull},
		{name: "bool", value: FromBool(true), want: KindBool},
		{name: "number", value: FromNumber(1.5), want: KindNumber},
		{name: "int", value: FromInt(3), want: KindNumber},
		{name: "string", value: FromString("x"), want: KindString},
		{name: "array", value: FromArray(Array{}), want: KindArray},
		{name: "object", value: FromObject(Object{}), want: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.value.Kind(); got != tt.want {
				t.Fatalf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValuePredicates(t *testing.T) {
	t.Parallel()

	value := FromString("x")
	if !value.IsString() {
		t.Fatal("IsString() = false")
	}
	if value.IsNull() || value.IsBool() || value.IsNumber() || value.IsArray() || value.IsObject() {
		t.Fatal("unexpected predicate true for string value")
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	t.Parallel()

	value := FromString("x")

	if _, err := value.AsNumber(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("AsNumber() error = %v, want %v", err, ErrTypeMismatch)
	}
	if _, err := value.AsBool(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("AsBool() error = %v, want %v", err, ErrTypeMismatch)
	}
	if _, err := value.AsArray(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("AsArray() error = %v, want %v", err, ErrTypeMismatch)
	}
	if _, err := Null().AsObject(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("AsObject() error = %v, want %v", err, ErrTypeMismatch)
	}

	got, err := value.AsString()
	if err != nil {
		t.Fatalf("AsString() error = %v", err)
	}
	if got != "x" {
		t.Fatalf("AsString() = %q, want %q", got, "x")
	}
}

func TestValueCopyAliasing(t *testing.T) {
	t.Parallel()

	original := FromObject(Object{"k": FromInt(1)})
	alias := original

	obj, err := original.AsObject()
	if err != nil {
		t.Fatalf("AsObject() error = %v", err)
	}
	obj["k"] = FromInt(2)
	obj["added"] = FromBool(true)

	aliased, err := alias.AsObject()
	if err != nil {
		t.Fatalf("AsObject() error = %v", err)
	}
	if got, _ := aliased["k"].AsNumber(); got != 2 {
		t.Fatalf("aliased copy did not observe mutation, k = %v", got)
	}
	if _, ok := aliased["added"]; !ok {
		t.Fatal("aliased copy did not observe added member")
	}
}

func TestValueCloneIndependence(t *testing.T) {
	t.Parallel()

	original := FromObject(Object{
		"list": FromArray(Array{FromInt(1)}),
	})
	cloned := original.Clone()

	obj, _ := original.AsObject()
	list, _ := obj["list"].AsArray()
	list[0] = FromInt(99)

	clonedObj, _ := cloned.AsObject()
	clonedList, _ := clonedObj["list"].AsArray()
	if got, _ := clonedList[0].AsNumber(); got != 1 {
		t.Fatalf("clone observed mutation, got %v", got)
	}
}

func TestFromContainerCopiesHeader(t *testing.T) {
	t.Parallel()

	source := Object{"a": FromInt(1)}
	value := FromObject(source)
	source["b"] = FromInt(2)

	if got, want := value.JSON(), `{"a": 1}`; got != want {
		t.Fatalf("JSON() = %q, want %q", got, want)
	}
}

func TestObjectKeysSorted(t *testing.T) {
	t.Parallel()

	obj := Object{"c": Null(), "a": Null(), "b": Null()}
	if got, want := obj.Keys(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}

type upperString struct {
	s string
}

func (u upperString) JSONString() string {
	return strings.ToUpper(u.s)
}

type coordinates struct {
	x, y int
}

func (c coordinates) JSONObject() Object {
	return Object{"x": FromInt(c.x), "y": FromInt(c.y)}
}

type pair struct {
	left, right Value
}

func (p pair) JSONArray() Array {
	return Array{p.left, p.right}
}

func TestAdapterConstructors(t *testing.T) {
	t.Parallel()

	if got, want := FromStringlike(upperString{s: "abc"}).JSON(), `"ABC"`; got != want {
		t.Fatalf("FromStringlike JSON() = %q, want %q", got, want)
	}

	if got, want := FromObjectlike(coordinates{x: 1, y: 2}).JSON(), `{"x": 1, "y": 2}`; got != want {
		t.Fatalf("FromObjectlike JSON() = %q, want %q", got, want)
	}

	if got, want := FromArraylike(pair{left: Null(), right: FromBool(true)}).JSON(), `[null, true]`; got != want {
		t.Fatalf("FromArraylike JSON() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: "null"},
		{name: "bool", input: true, want: "true"},
		{name: "int", input: 7, want: "7"},
		{name: "int64", input: int64(-3), want: "-3"},
		{name: "uint8", input: uint8(200), want: "200"},
		{name: "float64", input: 2.5, want: "2.5"},
		{name: "float32", input: float32(0.5), want: "0.5"},
		{name: "string", input: "x", want: `"x"`},
		{name: "value_passthrough", input: FromInt(1), want: "1"},
		{name: "array", input: Array{FromInt(1)}, want: "[1]"},
		{name: "object", input: Object{"a": Null()}, want: `{"a": null}`},
		{name: "any_slice", input: []any{1, "x", nil}, want: `[1, "x", null]`},
		{name: "any_map", input: map[string]any{"b": 2, "a": true}, want: `{"a": true, "b": 2}`},
		{name: "stringlike", input: upperString{s: "ok"}, want: `"OK"`},
		{name: "arraylike", input: pair{left: FromInt(1), right: FromInt(2)}, want: "[1, 2]"},
		{name: "objectlike", input: coordinates{x: 3, y: 4}, want: `{"x": 3, "y": 4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := New(tt.input)
			if err != nil {
				t.Fatalf("New(%v) error = %v", tt.input, err)
			}
			if got := value.JSON(); got != tt.want {
				t.Fatalf("New(%v).JSON() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewUnsupportedType(t *testing.T) {
	t.Parallel()

	type opaque struct{ c chan int }

	if _, err := New(opaque{}); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("New error = %v, want %v", err, ErrUnsupportedType)
	}
}

func TestInterfaceLowering(t *testing.T) {
	t.Parallel()

	value := FromObject(Object{
		"n": FromNumber(1.5),
		"l": FromArray(Array{FromString("x"), Null()}),
	})

	want := map[string]any{
		"n": 1.5,
		"l": []any{"x", nil},
	}
	if got := value.Interface(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Interface() = %#v, want %#v", got, want)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindNull, want: "null"},
		{kind: KindBool, want: "bool"},
		{kind: KindNumber, want: "number"},
		{kind: KindString, want: "string"},
		{kind: KindArray, want: "array"},
		{kind: KindObject, want: "object"},
		{kind: Kind(99), want: "kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
