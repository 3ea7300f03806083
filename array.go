package jv

import "strings"

// Array is an ordered sequence of values. Duplicates are allowed.
type Array []Value

// JSON renders the array as compact JSON text.
func (a Array) JSON() string {
	var b strings.Builder
	a.appendJSON(&b)
	return b.String()
}

// Clone returns a deep copy of the array.
func (a Array) Clone() Array {
	cloned := make(Array, len(a))
	for i, element := range a {
		cloned[i] = element.Clone()
	}
	return cloned
}

func (a Array) appendJSON(b *strings.Builder) {
	b.WriteByte('[')
	for i, element := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		element.appendJSON(b)
	}
	b.WriteByte(']')
}
