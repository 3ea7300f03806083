package jv

import (
	"slices"
	"strings"
)

// Object maps unique string keys to values. Iteration and serialization
// always follow ascending lexicographic key order, never insertion order.
type Object map[string]Value

// Keys returns the member keys in ascending order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// JSON renders the object as compact JSON text with members in ascending
// key order.
func (o Object) JSON() string {
	var b strings.Builder
	o.appendJSON(&b)
	return b.String()
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	cloned := make(Object, len(o))
	for key, element := range o {
		cloned[key] = element.Clone()
	}
	return cloned
}

func (o Object) appendJSON(b *strings.Builder) {
	b.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(Escape(key))
		b.WriteString(`": `)
		o[key].appendJSON(b)
	}
	b.WriteByte('}')
}
