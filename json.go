package jv

import (
	"strconv"
	"strings"
)

// JSON renders the value, and recursively everything it contains, as
// compact JSON text: no insignificant whitespace beyond the ", " element
// separator, strings escaped per Escape, object members in ascending key
// order.
func (v Value) JSON() string {
	var b strings.Builder
	v.appendJSON(&b)
	return b.String()
}

// String renders the value as JSON text, making values printable with
// the fmt package.
func (v Value) String() string {
	return v.JSON()
}

func (v Value) appendJSON(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.number, 'g', -1, 64))
	case KindString:
		b.WriteByte('"')
		b.WriteString(Escape(v.str))
		b.WriteByte('"')
	case KindArray:
		v.array.appendJSON(b)
	case KindObject:
		v.object.appendJSON(b)
	}
}

// MarshalJSON implements json.Marshaler. Strings containing characters
// outside the restricted escape set (control characters in particular)
// may render as text that strict JSON consumers reject.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.JSON()), nil
}

// UnmarshalJSON implements json.Unmarshaler using this package's parser,
// including its restricted escape handling.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
