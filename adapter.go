package jv

// Stringlike is implemented by host types that can render themselves as
// an unescaped JSON string.
type Stringlike interface {
	JSONString() string
}

// Arraylike is implemented by host types that can render themselves as a
// JSON array.
type Arraylike interface {
	JSONArray() Array
}

// Objectlike is implemented by host types that can render themselves as a
// JSON object.
type Objectlike interface {
	JSONObject() Object
}
