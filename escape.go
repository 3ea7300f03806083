package jv

import "strings"

// Escape returns s with '"' and '\' prefixed by a backslash. No other
// characters are escaped: control characters and non-ASCII bytes pass
// through verbatim. This is a narrower escape set than RFC 8259 string
// syntax and matches exactly what Unescape reads back.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Unescape drops each backslash and keeps the byte that follows it
// verbatim. Escape codes such as \n, \t or \uXXXX are not interpreted.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
