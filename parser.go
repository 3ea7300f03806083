package jv

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parser parses JSON text into values. The zero value imposes no nesting
// limit and behaves exactly like the package-level Parse functions.
type Parser struct {
	// MaxDepth bounds the nesting of arrays and objects. Zero or
	// negative means unlimited.
	MaxDepth int
}

// Parse parses a single JSON value from s. Only whitespace may surround
// the value; anything else after it fails with ErrTrailingGarbage.
func Parse(s string) (Value, error) {
	var p Parser
	return p.Parse(s)
}

// ParseReader parses a single JSON value from r, reading one byte at a
// time through a buffered cursor.
func ParseReader(r io.Reader) (Value, error) {
	var p Parser
	return p.ParseReader(r)
}

// Parse parses a single JSON value from s.
func (p Parser) Parse(s string) (Value, error) {
	return p.run(newStringCursor(s))
}

// ParseReader parses a single JSON value from r.
func (p Parser) ParseReader(r io.Reader) (Value, error) {
	return p.run(newReaderCursor(r))
}

func (p Parser) run(c cursor) (Value, error) {
	value, err := p.parseValue(c, 0)
	if err != nil {
		return Value{}, err
	}

	for ; !c.atEnd(); c.advance() {
		if !isWhitespace(c.current()) {
			return Value{}, parseError(ErrTrailingGarbage, "unexpected %q at offset %d", c.current(), c.offset())
		}
	}

	if err := c.err(); err != nil {
		return Value{}, fmt.Errorf("read input: %w", err)
	}

	return value, nil
}

// parseValue dispatches on a single byte of lookahead. Every production
// consumes exactly its own text and leaves the cursor on the next
// unconsumed byte.
func (p Parser) parseValue(c cursor, depth int) (Value, error) {
	for !c.atEnd() {
		ch := c.current()
		switch {
		case isWhitespace(ch):
			c.advance()
		case ch == '"':
			c.advance()
			s, err := p.parseString(c)
			if err != nil {
				return Value{}, err
			}
			return FromString(s), nil
		case ch == '[':
			c.advance()
			return p.parseArray(c, depth+1)
		case ch == '{':
			c.advance()
			return p.parseObject(c, depth+1)
		case ch == '-' || isDigit(ch):
			return p.parseNumber(c)
		case ch == 'n':
			return p.parseLiteral(c, "null", Null())
		case ch == 't':
			return p.parseLiteral(c, "true", FromBool(true))
		case ch == 'f':
			return p.parseLiteral(c, "false", FromBool(false))
		default:
			return Value{}, parseError(ErrMalformedJSON, "unexpected %q at offset %d", ch, c.offset())
		}
	}
	return Value{}, parseError(ErrMalformedJSON, "unexpected end of input")
}

func (p Parser) parseLiteral(c cursor, literal string, value Value) (Value, error) {
	for i := 0; i < len(literal); i++ {
		if c.atEnd() || c.current() != literal[i] {
			return Value{}, parseError(ErrMalformedLiteral, "expected %q at offset %d", literal, c.offset())
		}
		c.advance()
	}
	return value, nil
}

// parseString consumes bytes up to an unescaped closing quote. A
// backslash marks exactly the following byte as escaped; the escaped
// byte is kept verbatim with no escape-code interpretation. The cursor
// is positioned after the opening quote on entry.
func (p Parser) parseString(c cursor) (string, error) {
	var b strings.Builder
	escaped := false
	for ; !c.atEnd(); c.advance() {
		ch := c.current()
		if ch == '"' && !escaped {
			c.advance()
			return b.String(), nil
		}
		escaped = ch == '\\' && !escaped
		if !escaped {
			b.WriteByte(ch)
		}
	}
	return "", parseError(ErrMalformedString, "unterminated string %q", b.String())
}

// parseNumber greedily consumes number bytes and hands the accumulated
// text to strconv. Anything the converter rejects fails with
// ErrMalformedNumber; no further grammar validation is performed.
func (p Parser) parseNumber(c cursor) (Value, error) {
	start := c.offset()
	var b strings.Builder
	for !c.atEnd() && isNumberByte(c.current()) {
		b.WriteByte(c.current())
		c.advance()
	}

	number, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Value{}, parseError(ErrMalformedNumber, "invalid number %q at offset %d", b.String(), start)
	}

	return FromNumber(number), nil
}

// parseArray tracks two state flags: accepting (a value may come next)
// and hasElements. A ']' closes the array only for the empty case or
// directly after a value, which rejects trailing commas. The cursor is
// positioned after the '[' on entry.
func (p Parser) parseArray(c cursor, depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return Value{}, err
	}

	arr := Array{}
	accepting, hasElements := true, false
	for !c.atEnd() {
		ch := c.current()
		switch {
		case isWhitespace(ch):
			c.advance()
		case ch == ']' && accepting != hasElements:
			c.advance()
			return Value{kind: KindArray, array: arr}, nil
		case accepting:
			if ch == ']' {
				return Value{}, parseError(ErrMalformedArray, "trailing comma at offset %d", c.offset())
			}
			element, err := p.parseValue(c, depth)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, element)
			accepting, hasElements = false, true
		case ch == ',':
			accepting = true
			c.advance()
		default:
			return Value{}, parseError(ErrMalformedArray, "unexpected %q at offset %d", ch, c.offset())
		}
	}
	return Value{}, parseError(ErrMalformedArray, "unterminated array")
}

// parseObject tracks a pending key and whether a member has completed.
// A '"' always starts a key, ':' after a pending key parses the member
// value (later duplicates overwrite earlier ones), and ',' is only
// accepted between completed members. The cursor is positioned after
// the '{' on entry.
func (p Parser) parseObject(c cursor, depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return Value{}, err
	}

	obj := Object{}
	var key string
	pendingKey, hasMembers := false, false
	for !c.atEnd() {
		ch := c.current()
		switch {
		case ch == '}' && !pendingKey:
			c.advance()
			return Value{kind: KindObject, object: obj}, nil
		case isWhitespace(ch):
			c.advance()
		case ch == '"':
			c.advance()
			parsed, err := p.parseString(c)
			if err != nil {
				return Value{}, err
			}
			key = parsed
			pendingKey = true
		case pendingKey && ch == ':':
			c.advance()
			value, err := p.parseValue(c, depth)
			if err != nil {
				return Value{}, err
			}
			obj[key] = value
			pendingKey = false
			hasMembers = true
		case hasMembers && !pendingKey && ch == ',':
			c.advance()
		default:
			return Value{}, parseError(ErrMalformedObject, "unexpected %q at offset %d", ch, c.offset())
		}
	}
	return Value{}, parseError(ErrMalformedObject, "unterminated object")
}

func (p Parser) checkDepth(depth int) error {
	if p.MaxDepth > 0 && depth > p.MaxDepth {
		return parseError(ErrDepthExceeded, "nesting deeper than %d", p.MaxDepth)
	}
	return nil
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberByte(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '.' || ch == '+' || ch == 'e' || ch == 'E'
}
