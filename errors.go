package jv

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates an accessor was used against a Value holding a
// different kind. It allows error wrapping and consistent error checks using
// errors.Is().
var ErrTypeMismatch = errors.New("type mismatch")

// ErrUnsupportedType indicates New was given a Go value with no JSON
// representation.
var ErrUnsupportedType = errors.New("unsupported type")

// ErrMalformedJSON is the umbrella sentinel for all parse failures. Every
// grammar-specific sentinel below wraps it, so callers can check for any
// parse failure with errors.Is(err, ErrMalformedJSON).
var ErrMalformedJSON = errors.New("malformed json")

var (
	ErrMalformedLiteral = fmt.Errorf("%w: bad literal", ErrMalformedJSON)
	ErrMalformedNumber  = fmt.Errorf("%w: bad number", ErrMalformedJSON)
	ErrMalformedString  = fmt.Errorf("%w: bad string", ErrMalformedJSON)
	ErrMalformedArray   = fmt.Errorf("%w: bad array", ErrMalformedJSON)
	ErrMalformedObject  = fmt.Errorf("%w: bad object", ErrMalformedJSON)
	ErrTrailingGarbage  = fmt.Errorf("%w: trailing garbage", ErrMalformedJSON)
	ErrDepthExceeded    = fmt.Errorf("%w: depth limit exceeded", ErrMalformedJSON)
)

func parseError(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

func typeError(want, got Kind) error {
	return fmt.Errorf("%w: value holds %s, not %s", ErrTypeMismatch, got, want)
}
