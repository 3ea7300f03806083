// Package query selects values from a jv tree using JSONPath
// expressions (e.g. "$.user.name", "$..items[0]").
package query

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jv"
)

var (
	// ErrInvalidPath indicates the JSONPath expression failed to compile.
	ErrInvalidPath = errors.New("invalid jsonpath")
	// ErrNotFound indicates the expression matched nothing.
	ErrNotFound = errors.New("no match")
)

// Select returns every value matching expr within root, in document
// order. Matches are independent values rebuilt from the lowered tree,
// not aliases into root.
func Select(root jv.Value, expr string) ([]jv.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, expr, err)
	}

	matches := path.Select(root.Interface())
	out := make([]jv.Value, 0, len(matches))
	for _, match := range matches {
		value, err := jv.New(match)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}

	return out, nil
}

// First returns the first value matching expr within root, or
// ErrNotFound when nothing matches.
func First(root jv.Value, expr string) (jv.Value, error) {
	matches, err := Select(root, expr)
	if err != nil {
		return jv.Value{}, err
	}
	if len(matches) == 0 {
		return jv.Value{}, fmt.Errorf("%w: %s", ErrNotFound, expr)
	}
	return matches[0], nil
}
