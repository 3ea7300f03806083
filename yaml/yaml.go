// Package yaml bridges YAML documents and the jv value model, giving
// the library a second ingestion and rendering format.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jv"
)

var (
	// ErrDecode indicates the YAML input could not be turned into a value.
	ErrDecode = errors.New("decode yaml")
	// ErrEncode indicates the value could not be rendered as YAML.
	ErrEncode = errors.New("encode yaml")
)

// Decode reads a single YAML document from r into a value. Mappings must
// use string keys; anything without a JSON counterpart fails.
func Decode(r io.Reader) (jv.Value, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return jv.Value{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return fromDocument(doc)
}

// DecodeBytes decodes a single YAML document into a value.
func DecodeBytes(data []byte) (jv.Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return jv.Value{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return fromDocument(doc)
}

// Encode renders a value as a YAML document.
func Encode(v jv.Value) ([]byte, error) {
	payload, err := yaml.Marshal(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return payload, nil
}

func fromDocument(doc any) (jv.Value, error) {
	value, err := jv.New(doc)
	if err != nil {
		return jv.Value{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return value, nil
}
