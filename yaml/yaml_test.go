package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/jacoelho/jv"
)

func TestDecodeBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scalar",
			input: "42",
			want:  "42",
		},
		{
			name:  "mapping_sorted_keys",
			input: "b: 1\na: two\n",
			want:  `{"a": "two", "b": 1}`,
		},
		{
			name:  "sequence",
			input: "- 1\n- true\n- null\n",
			want:  "[1, true, null]",
		},
		{
			name:  "nested",
			input: "outer:\n  inner:\n    - x\n",
			want:  `{"outer": {"inner": ["x"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := DecodeBytes([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeBytes(%q) error = %v", tt.input, err)
			}
			if got := value.JSON(); got != tt.want {
				t.Fatalf("DecodeBytes(%q).JSON() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeReader(t *testing.T) {
	t.Parallel()

	value, err := Decode(strings.NewReader("key: value\n"))
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if got, want := value.JSON(), `{"key": "value"}`; got != want {
		t.Fatalf("JSON() = %q, want %q", got, want)
	}
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	if _, err := DecodeBytes([]byte("key: [unclosed")); !errors.Is(err, ErrDecode) {
		t.Fatalf("error = %v, want %v", err, ErrDecode)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	value := jv.FromObject(jv.Object{
		"name":  jv.FromString("jv"),
		"count": jv.FromInt(2),
	})

	payload, err := Encode(value)
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}

	decoded, err := DecodeBytes(payload)
	if err != nil {
		t.Fatalf("DecodeBytes error = %v", err)
	}
	if got, want := decoded.JSON(), value.JSON(); got != want {
		t.Fatalf("round trip = %q, want %q", got, want)
	}
}
