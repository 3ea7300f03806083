// Package run drives the jv tool: it loads each configured input as a
// value tree and prints the reformatted document, JSONPath matches, or a
// per-file validation summary.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jv"
	"github.com/jacoelho/jv/internal/config"
	"github.com/jacoelho/jv/query"
	"github.com/jacoelho/jv/yaml"
)

// Run processes every configured input. Failures are reported per file
// on stderr and processing continues; the exit code is 1 if any input
// failed.
func Run(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	failures := 0

	for _, file := range cfg.Files {
		if err := processFile(cfg, file, stdin, stdout); err != nil {
			failures++
			fmt.Fprintf(stderr, "%s: %v\n", displayName(file), err)
			continue
		}
		if cfg.CheckOnly {
			fmt.Fprintf(stdout, "%s: ok\n", displayName(file))
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}

func processFile(cfg *config.Config, file string, stdin io.Reader, stdout io.Writer) error {
	value, err := load(cfg, file, stdin)
	if err != nil {
		return err
	}

	if cfg.Path != "" {
		matches, err := query.Select(value, cfg.Path)
		if err != nil {
			return err
		}
		if !cfg.CheckOnly {
			for _, match := range matches {
				fmt.Fprintln(stdout, match.JSON())
			}
		}
		return nil
	}

	if !cfg.CheckOnly {
		fmt.Fprintln(stdout, value.JSON())
	}
	return nil
}

func load(cfg *config.Config, file string, stdin io.Reader) (jv.Value, error) {
	reader, cleanup, err := open(file, stdin)
	if err != nil {
		return jv.Value{}, err
	}
	defer cleanup()

	if cfg.YAML {
		return yaml.Decode(reader)
	}

	parser := jv.Parser{MaxDepth: cfg.MaxDepth}
	return parser.ParseReader(reader)
}

func open(file string, stdin io.Reader) (io.Reader, func() error, error) {
	if file == "-" {
		return stdin, func() error { return nil }, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func displayName(file string) string {
	if file == "-" {
		return "stdin"
	}
	return file
}
