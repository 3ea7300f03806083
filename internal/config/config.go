package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jacoelho/jv/internal/exit"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoInputFiles  = errors.New("no input files specified")
	ErrNegativeDepth = errors.New("max depth cannot be negative")
)

// Config represents the complete configuration for the jv tool.
type Config struct {
	// Inputs are file paths; "-" reads standard input.
	Files []string

	CheckOnly bool   // validate only, report per-file results
	Path      string // JSONPath expression applied to each document
	YAML      bool   // treat inputs as YAML documents
	MaxDepth  int    // maximum nesting depth (0 = unlimited)
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoInputFiles
	}

	if c.MaxDepth < 0 {
		return ErrNegativeDepth
	}

	for _, file := range c.Files {
		if file == "-" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	return nil
}

// Parse parses command line arguments into a Config. A nil exit result
// means parsing succeeded; otherwise the caller should terminate with it.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("%v\n", ErrNoArguments)
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var usage strings.Builder
	fs.SetOutput(&usage)

	cfg := &Config{}
	fs.BoolVar(&cfg.CheckOnly, "check", false, "validate inputs without printing reformatted documents")
	fs.StringVar(&cfg.Path, "path", "", "JSONPath expression to select from each document")
	fs.BoolVar(&cfg.YAML, "yaml", false, "treat inputs as YAML documents")
	fs.IntVar(&cfg.MaxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(usage.String())
		}
		return nil, exit.Error(usage.String())
	}

	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 {
		cfg.Files = []string{"-"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("invalid configuration: %v\n", err)
	}

	return cfg, nil
}
