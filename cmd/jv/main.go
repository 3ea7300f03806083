package main

import (
	"os"

	"github.com/jacoelho/jv/internal/config"
	"github.com/jacoelho/jv/internal/run"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		return exitResult.Exit()
	}

	return run.Run(cfg, os.Stdin, os.Stdout, os.Stderr)
}
