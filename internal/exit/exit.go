// Package exit carries termination outcomes from argument parsing back
// to main, keeping os.Exit out of the deeper call tree.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Result holds the output destination, message and exit code for program
// termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Exit prints the message to its destination and returns the exit code
// for main to pass to os.Exit.
func (r *Result) Exit() int {
	fmt.Fprint(r.Output, r.Message)
	return r.ExitCode
}

func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: 0,
		Message:  message,
	}
}

func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: 1,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
