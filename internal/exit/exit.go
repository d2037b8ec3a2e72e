package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes: 0 the pattern matched, 1 it did not, 2 the tool could not run
// the comparison at all.
const (
	CodeMatch    = 0
	CodeMismatch = 1
	CodeError    = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a match result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeMatch,
		Message:  message,
	}
}

// Mismatch creates a pattern-not-satisfied result that outputs to stderr
// with exit code 1.
func Mismatch(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeMismatch,
		Message:  message,
	}
}

// Error creates an error exit result that outputs to stderr with exit code 2.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
