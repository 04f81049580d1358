package cmd

import (
	"fmt"
	"os"
)

// Warning prints a warning message to the standard error stream.
func Warning(message string) {
	fmt.Fprintln(os.Stderr, "Warning:", message)
}

// Error prints an error to the standard error stream.
func Error(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}

// Fatal prints an error to the standard error stream and terminates the
// process with exit code 1.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
