// +build !windows

package project

import (
	"os"
	"os/exec"
)

// runInShell runs the specified command using the system shell with the
// specified additional environment variables. On POSIX systems, the shell is
// /bin/sh.
func runInShell(command string, environment []string) error {
	// Set up the process.
	process := exec.Command("/bin/sh", "-c", command)
	process.Env = append(os.Environ(), environment...)
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr

	// Run the process and wait for its completion.
	return process.Run()
}
