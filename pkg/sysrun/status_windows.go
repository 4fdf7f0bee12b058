//go:build windows

package sysrun

import "os"

// rawStatus returns the process exit code; Windows has no wait status
// word, so the raw status and the exit code coincide.
func rawStatus(ps *os.ProcessState) int {
	return ps.ExitCode()
}

// ExitStatus returns status unchanged.
func ExitStatus(status int) int {
	return status
}

// Signaled always reports false; Windows statuses do not encode signals.
func Signaled(status int) (bool, int) {
	return false, 0
}
