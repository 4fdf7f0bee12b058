//go:build !windows

package sysrun

import (
	"os"
	"syscall"
)

// rawStatus returns the wait status word as reported by the kernel.
func rawStatus(ps *os.ProcessState) int {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return int(ws)
	}
	return ps.ExitCode()
}

// ExitStatus decodes a raw wait status word into a plain exit code. A
// command terminated by a signal decodes to 128 plus the signal number,
// following the shell convention.
func ExitStatus(status int) int {
	ws := syscall.WaitStatus(status)
	if ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ws.ExitStatus()
}

// Signaled reports whether the raw status records termination by a
// signal, and which one.
func Signaled(status int) (bool, int) {
	ws := syscall.WaitStatus(status)
	if ws.Signaled() {
		return true, int(ws.Signal())
	}
	return false, 0
}
