// Package sysrun executes operating system commands and reports their raw
// platform wait status.
//
// Shell hands a command line to the system command interpreter with no
// quoting, escaping, or sandboxing: the command runs with the full
// privileges of the calling process and every shell feature (pipes,
// redirection, expansion) is available to it. Exec is the preferred
// variant for plain program execution; it takes an explicit argument
// vector and never involves a shell.
package sysrun

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// ErrCommandFailed is returned when the command interpreter or program
// itself could not be spawned. A command that runs and exits non-zero is
// not an error; the exit is encoded in the returned status.
var ErrCommandFailed = errors.New("System command failed")

// Runner defines an interface for running system commands.
type Runner interface {
	// Shell hands command to the platform command interpreter and blocks
	// until it completes, returning the raw wait status.
	Shell(command string) (int, error)
	// Exec runs name with args directly, without shell interpretation.
	Exec(name string, args ...string) (int, error)
}

// SystemRunner executes commands on the local system. The spawned command
// inherits the runner's stdio streams, so its output appears wherever the
// host process output goes.
type SystemRunner struct {
	// ShellPath overrides the command interpreter used by Shell. It is
	// invoked as "ShellPath -c command", so the override must accept the
	// POSIX -c convention. Empty selects sh on POSIX systems and cmd on
	// Windows.
	ShellPath string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*SystemRunner)(nil)

// New returns a SystemRunner wired to the process stdio.
func New() *SystemRunner {
	return &SystemRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Shell runs command through the operating system command interpreter and
// blocks until it completes. The returned status is the raw platform wait
// status word; use ExitStatus to decode it into a plain exit code.
func (r *SystemRunner) Shell(command string) (int, error) {
	if command == "" {
		return -1, fmt.Errorf("%w: empty command", ErrCommandFailed)
	}
	name, args := r.interpreter(command)
	return r.wait(exec.Command(name, args...))
}

// Exec runs the named program with the given argument vector. No shell is
// involved: metacharacters in the arguments reach the program verbatim.
func (r *SystemRunner) Exec(name string, args ...string) (int, error) {
	if name == "" {
		return -1, fmt.Errorf("%w: empty command", ErrCommandFailed)
	}
	return r.wait(exec.Command(name, args...))
}

// CommandExists reports whether name resolves to an executable, either
// through PATH or as a direct path.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// interpreter returns the shell invocation for a command line.
func (r *SystemRunner) interpreter(command string) (string, []string) {
	if r.ShellPath != "" {
		return r.ShellPath, []string{"-c", command}
	}
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// wait runs cmd to completion and maps the outcome. A non-zero exit or a
// signal is reported through the status word; only a failure to spawn
// becomes an error.
func (r *SystemRunner) wait(cmd *exec.Cmd) (int, error) {
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return rawStatus(cmd.ProcessState), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return rawStatus(exitErr.ProcessState), nil
	}
	return -1, fmt.Errorf("%w: %v", ErrCommandFailed, err)
}
