package sysrun

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// newTestRunner returns a runner with stdio captured in buffers.
func newTestRunner() (*SystemRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := New()
	r.Stdin = strings.NewReader("")
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r, &stdout, &stderr
}

func TestShellExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    int
	}{
		{"true succeeds", "true", 0},
		{"false fails", "false", 1},
		{"explicit exit code", "exit 7", 7},
		{"pipeline", "echo hi | grep -q hi", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRunner()
			status, err := r.Shell(tt.command)
			if err != nil {
				t.Fatalf("Shell(%q) error: %v", tt.command, err)
			}
			if got := ExitStatus(status); got != tt.want {
				t.Errorf("ExitStatus(Shell(%q)) = %d, want %d", tt.command, got, tt.want)
			}
		})
	}
}

func TestShellOutput(t *testing.T) {
	r, stdout, stderr := newTestRunner()

	status, err := r.Shell("echo hello")
	if err != nil {
		t.Fatalf("Shell(echo hello) error: %v", err)
	}
	if ExitStatus(status) != 0 {
		t.Errorf("ExitStatus = %d, want 0", ExitStatus(status))
	}
	if got := stdout.String(); got != "hello\n" {
		t.Errorf("stdout = %q, want %q", got, "hello\n")
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestShellStderr(t *testing.T) {
	r, stdout, stderr := newTestRunner()

	if _, err := r.Shell("echo oops >&2"); err != nil {
		t.Fatalf("Shell error: %v", err)
	}
	if got := stderr.String(); got != "oops\n" {
		t.Errorf("stderr = %q, want %q", got, "oops\n")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestShellSpawnFailure(t *testing.T) {
	r, _, _ := newTestRunner()
	r.ShellPath = "/nonexistent/shell-xyz"

	_, err := r.Shell("true")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Shell with missing interpreter: err = %v, want ErrCommandFailed", err)
	}
	if !strings.HasPrefix(err.Error(), "System command failed") {
		t.Errorf("error message = %q, want prefix %q", err.Error(), "System command failed")
	}
}

func TestShellEmptyCommand(t *testing.T) {
	r, _, _ := newTestRunner()

	if _, err := r.Shell(""); !errors.Is(err, ErrCommandFailed) {
		t.Errorf("Shell(\"\") err = %v, want ErrCommandFailed", err)
	}
}

func TestExec(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want int
	}{
		{"true", []string{"true"}, 0},
		{"false", []string{"false"}, 1},
		{"sh exit", []string{"sh", "-c", "exit 3"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRunner()
			status, err := r.Exec(tt.argv[0], tt.argv[1:]...)
			if err != nil {
				t.Fatalf("Exec(%v) error: %v", tt.argv, err)
			}
			if got := ExitStatus(status); got != tt.want {
				t.Errorf("ExitStatus(Exec(%v)) = %d, want %d", tt.argv, got, tt.want)
			}
		})
	}
}

func TestExecNoShellInterpretation(t *testing.T) {
	r, stdout, _ := newTestRunner()

	// A metacharacter in an argument must reach the program verbatim.
	if _, err := r.Exec("echo", "a;b"); err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if got := stdout.String(); got != "a;b\n" {
		t.Errorf("stdout = %q, want %q", got, "a;b\n")
	}
}

func TestExecMissingProgram(t *testing.T) {
	r, _, _ := newTestRunner()

	_, err := r.Exec("this-command-does-not-exist-xyz")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Exec of missing program: err = %v, want ErrCommandFailed", err)
	}
}

func TestCommandExists(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"ls exists", "ls", true},
		{"sh exists", "sh", true},
		{"nonexistent command", "this-command-does-not-exist-xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandExists(tt.command); got != tt.want {
				t.Errorf("CommandExists(%s) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestExecEmptyName(t *testing.T) {
	r, _, _ := newTestRunner()

	if _, err := r.Exec(""); !errors.Is(err, ErrCommandFailed) {
		t.Errorf("Exec(\"\") err = %v, want ErrCommandFailed", err)
	}
}
