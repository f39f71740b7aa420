package runner

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. Orchestrators depend on this interface
// so tests can substitute a recording fake instead of invoking real
// package-manager or network operations.
type Runner interface {
	// Run executes name with args in dir (empty dir = current directory),
	// inheriting the caller's stdio. A nonzero exit is returned as an error
	// wrapping *exec.ExitError.
	Run(dir, name string, args ...string) error

	// RunCapturing executes name with args in dir and returns the trimmed
	// text of standard output. Same error contract as Run.
	RunCapturing(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec. The zero value uses the process's
// own stdio streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command attached to the caller's terminal. Output is not
// captured; interactive subprocesses (framework scaffolders, installers with
// progress bars) work as if invoked directly.
func (r *ExecRunner) Run(dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", display(name, args), err)
	}
	return nil
}

// RunCapturing executes the command with stdout captured and returns its
// trimmed text. Stderr is buffered and included in the error on failure.
func (r *ExecRunner) RunCapturing(dir, name string, args ...string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("running %s: %s: %w", display(name, args), msg, err)
		}
		return "", fmt.Errorf("running %s: %w", display(name, args), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func display(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
