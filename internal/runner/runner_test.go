package runner

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestRunCapturingTrimsOutput(t *testing.T) {
	r := &ExecRunner{}
	out, err := r.RunCapturing("", "echo", "hello")
	if err != nil {
		t.Fatalf("RunCapturing() error: %v", err)
	}
	if out != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestRunCapturingRespectsDir(t *testing.T) {
	dir := t.TempDir()
	r := &ExecRunner{}
	out, err := r.RunCapturing(dir, "pwd")
	if err != nil {
		t.Fatalf("RunCapturing() error: %v", err)
	}
	// pwd reports the resolved path, and t.TempDir may sit behind a symlink
	// (e.g., /tmp on macOS), so compare resolved forms.
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if out != want {
		t.Errorf("pwd in dir = %q, want %q", out, want)
	}
}

func TestRunCapturingNonzeroExit(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.RunCapturing("", "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should wrap *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
}

func TestRunCapturingMissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.RunCapturing("", "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRunInheritsConfiguredStreams(t *testing.T) {
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}
	if err := r.Run("", "echo", "streamed"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := stdout.String(); got != "streamed\n" {
		t.Errorf("stdout = %q, want %q", got, "streamed\n")
	}
}

func TestRunNonzeroExitPreservesCode(t *testing.T) {
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := r.Run("", "sh", "-c", "exit 7")
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should wrap *exec.ExitError, got: %v", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Errorf("exit code = %d, want 7", exitErr.ExitCode())
	}
}
