// Package git reads and writes git configuration values.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes git commands and returns their output.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct {
	program string // git executable, "git" when empty
	workDir string // Working directory for git commands
}

// NewExecRunner creates a new ExecRunner that runs program in the given working directory.
func NewExecRunner(program, workDir string) *ExecRunner {
	if program == "" {
		program = "git"
	}
	return &ExecRunner{
		program: program,
		workDir: workDir,
	}
}

// Run executes a git command with the given arguments.
// The returned error wraps *exec.ExitError when git exits non-zero.
func (e *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.program, args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
