package gpg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts command execution for testing
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs real gpg commands using os/exec
type ExecRunner struct {
	program string // gpg executable, "gpg" when empty
}

// NewExecRunner creates an ExecRunner for the given gpg executable
func NewExecRunner(program string) *ExecRunner {
	if program == "" {
		program = "gpg"
	}
	return &ExecRunner{program: program}
}

// Run executes a gpg command with a 10-second timeout
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	// Add timeout to context if not already present
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.program, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s failed: %w: %s", r.program, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
