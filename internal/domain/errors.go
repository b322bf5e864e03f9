package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrEmptyInput = errors.New("no entries to select from")
)

// TerminalError represents a failure of the terminal surface
type TerminalError struct {
	Op  string // Operation: "enter raw mode", "render", "read event", etc.
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// GitError represents an error from git operations
type GitError struct {
	Op    string
	Scope string
	Err   error
}

func (e *GitError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("git %s [%s]: %v", e.Op, e.Scope, e.Err)
	}
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// GPGError represents an error from gpg operations
type GPGError struct {
	Op      string
	Message string // Human-readable context
	Err     error
}

func (e *GPGError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gpg %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("gpg %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gpg %s failed", e.Op)
}

func (e *GPGError) Unwrap() error {
	return e.Err
}
