package git

import (
	"context"
	"errors"
	"log/slog"

	"github.com/riordanpawley/signingkey/internal/domain"
)

// exitCoder matches *exec.ExitError
type exitCoder interface {
	ExitCode() int
}

// ConfigStore gets and sets single git configuration values in one scope.
type ConfigStore struct {
	runner CommandRunner
	scope  domain.Scope
	logger *slog.Logger
}

// NewConfigStore creates a new ConfigStore for the given scope.
func NewConfigStore(runner CommandRunner, scope domain.Scope, logger *slog.Logger) *ConfigStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigStore{
		runner: runner,
		scope:  scope,
		logger: logger,
	}
}

// Get returns the value of name. In local scope the effective value is
// read, so a global value shows through when no local one is set.
// ok is false when the value is not set.
func (s *ConfigStore) Get(ctx context.Context, name string) (value string, ok bool, err error) {
	s.logger.Debug("reading git config", "name", name, "scope", s.scope)

	args := []string{"config"}
	if s.scope == domain.ScopeGlobal {
		args = append(args, "--global")
	}
	args = append(args, name)

	output, err := s.runner.Run(ctx, args...)
	if err != nil {
		// git config exits 1 when the key is absent
		var exitErr exitCoder
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			s.logger.Debug("git config value not set", "name", name)
			return "", false, nil
		}
		return "", false, &domain.GitError{Op: "config get", Scope: s.scope.String(), Err: err}
	}

	if output == "" {
		return "", false, nil
	}
	return output, true, nil
}

// Set writes name = value into the store's scope.
func (s *ConfigStore) Set(ctx context.Context, name, value string) error {
	s.logger.Info("writing git config", "name", name, "value", value, "scope", s.scope)

	flag := "--local"
	if s.scope == domain.ScopeGlobal {
		flag = "--global"
	}

	if _, err := s.runner.Run(ctx, "config", flag, name, value); err != nil {
		return &domain.GitError{Op: "config set", Scope: s.scope.String(), Err: err}
	}
	return nil
}
