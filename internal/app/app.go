// Package app wires the keyring, the git configuration and the selector
// into the end-to-end signing key flow.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/riordanpawley/signingkey/internal/domain"
	"github.com/riordanpawley/signingkey/internal/selector"
)

// KeyProvider lists the keys available for selection
type KeyProvider interface {
	ListKeys(ctx context.Context) ([]domain.KeyRecord, error)
}

// ConfigStore reads and writes single configuration values
type ConfigStore interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
}

// Selector lets the user pick one entry
type Selector interface {
	Select(entries []domain.KeyRecord, currentID string) (selector.Result, error)
}

// App runs the pick-and-store flow
type App struct {
	keys      KeyProvider
	store     ConfigStore
	selector  Selector
	configKey string
	scope     domain.Scope
	out       io.Writer // Outcome messages
	errOut    io.Writer // Diagnostics shown instead of the list
	logger    *slog.Logger
}

// Options holds the App settings that are not collaborators
type Options struct {
	ConfigKey string // e.g. "user.signingkey"
	Scope     domain.Scope
	Out       io.Writer
	ErrOut    io.Writer
	Logger    *slog.Logger
}

// New creates an App
func New(keys KeyProvider, store ConfigStore, sel Selector, opts Options) *App {
	if opts.ConfigKey == "" {
		opts.ConfigKey = "user.signingkey"
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ErrOut == nil {
		opts.ErrOut = opts.Out
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &App{
		keys:      keys,
		store:     store,
		selector:  sel,
		configKey: opts.ConfigKey,
		scope:     opts.Scope,
		out:       opts.Out,
		errOut:    opts.ErrOut,
		logger:    opts.Logger,
	}
}

// Run lists the keys, lets the user choose one and stores the choice.
// An empty keyring is reported and is not an error. Cancellation
// leaves the configuration untouched.
func (a *App) Run(ctx context.Context) error {
	keys, err := a.keys.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list signing keys: %w", err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.errOut, "No GPG secret keys found.")
		return nil
	}

	current, ok, err := a.store.Get(ctx, a.configKey)
	if err != nil {
		// An unreadable value only loses the current marker
		a.logger.Warn("failed to read current signing key", "key", a.configKey, "error", err)
		current, ok = "", false
	}
	if !ok {
		current = ""
	}
	a.logger.Debug("starting selection", "keys", len(keys), "current", current, "scope", a.scope)

	res, err := a.selector.Select(keys, current)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}

	id, selected := res.ID()
	if !selected {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.store.Set(ctx, a.configKey, id); err != nil {
		return fmt.Errorf("failed to set %s: %w", a.configKey, err)
	}

	fmt.Fprintf(a.out, "Set %s %s to %s\n", a.scope, a.configKey, id)
	return nil
}
