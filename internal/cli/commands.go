// Package cli defines the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/signingkey/internal/app"
	"github.com/riordanpawley/signingkey/internal/config"
	"github.com/riordanpawley/signingkey/internal/domain"
	"github.com/riordanpawley/signingkey/internal/logging"
	"github.com/riordanpawley/signingkey/internal/selector"
	"github.com/riordanpawley/signingkey/internal/services/git"
	"github.com/riordanpawley/signingkey/internal/services/gpg"
	"github.com/riordanpawley/signingkey/internal/ui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev" // set by the linker

// Settings is the resolved invocation: configuration plus flags
type Settings struct {
	Config  *config.Config
	Scope   domain.Scope
	Verbose bool
}

// RunFunc executes the command with resolved settings
type RunFunc func(ctx context.Context, s *Settings) error

// ResolveScope applies the scope flags. --local wins over --global;
// without either flag the configured scope is used.
func ResolveScope(global, local bool, configured domain.Scope) domain.Scope {
	switch {
	case local:
		return domain.ScopeLocal
	case global:
		return domain.ScopeGlobal
	default:
		return configured
	}
}

// NewRootCommand creates the root command. run receives the resolved
// settings; main passes Run.
func NewRootCommand(run RunFunc) *cobra.Command {
	var (
		cfgFile string
		global  bool
		local   bool
		verbose bool
	)

	v := viper.New()

	cmd := &cobra.Command{
		Use:   "git-interactive-signing-key",
		Short: "Interactively select a GPG signing key for git commits",
		Long: `Lists the GPG secret keys on this machine, lets you pick one and
stores it as git's user.signingkey. The currently configured key is marked.

Keys: ` + keyHelp(selector.DefaultKeyMap()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), &Settings{
				Config:  cfg,
				Scope:   ResolveScope(global, local, cfg.ScopeValue()),
				Verbose: verbose,
			})
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Set signing key in global git config instead of local")
	cmd.Flags().BoolVar(&local, "local", false, "Set signing key in local git config (default)")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/"+config.AppName+"/config.yaml)")
	cmd.Flags().String("backend", config.BackendInline, `list backend ("inline", "bubbletea")`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Bind flags to viper
	cobra.CheckErr(v.BindPFlag("ui.backend", cmd.Flags().Lookup("backend")))

	return cmd
}

// keyHelp renders the key bindings as one line of help text
func keyHelp(km selector.KeyMap) string {
	parts := make([]string, 0, len(km.ShortHelp()))
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Dependencies holds all the services needed by the command
type Dependencies struct {
	Keyring  *gpg.Keyring
	Store    *git.ConfigStore
	Selector app.Selector
	Logger   *slog.Logger
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(ctx context.Context, s *Settings, logger *slog.Logger) (*Dependencies, error) {
	cfg := s.Config

	repoDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	gitRunner := git.NewExecRunner(cfg.Git.Program, repoDir)
	store := git.NewConfigStore(gitRunner, s.Scope, logger)

	gpgProgram := resolveGPGProgram(ctx, cfg.GPG.Program, git.NewConfigStore(gitRunner, domain.ScopeLocal, logger), logger)
	keyring := gpg.NewKeyring(gpg.NewExecRunner(gpgProgram), logger)

	return &Dependencies{
		Keyring:  keyring,
		Store:    store,
		Selector: newSelector(cfg.UI, logger),
		Logger:   logger,
	}, nil
}

// resolveGPGProgram picks the gpg executable: the configured one, then
// git's gpg.program, then "gpg".
func resolveGPGProgram(ctx context.Context, configured string, store app.ConfigStore, logger *slog.Logger) string {
	if configured != "" {
		return configured
	}
	program, ok, err := store.Get(ctx, "gpg.program")
	if err != nil {
		logger.Debug("failed to read gpg.program", "error", err)
	}
	if ok && program != "" {
		return program
	}
	return "gpg"
}

// newSelector builds the configured selector backend drawing on stderr
func newSelector(ui config.UIConfig, logger *slog.Logger) app.Selector {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	st := styles.New()
	if !ui.Color {
		st = styles.Plain()
	}
	view := selector.NewView(st, ui.Marker, ui.Cursor)

	if ui.Backend == config.BackendBubbletea {
		return selector.NewProgram(
			selector.WithProgramView(view),
			selector.WithProgramLogger(logger),
		)
	}
	return selector.New(
		selector.NewANSITerminal(os.Stdin, os.Stderr),
		selector.WithView(view),
		selector.WithLogger(logger),
	)
}

// Run executes the selection flow with real services
func Run(ctx context.Context, s *Settings) error {
	return runWith(ctx, s, os.Stdout, os.Stderr)
}

func runWith(ctx context.Context, s *Settings, out, errOut io.Writer) error {
	logger, closer, err := logging.New(s.Config.Log, s.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	deps, err := NewDependencies(ctx, s, logger)
	if err != nil {
		return err
	}

	a := app.New(deps.Keyring, deps.Store, deps.Selector, app.Options{
		ConfigKey: s.Config.Git.Key,
		Scope:     s.Scope,
		Out:       out,
		ErrOut:    errOut,
		Logger:    logger,
	})
	return a.Run(ctx)
}
