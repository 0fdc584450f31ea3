package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/config"
	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/internal/runner"
	"github.com/leapstack-labs/leapcss/internal/state"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules" // register rules
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd. format, when set,
// overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration, or the defaults when the
// command runs without the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// signalContext cancels on interrupt so a run stops between files.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

// languages returns the built-in languages with the file selection of cfg
// applied.
func languages(cfg *config.Config) []*core.Language {
	css := *core.CSS
	less := *core.Less
	if cfg.CSS != nil {
		css.Suffixes = cfg.CSS.Suffixes
		css.ExcludeMinified = cfg.CSS.ExcludeMinified
	}
	if cfg.Less != nil {
		less.Suffixes = cfg.Less.Suffixes
		less.ExcludeMinified = cfg.Less.ExcludeMinified
	}
	return []*core.Language{&css, &less}
}

// discoverOptions builds the file selection for cfg. A non-empty
// language forces every file to be analyzed as that language.
func discoverOptions(cfg *config.Config, language string) (runner.DiscoverOptions, error) {
	langs := languages(cfg)
	opts := runner.DiscoverOptions{Languages: langs}
	if language == "" || language == "auto" {
		return opts, nil
	}
	for _, l := range langs {
		if strings.EqualFold(l.Name, language) {
			opts.Force = l
			return opts, nil
		}
	}
	return opts, fmt.Errorf("%w: %q (available: %s)", core.ErrUnknownLanguage, language,
		strings.Join(core.ListLanguages(), ", "))
}

// discover expands the command arguments, defaulting to the working
// directory.
func discover(args []string, opts runner.DiscoverOptions) ([]runner.Target, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	return runner.Discover(args, opts)
}

// openCache opens and migrates the analysis cache at path.
func openCache(path string, logger *slog.Logger) (*state.SQLiteStore, error) {
	store := state.NewSQLiteStore(logger)
	if err := store.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate cache: %w", err)
	}
	return store, nil
}

// parseFiles parses every target without running checks. Files that
// fail to parse are reported through the logger and left without a tree.
func parseFiles(ctx context.Context, cmdCtx *CommandContext, targets []runner.Target) (*runner.Result, error) {
	return runner.Run(ctx, runner.Options{
		Targets:  targets,
		Config:   lint.NewConfig().Only(lint.ParsingErrorID),
		Workers:  cmdCtx.Cfg.Workers,
		Encoding: cmdCtx.Cfg.Encoding,
		Logger:   cmdCtx.Logger,
	})
}

// displayPath shortens path relative to the working directory.
func displayPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
