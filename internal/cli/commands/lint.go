package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/config"
	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/internal/runner"
	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// ErrLintIssues is returned when a lint run reports at least one issue.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Set      []string // Rule parameters as rule.param=value
	Language string   // Force a language instead of detecting it by suffix
	Watch    bool     // Re-run on change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Run lint rules on stylesheets",
		Long: `Analyze CSS and Less stylesheets for potential issues.

Directories are searched recursively for files with a known suffix.
Minified CSS files are skipped. Rules can be configured in leapcss.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the current directory
  leapcss lint

  # Lint specific paths
  leapcss lint styles/ theme.less

  # Output as JSON
  leapcss lint --format json

  # Disable specific rules
  leapcss lint --disable empty-rules,obsolete-properties

  # Set a rule parameter
  leapcss lint --set font-face-browser-compatibility.browser_support_level=deep

  # Re-run whenever a stylesheet changes
  leapcss lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "Set a rule parameter: rule.param=value")
	cmd.Flags().StringVar(&opts.Language, "language", "auto", "Analyze files as this language: auto, css, less")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and re-run")
	cmd.Flags().Bool("cache", false, "Reuse results of unchanged files")
	cmd.Flags().Int("workers", 0, "Number of files analyzed in parallel (0 = all CPUs)")
	cmd.Flags().String("encoding", config.DefaultEncoding, "Encoding of the input files")

	_ = cmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "css", "less"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}
	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q, expected one of: error, warning, info, hint", opts.Severity)
	}
	dopts, err := discoverOptions(cfg, opts.Language)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	runOpts := runner.Options{
		Config:   lintCfg,
		Workers:  cfg.Workers,
		Encoding: cfg.Encoding,
		Logger:   cmdCtx.Logger,
	}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && r.EffectiveMode() != output.ModeJSON {
		runOpts.Progress = runner.ProgressWriter(f)
	}
	if cfg.Cache != nil && cfg.Cache.Enabled {
		store, err := openCache(cfg.Cache.Path, cmdCtx.Logger)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		runOpts.Store = store
	}

	if opts.Watch {
		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}
		return runner.Watch(ctx, runner.WatchOptions{
			Paths:    paths,
			Discover: dopts,
			Run:      runOpts,
		}, func(res *runner.Result, err error) {
			if err != nil {
				r.Error(err.Error())
				return
			}
			renderLintResults(r, res, threshold)
		})
	}

	targets, err := discover(args, dopts)
	if err != nil {
		return err
	}
	runOpts.Targets = targets

	res, err := runner.Run(ctx, runOpts)
	if err != nil {
		return err
	}

	if renderLintResults(r, res, threshold) {
		return ErrLintIssues
	}
	return nil
}

// buildLintConfig merges the project configuration with the command
// line. Command line values win.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		id = strings.TrimSpace(id)
		if _, ok := lint.GetByID(id); !ok {
			return nil, fmt.Errorf("--disable: %w: %q", lint.ErrUnknownRule, id)
		}
		lintCfg.Disable(id)
	}
	for _, id := range opts.Rules {
		id = strings.TrimSpace(id)
		if _, ok := lint.GetByID(id); !ok {
			return nil, fmt.Errorf("--rule: %w: %q", lint.ErrUnknownRule, id)
		}
		lintCfg.Only(id)
	}
	for _, kv := range opts.Set {
		id, key, value, err := parseRuleSetting(kv)
		if err != nil {
			return nil, err
		}
		lintCfg.SetRuleOption(id, key, value)
	}

	return lintCfg, nil
}

// parseRuleSetting splits "rule.param=value". The value may contain
// any character.
func parseRuleSetting(s string) (ruleID, key, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if ok {
		ruleID, key, ok = strings.Cut(strings.TrimSpace(name), ".")
	}
	if !ok || ruleID == "" || key == "" {
		return "", "", "", fmt.Errorf("invalid --set %q, expected rule.param=value", s)
	}
	return ruleID, key, value, nil
}

// lintFileResult holds the reported issues of one file.
type lintFileResult struct {
	report runner.FileReport
	issues []lint.Issue
}

func filterBySeverity(res *runner.Result, threshold lint.Severity) []lintFileResult {
	var out []lintFileResult
	for _, f := range res.Files {
		var issues []lint.Issue
		for _, i := range f.Issues {
			if i.Severity <= threshold {
				issues = append(issues, i)
			}
		}
		if len(issues) > 0 {
			out = append(out, lintFileResult{report: f, issues: issues})
		}
	}
	return out
}

// renderLintResults writes the report and tells whether any issue was
// reported.
func renderLintResults(r *output.Renderer, res *runner.Result, threshold lint.Severity) bool {
	results := filterBySeverity(res, threshold)

	summary := output.LintSummary{FilesAnalyzed: len(res.Files)}
	for _, f := range res.Files {
		if f.Cached {
			summary.FilesCached++
		}
		if f.State == lint.ParseFailed {
			summary.ParseFailures++
		}
	}
	for _, fr := range results {
		summary.TotalIssues += len(fr.issues)
		for _, i := range fr.issues {
			switch i.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			RunID:   res.RunID,
			Summary: summary,
			Files:   []output.LintFileResult{},
		}
		for _, fr := range results {
			fileResult := output.LintFileResult{
				Path:     fr.report.Path,
				Language: fr.report.Language,
				State:    fr.report.State.String(),
			}
			for _, i := range fr.issues {
				d := output.LintDiagnostic{
					RuleID:    i.RuleID,
					Severity:  i.Severity.String(),
					Message:   i.Message,
					Line:      i.Pos.Line,
					Column:    i.Pos.Column,
					EndLine:   i.EndPos.Line,
					EndColumn: i.EndPos.Column,
					DocURL:    i.DocumentationURL,
				}
				for _, rel := range i.RelatedInfo {
					d.Related = append(d.Related, output.LintRelatedLoc{
						Path:    rel.FilePath,
						Line:    rel.Pos.Line,
						Column:  rel.Pos.Column,
						Message: rel.Message,
					})
				}
				fileResult.Diagnostics = append(fileResult.Diagnostics, d)
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return summary.TotalIssues > 0
	}

	if len(results) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return false
	}

	styles := r.Styles()
	for _, fr := range results {
		r.Println(styles.FilePath.Render(displayPath(fr.report.Path)))
		for _, i := range fr.issues {
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", location(i.Pos.Line, i.Pos.Column))),
				severityLabel(r, i.Severity),
				styles.Bold.Render(i.RuleID),
				i.Message,
			)
			for _, rel := range i.RelatedInfo {
				r.Printf("  %s  %s\n",
					styles.Muted.Render(fmt.Sprintf("%-7s", location(rel.Pos.Line, rel.Pos.Column))),
					styles.Muted.Render(rel.Message),
				)
			}
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), len(results))

	return true
}

func location(line, col int) string {
	switch {
	case line == 0:
		return "-"
	case col == 0:
		return fmt.Sprintf("%d", line)
	default:
		return fmt.Sprintf("%d:%d", line, col)
	}
}

func severityLabel(r *output.Renderer, sev lint.Severity) string {
	label := fmt.Sprintf("%-7s", sev.String())
	return severityStyle(r.Styles(), sev).Render(label)
}
