package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/internal/runner"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/passes"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format   string // Output format: text, markdown, json
	Language string
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor [paths...]",
		Short: "Run a stylesheet health check",
		Long: `Analyze a set of stylesheets and summarize their health.

The doctor command runs every configured rule and reports:
- Summary (files per language, lines of code, rules, duplications)
- Health checks grouped by rule category
- Health score (0-100)
- Actionable recommendations

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run health check
  leapcss doctor

  # Output as JSON
  leapcss doctor --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVar(&opts.Language, "language", "auto", "Analyze files as this language: auto, css, less")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         ProjectSummary `json:"summary"`
	HealthChecks    []HealthCheck  `json:"health_checks"`
	Score           int            `json:"score"`
	Recommendations []string       `json:"recommendations"`
	IssueCount      int            `json:"issue_count"`
}

// ProjectSummary contains statistics over all analyzed files.
type ProjectSummary struct {
	Files         int `json:"files"`
	CSSFiles      int `json:"css_files"`
	LessFiles     int `json:"less_files"`
	ParseFailures int `json:"parse_failures"`
	LinesOfCode   int `json:"lines_of_code"`
	Rules         int `json:"rules"`
	Duplications  int `json:"duplications"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, args []string, opts *DoctorOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintCfg, err := buildLintConfig(cfg, &LintOptions{})
	if err != nil {
		return err
	}
	dopts, err := discoverOptions(cfg, opts.Language)
	if err != nil {
		return err
	}
	targets, err := discover(args, dopts)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		r.Warning("No stylesheets found")
		return nil
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	res, err := runner.Run(ctx, runner.Options{
		Targets:  targets,
		Config:   lintCfg,
		Workers:  cfg.Workers,
		Encoding: cfg.Encoding,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	minTokens := passes.DefaultMinimumTokens
	if cfg.CPD != nil && cfg.CPD.MinimumTokens > 0 {
		minTokens = cfg.CPD.MinimumTokens
	}
	out := buildDoctorOutput(res, lintCfg, minTokens)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, out)
	default:
		return renderDoctorText(r, out)
	}
}

func buildDoctorOutput(res *runner.Result, lintCfg *lint.Config, minTokens int) *DoctorOutput {
	summary := buildProjectSummary(res, minTokens)

	issuesByRule := make(map[string][]lint.Issue)
	for _, i := range res.Issues() {
		issuesByRule[i.RuleID] = append(issuesByRule[i.RuleID], i)
	}

	rules := lint.GetAll()
	healthChecks := make([]HealthCheck, 0, len(rules))
	for _, rule := range rules {
		if lintCfg.IsDisabled(rule.ID) {
			continue
		}
		ruleIssues := issuesByRule[rule.ID]
		status := "pass"
		if len(ruleIssues) > 0 {
			if lintCfg.GetSeverity(rule.ID, rule.Severity) == lint.SeverityError {
				status = "error"
			} else {
				status = "warn"
			}
		}

		details := make([]string, 0, len(ruleIssues))
		for _, i := range ruleIssues {
			details = append(details, fmt.Sprintf("%s:%s %s", displayPath(i.File), location(i.Pos.Line, i.Pos.Column), i.Message))
		}

		healthChecks = append(healthChecks, HealthCheck{
			RuleID:     rule.ID,
			Name:       rule.Name,
			Group:      rule.Group,
			Status:     status,
			IssueCount: len(ruleIssues),
			Details:    details,
		})
	}

	sort.Slice(healthChecks, func(i, j int) bool {
		if healthChecks[i].Group != healthChecks[j].Group {
			return healthChecks[i].Group < healthChecks[j].Group
		}
		return healthChecks[i].RuleID < healthChecks[j].RuleID
	})

	issueCount := 0
	for _, c := range healthChecks {
		issueCount += c.IssueCount
	}

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    healthChecks,
		Score:           calculateHealthScore(healthChecks, summary.Files),
		Recommendations: generateRecommendations(healthChecks, summary),
		IssueCount:      issueCount,
	}
}

func buildProjectSummary(res *runner.Result, minTokens int) ProjectSummary {
	summary := ProjectSummary{Files: len(res.Files)}
	var cpdFiles []passes.CPDFile
	for _, f := range res.Files {
		if strings.EqualFold(f.Language, "less") {
			summary.LessFiles++
		} else {
			summary.CSSFiles++
		}
		if f.State == lint.ParseFailed || f.Sheet == nil {
			summary.ParseFailures++
			continue
		}
		m := passes.ComputeMetrics(f.Sheet)
		summary.LinesOfCode += m.LinesOfCode
		summary.Rules += m.Rules
		cpdFiles = append(cpdFiles, passes.CPDFile{Path: f.Path, Tokens: passes.CPDTokens(f.Sheet, passes.CPDOptions{})})
	}
	summary.Duplications = len(passes.FindDuplicates(cpdFiles, minTokens))
	return summary
}

// calculateHealthScore computes a health score from 0-100.
// Errors weigh twice as much as warnings, and each issue weighs less the
// more files were analyzed.
func calculateHealthScore(checks []HealthCheck, fileCount int) int {
	if len(checks) == 0 {
		return 100
	}

	score := 100.0

	basePenalty := 5.0
	if fileCount > 10 {
		basePenalty = 3.0
	}
	if fileCount > 50 {
		basePenalty = 2.0
	}
	if fileCount > 100 {
		basePenalty = 1.0
	}

	for _, check := range checks {
		switch check.Status {
		case "error":
			score -= float64(check.IssueCount) * basePenalty * 2
		case "warn":
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	return int(max(0, min(100, score)))
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck, summary ProjectSummary) []string {
	var recommendations []string
	seen := make(map[string]bool)

	if summary.ParseFailures > 0 {
		recommendations = append(recommendations, "Fix the syntax errors that stop files from being analyzed")
	}
	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}
		rec := getRecommendation(check.RuleID)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}
	if summary.Duplications > 0 {
		recommendations = append(recommendations, "Extract duplicated declarations into shared rules (see 'leapcss cpd')")
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// getRecommendation returns a recommendation for a specific rule.
func getRecommendation(ruleID string) string {
	switch ruleID {
	case "known-properties":
		return "Correct misspelled property names"
	case "unknown-at-rules":
		return "Remove at-rules that no browser supports"
	case "unknown-functions":
		return "Replace calls to unknown functions"
	case "obsolete-properties":
		return "Replace obsolete properties with their standard equivalents"
	case "font-face-browser-compatibility":
		return "Add format() hints and fallbacks to @font-face sources"
	case "duplicated-selectors":
		return "Merge rulesets that repeat the same selector"
	case "empty-rules":
		return "Remove empty rulesets"
	case "selector-naming-convention":
		return "Rename class and id selectors to follow the naming convention"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Stylesheet Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	r.Println(styles.Header2.Render("Summary"))
	r.Printf("   Files: %d | CSS: %d | Less: %d | Unparsable: %d\n",
		out.Summary.Files, out.Summary.CSSFiles, out.Summary.LessFiles, out.Summary.ParseFailures)
	r.Printf("   Lines of code: %d | Rules: %d | Duplications: %d\n",
		out.Summary.LinesOfCode, out.Summary.Rules, out.Summary.Duplications)
	r.Println("")

	r.Println(styles.Header2.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	for i, check := range out.HealthChecks {
		if i == 0 || check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + groupTitle(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("✓")
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.Error.Render("✗")
		}

		status := fmt.Sprintf("%s %s: %s", icon, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			status += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + status)

		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# Stylesheet Health Report")
	r.Println("")

	r.Println("## Summary")
	r.Println("")
	r.Printf("- **Files**: %d\n", out.Summary.Files)
	r.Printf("- **CSS files**: %d\n", out.Summary.CSSFiles)
	r.Printf("- **Less files**: %d\n", out.Summary.LessFiles)
	r.Printf("- **Unparsable files**: %d\n", out.Summary.ParseFailures)
	r.Printf("- **Lines of code**: %d\n", out.Summary.LinesOfCode)
	r.Printf("- **Rules**: %d\n", out.Summary.Rules)
	r.Printf("- **Duplications**: %d\n", out.Summary.Duplications)
	r.Println("")

	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	for i, check := range out.HealthChecks {
		if i == 0 || check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("### " + groupTitle(currentGroup))
			r.Println("")
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		r.Printf("- **[%s]** %s: %s", status, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			r.Printf(" (%d issues)", check.IssueCount)
		}
		r.Println("")

		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
