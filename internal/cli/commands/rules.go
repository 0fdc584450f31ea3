package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group    string // Filter by group
	Language string // Filter by language: css, less
	Verbose  bool   // Show full documentation
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (e.g., validity, pitfall).
Use --verbose to see full documentation including examples and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  leapcss rules

  # Show details for a specific rule
  leapcss rules font-face-browser-compatibility

  # List rules in the pitfall group
  leapcss rules --group pitfall

  # Show full documentation
  leapcss rules -V

  # Output as JSON
  leapcss rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Filter by language: css, less")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// allRules returns the metadata of every registered rule, sorted by
// group then ID.
func allRules() []core.RuleInfo {
	defs := lint.GetAll()
	rules := make([]core.RuleInfo, 0, len(defs))
	for _, def := range defs {
		rules = append(rules, lint.GetRuleInfo(def))
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].ID < rules[j].ID
	})
	return rules
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rules := filterRulesByOptions(allRules(), opts)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func filterRulesByOptions(rules []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Group == "" && opts.Language == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, r := range rules {
		if opts.Group != "" && !strings.EqualFold(r.Group, opts.Group) {
			continue
		}
		if opts.Language != "" && len(r.Languages) > 0 && !containsFold(r.Languages, opts.Language) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	def, ok := lint.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	rule := lint.GetRuleInfo(def)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &rule)
	default:
		return showRuleText(r, &rule)
	}
}

func newRulesTable(rules []core.RuleInfo, verbose bool) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	header := table.Row{"ID", "Name", "Severity", "Parameters"}
	if verbose {
		header = append(header, "Description")
	}
	t.AppendHeader(header)
	for _, rule := range rules {
		row := table.Row{rule.ID, rule.Name, rule.DefaultSeverity.String(), paramKeys(rule)}
		if verbose {
			row = append(row, rule.Description)
		}
		t.AppendRow(row)
	}
	return t
}

// listRulesText outputs rules in styled text format, one table per group.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println(styles.Header2.Render(groupTitle(group[0].Group)))
		r.Println(newRulesTable(group, verbose).Render())
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'leapcss rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	r.Println("# Lint Rules")
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println("## " + groupTitle(group[0].Group))
		r.Println("")
		r.Println(newRulesTable(group, verbose).RenderMarkdown())
		r.Println("")
	}
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count struct {
		ByGroup map[string]int `json:"by_group"`
		Total   int            `json:"total"`
	} `json:"count"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	jsonOutput := RulesJSONOutput{Rules: rules}
	jsonOutput.Count.ByGroup = make(map[string]int)
	for _, rule := range rules {
		jsonOutput.Count.ByGroup[rule.Group]++
	}
	jsonOutput.Count.Total = len(rules)
	return r.JSON(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), groupTitle(rule.Group))
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), severityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()))
	r.Printf("  %s: %s\n", styles.Bold.Render("Languages"), ruleLanguages(rule))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + strings.ReplaceAll(rule.Rationale, "\n", "\n  "))
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.Params) > 0 {
		r.Println(styles.Bold.Render("Parameters"))
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Key", "Type", "Default", "Description"})
		for _, p := range rule.Params {
			t.AppendRow(table.Row{p.Key, p.Type, p.Default, p.Description})
		}
		r.Println(t.Render())
		r.Println("")
	}

	r.Printf("  %s: %s\n", styles.Bold.Render("Documentation"), lint.BuildDocURL(rule.ID))
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Languages:** %s\n\n",
		groupTitle(rule.Group), rule.DefaultSeverity.String(), ruleLanguages(rule))
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```css")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```css")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.Params) > 0 {
		r.Println("## Parameters")
		r.Println("")
		for _, p := range rule.Params {
			r.Printf("- `%s` (%s, default `%s`): %s\n", p.Key, p.Type, p.Default, p.Description)
		}
		r.Println("")
	}

	return nil
}

// Helper functions

func severityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

// groupRules splits rules sorted by group into one slice per group.
func groupRules(rules []core.RuleInfo) [][]core.RuleInfo {
	var groups [][]core.RuleInfo
	for i, rule := range rules {
		if i == 0 || rule.Group != rules[i-1].Group {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], rule)
	}
	return groups
}

func groupTitle(group string) string {
	if group == "" {
		return "General"
	}
	return cases.Title(language.English).String(group)
}

func paramKeys(rule core.RuleInfo) string {
	keys := make([]string, 0, len(rule.Params))
	for _, p := range rule.Params {
		keys = append(keys, p.Key)
	}
	return strings.Join(keys, ", ")
}

func ruleLanguages(rule *core.RuleInfo) string {
	if len(rule.Languages) == 0 {
		return "all"
	}
	return strings.Join(rule.Languages, ", ")
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
