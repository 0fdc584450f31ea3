package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules" // register rules
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"compatibility": "Rules about features that browsers dropped or never shared.",
	"convention":    "Rules about naming and style consistency.",
	"pitfall":       "Rules about constructs that are valid but almost always a mistake.",
	"validity":      "Rules about names that are not part of the standard vocabulary.",
}

// generateLintDocs generates all lint documentation files.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	grouped := groupRules(lint.GetAll())

	if err := generateLintIndex(outDir, grouped); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	if err := generateRulesPage(outDir, grouped); err != nil {
		return err
	}
	log.Printf("  Generated rules.md")

	return nil
}

// generateLintIndex generates the main linting overview page.
func generateLintIndex(outDir string, grouped map[string][]core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Linting", "Stylesheet lint rules for leapcss")
	w.GeneratedMarker()

	w.Header(1, "Linting")
	w.Paragraph(fmt.Sprintf("leapcss ships %s for CSS and Less stylesheets.", Bold(fmt.Sprintf("%d rules", lint.Count()))))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `leapcss.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled:
    - obsolete-properties               # disable rule
  severity:
    empty-rules: error                  # override severity
  rules:
    font-face-browser-compatibility:
      browser_support_level: deep       # rule parameter`)
	w.Paragraph("Parameter values are validated before any file is read. An invalid value stops the run with a configuration error.")

	w.Header(2, "Rule Groups")
	rows := make([][]string, 0, len(grouped))
	for _, group := range sortedGroups(grouped) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/linting/rules#%s)", title(group), group),
			fmt.Sprintf("%d", len(grouped[group])),
			groupDescriptions[group],
		})
	}
	w.Table([]string{"Group", "Rules", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateRulesPage writes every rule, grouped.
func generateRulesPage(outDir string, grouped map[string][]core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Stylesheet analysis rules for leapcss")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("leapcss includes %d lint rules organized into %d groups.", lint.Count(), len(grouped)))

	for _, group := range sortedGroups(grouped) {
		w.Line(fmt.Sprintf("## %s {#%s}", title(group), group))
		w.Newline()

		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range grouped[group] {
			writeRuleDoc(w, rule)
		}
	}

	return os.WriteFile(filepath.Join(outDir, "rules.md"), w.Bytes(), 0600)
}

// groupRules organizes rules by group. GetAll already sorts by ID.
func groupRules(rules []lint.RuleDef) map[string][]core.RuleInfo {
	grouped := make(map[string][]core.RuleInfo)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], lint.GetRuleInfo(r))
	}
	return grouped
}

func sortedGroups(grouped map[string][]core.RuleInfo) []string {
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	w.Line(fmt.Sprintf("### %s {#%s}", rule.ID, rule.ID))
	w.Newline()
	w.Paragraph(Bold(rule.Name))

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity.String())))
	w.Newline()

	if len(rule.Languages) > 0 {
		w.Line(fmt.Sprintf("**Languages:** %s", strings.Join(rule.Languages, ", ")))
		w.Newline()
	}

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(cleanDescription(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("css", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("css", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(cleanDescription(rule.Fix))
	}

	if len(rule.Params) > 0 {
		w.Header(4, "Parameters")
		rows := make([][]string, 0, len(rule.Params))
		for _, p := range rule.Params {
			def := p.Default
			if def != "" {
				def = InlineCode(def)
			}
			rows = append(rows, []string{InlineCode(p.Key), p.Type, def, p.Description})
		}
		w.Table([]string{"Key", "Type", "Default", "Description"}, rows)
	}

	w.Line("---")
	w.Newline()
}
