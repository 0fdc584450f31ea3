package lint

import (
	"slices"

	"github.com/leapstack-labs/leapcss/pkg/core"
)

// RuleDef is a data-driven rule definition. The rule itself is stateless;
// New returns a fresh check for every file, so per-file state lives in
// the check and never leaks across files.
type RuleDef struct {
	ID          string   // Unique identifier, e.g., "unknown-at-rules"
	Name        string   // Human-readable title, used in configuration errors
	Group       string   // Category, e.g., "validity", "convention"
	Description string   // Human-readable description
	Severity    Severity // Default severity
	Params      []Param  // Parameters this rule accepts
	Languages   []string // Restrict to languages; nil/empty means all
	New         Factory  // Creates the check; nil for engine rules

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// Factory creates the check for one file from validated options.
type Factory func(opts Options) Check

// AppliesTo reports whether the rule runs for the named language.
func (r *RuleDef) AppliesTo(language string) bool {
	return len(r.Languages) == 0 || slices.Contains(r.Languages, language)
}

// Param returns the declared parameter with the given key.
func (r *RuleDef) Param(key string) (Param, bool) {
	for _, p := range r.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// GetRuleInfo extracts metadata from a rule for documentation/tooling.
func GetRuleInfo(r RuleDef) core.RuleInfo {
	info := core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Languages:       r.Languages,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
	for _, p := range r.Params {
		info.Params = append(info.Params, core.ParamInfo{
			Key:         p.Key,
			Description: p.Description,
			Type:        p.Type.String(),
			Default:     p.Default,
		})
	}
	return info
}
