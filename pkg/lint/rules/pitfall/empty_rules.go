package pitfall

import (
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(EmptyRules)
}

// EmptyRules reports rulesets whose block has no content. Comments do not
// count as content.
var EmptyRules = lint.RuleDef{
	ID:          "empty-rules",
	Name:        "Empty rules should be removed",
	Group:       "pitfall",
	Description: "Rulesets should contain at least one declaration or nested rule.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return emptyRules{} },

	Rationale:   `Empty rules are noise left behind by refactoring.`,
	BadExample:  `.unused { }`,
	GoodExample: `.used { color: red; }`,
}

type emptyRules struct{}

func (emptyRules) Kinds() []tree.Kind {
	return []tree.Kind{tree.KindRuleset}
}

func (emptyRules) VisitNode(pass *lint.Pass, n tree.Node) {
	rs := n.(*tree.Ruleset)
	if !rs.Block.IsEmpty() {
		return
	}
	if rs.Selectors != nil {
		pass.Report(rs.Selectors, "Remove this empty rule.")
		return
	}
	pass.Report(rs, "Remove this empty rule.")
}
