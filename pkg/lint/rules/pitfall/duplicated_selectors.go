package pitfall

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(DuplicatedSelectors)
}

// DuplicatedSelectors reports selectors that appear more than once in the
// same scope. The stylesheet, every at-rule block and every ruleset block
// are separate scopes.
var DuplicatedSelectors = lint.RuleDef{
	ID:          "duplicated-selectors",
	Name:        "Selectors should not be duplicated",
	Group:       "pitfall",
	Description: "A selector should appear at most once per scope.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return &duplicatedSelectors{} },

	Rationale: `Rules spread over several rulesets with the same selector are hard to
maintain, and the later ruleset silently overrides the earlier one.`,
	BadExample: `.button { color: red; }
.button { margin: 0; }`,
	GoodExample: `.button { color: red; margin: 0; }`,
}

type duplicatedSelectors struct {
	tree.BaseVisitor
	pass   *lint.Pass
	scopes []map[string]*tree.Selector
}

func (c *duplicatedSelectors) Begin(pass *lint.Pass) { c.pass = pass }

func (c *duplicatedSelectors) VisitStyleSheet(n *tree.StyleSheet) { c.scoped(n) }

func (c *duplicatedSelectors) VisitAtRuleBlock(n *tree.AtRuleBlock) { c.scoped(n) }

func (c *duplicatedSelectors) VisitRulesetBlock(n *tree.RulesetBlock) { c.scoped(n) }

func (c *duplicatedSelectors) scoped(n tree.Node) {
	c.scopes = append(c.scopes, make(map[string]*tree.Selector))
	c.ScanChildren(n)
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *duplicatedSelectors) VisitRuleset(n *tree.Ruleset) {
	if n.Selectors != nil && len(c.scopes) > 0 {
		seen := c.scopes[len(c.scopes)-1]
		for _, sel := range n.Selectors.Selectors() {
			if len(sel.Items) == 1 && sel.Items[0].Kind() == tree.KindKeyframesSelector {
				continue
			}
			key := normalizeSelector(sel)
			if first, ok := seen[key]; ok {
				c.pass.Report(sel, `Merge the rules using the duplicated "`+key+`" selector.`).
					Secondary(first, "First occurrence")
				continue
			}
			seen[key] = sel
		}
	}
	c.ScanChildren(n)
}

// normalizeSelector joins the token literals of sel, collapsing any
// whitespace or comments between them into a single space.
func normalizeSelector(sel *tree.Selector) string {
	var b strings.Builder
	for i, t := range tree.Tokens(sel) {
		if i > 0 && len(t.Trivia) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Literal)
	}
	return b.String()
}
