package validity

import (
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(UnknownAtRules)
}

// UnknownAtRules reports @-rules that are not standard.
var UnknownAtRules = lint.RuleDef{
	ID:          "unknown-at-rules",
	Name:        "Unknown @-rules should be removed",
	Group:       "validity",
	Description: "Report @-rules that are neither standard nor vendor-prefixed.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return &unknownAtRules{} },

	Rationale: `Browsers ignore @-rules they do not know, together with their block.
An unknown @-rule is usually a typo or a leftover from a preprocessor.`,
	BadExample:  `@media-query screen { a { color: red } }`,
	GoodExample: `@media screen { a { color: red } }`,
}

type unknownAtRules struct {
	tree.BaseVisitor
	pass *lint.Pass
}

func (c *unknownAtRules) Begin(pass *lint.Pass) { c.pass = pass }

func (c *unknownAtRules) VisitAtRule(n *tree.AtRule) {
	if !n.Standard().IsKnown() && !n.IsVendorPrefixed() {
		c.pass.Report(n.Keyword, `Remove this usage of the unknown "`+n.Name()+`" @-rule.`)
	}
	c.ScanChildren(n)
}
