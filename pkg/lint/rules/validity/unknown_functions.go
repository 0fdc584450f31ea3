package validity

import (
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(UnknownFunctions)
}

// UnknownFunctions reports function calls that are not standard.
var UnknownFunctions = lint.RuleDef{
	ID:          "unknown-functions",
	Name:        "Unknown functions should be removed",
	Group:       "validity",
	Description: "Report functions that are neither standard nor vendor-prefixed.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return &unknownFunctions{} },

	Rationale: `A declaration whose value calls an unknown function is dropped by the
browser. Less built-in functions are known when analyzing Less files.`,
	BadExample:  `a { width: calculate(100% - 10px); }`,
	GoodExample: `a { width: calc(100% - 10px); }`,
}

type unknownFunctions struct {
	tree.BaseVisitor
	pass *lint.Pass
}

func (c *unknownFunctions) Begin(pass *lint.Pass) { c.pass = pass }

func (c *unknownFunctions) VisitFunction(n *tree.Function) {
	if !n.Standard().IsKnown() && !n.IsVendorPrefixed() {
		c.pass.Report(n.Name, `Remove this usage of the unknown "`+n.FunctionName()+`" function.`)
	}
	c.ScanChildren(n)
}
