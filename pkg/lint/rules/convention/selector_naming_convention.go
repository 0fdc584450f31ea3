package convention

import (
	"regexp"

	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(SelectorNamingConvention)
}

// DefaultSelectorFormat is the default class name pattern.
const DefaultSelectorFormat = "^[a-z][-a-z0-9]*$"

// SelectorNamingConvention checks class names against a regular expression.
var SelectorNamingConvention = lint.RuleDef{
	ID:          "selector-naming-convention",
	Name:        "Selectors should follow a naming convention",
	Group:       "convention",
	Description: "Class selectors should match the configured regular expression.",
	Severity:    lint.SeverityInfo,
	Params: []lint.Param{
		{
			Key:         "format",
			Description: "Regular expression used to check the class names against",
			Type:        lint.ParamRegexp,
			Default:     DefaultSelectorFormat,
		},
	},
	New: func(opts lint.Options) lint.Check {
		return &selectorNamingConvention{
			format:  opts.String("format"),
			pattern: opts.Regexp("format"),
		}
	},

	Rationale: `Shared naming conventions let teams find and reuse class names
without reading every stylesheet.`,
	BadExample:  `.MyButton_Primary { color: red; }`,
	GoodExample: `.my-button-primary { color: red; }`,
}

type selectorNamingConvention struct {
	tree.BaseVisitor
	pass    *lint.Pass
	format  string
	pattern *regexp.Regexp
}

func (c *selectorNamingConvention) Begin(pass *lint.Pass) { c.pass = pass }

func (c *selectorNamingConvention) VisitClassSelector(n *tree.ClassSelector) {
	if name := n.ClassName(); !c.pattern.MatchString(name) {
		c.pass.Report(n, `Rename selector "`+name+`" to match the regular expression: `+c.format)
	}
	c.ScanChildren(n)
}
