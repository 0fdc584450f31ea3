package validity

import (
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(KnownProperties)
}

// KnownProperties reports properties that are not standard.
var KnownProperties = lint.RuleDef{
	ID:          "known-properties",
	Name:        "Unknown properties should be removed",
	Group:       "validity",
	Description: "Report properties that are neither standard, custom nor vendor-prefixed.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return knownProperties{} },

	Rationale:   `Browsers drop declarations whose property they do not know.`,
	BadExample:  `a { colour: red; }`,
	GoodExample: `a { color: red; }`,
}

type knownProperties struct{}

func (knownProperties) Kinds() []tree.Kind {
	return []tree.Kind{tree.KindProperty}
}

func (knownProperties) VisitNode(pass *lint.Pass, n tree.Node) {
	p := n.(*tree.Property)
	if !p.Standard().IsKnown() && !p.IsVendorPrefixed() {
		pass.Report(p.Token, `Remove this usage of the unknown "`+p.Name()+`" property.`)
	}
}
