package compatibility

import (
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(ObsoleteProperties)
}

// ObsoleteProperties reports properties that were removed from the
// standard.
var ObsoleteProperties = lint.RuleDef{
	ID:          "obsolete-properties",
	Name:        "Obsolete properties should not be used",
	Group:       "compatibility",
	Description: "Report properties that are flagged obsolete in the standard vocabulary.",
	Severity:    lint.SeverityWarning,
	New:         func(lint.Options) lint.Check { return obsoleteProperties{} },

	Rationale: `Obsolete properties are no longer supported, or only supported for
backward compatibility, and have a standard replacement.`,
	BadExample:  `a { clip: rect(0, 0, 0, 0); }`,
	GoodExample: `a { clip-path: inset(50%); }`,
}

type obsoleteProperties struct{}

func (obsoleteProperties) Kinds() []tree.Kind {
	return []tree.Kind{tree.KindProperty}
}

func (obsoleteProperties) VisitNode(pass *lint.Pass, n tree.Node) {
	if p := n.(*tree.Property); p.Standard().IsObsolete() {
		pass.Report(p.Token, `Remove this usage of the obsolete "`+p.Name()+`" property.`)
	}
}
