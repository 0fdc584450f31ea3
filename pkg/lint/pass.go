package lint

import (
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// Pass is the state of one check running over one file. Checks report
// issues through it.
type Pass struct {
	File     string
	Source   string
	Sheet    *tree.StyleSheet
	Language *core.Language

	rule     *RuleDef
	severity Severity
	options  Options
	issues   []*Issue
	current  tree.Node // node being visited, for panic locations
}

// Rule returns the rule the pass runs.
func (p *Pass) Rule() *RuleDef {
	return p.rule
}

// Options returns the validated parameters of the rule.
func (p *Pass) Options() Options {
	return p.options
}

// Report records an issue on the span of n.
func (p *Pass) Report(n tree.Node, msg string) *Issue {
	return p.ReportSpan(n.Span(), msg)
}

// ReportSpan records an issue on a span.
func (p *Pass) ReportSpan(span token.Span, msg string) *Issue {
	issue := &Issue{
		RuleID:           p.rule.ID,
		Severity:         p.severity,
		Message:          msg,
		File:             p.File,
		Pos:              span.Start,
		EndPos:           span.End,
		DocumentationURL: BuildDocURL(p.rule.ID),
	}
	p.issues = append(p.issues, issue)
	return issue
}

// ReportLine records a line-level issue.
func (p *Pass) ReportLine(line int, msg string) *Issue {
	return p.ReportSpan(token.Span{Start: token.Position{Line: line}}, msg)
}

// Issues returns the reported issues in report order.
func (p *Pass) Issues() []Issue {
	out := make([]Issue, len(p.issues))
	for i, issue := range p.issues {
		out[i] = *issue
	}
	return out
}

func (p *Pass) position() token.Position {
	if p.current != nil {
		return p.current.Span().Start
	}
	return token.Position{}
}
