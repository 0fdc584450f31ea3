package passes

import (
	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// Metrics are size measures of one stylesheet.
type Metrics struct {
	LinesOfCode  int // lines holding at least one token
	CommentLines int // lines holding part of a comment
	Statements   int // declarations and at-rules
	Rules        int // rulesets
}

// Add accumulates m2 into m.
func (m *Metrics) Add(m2 Metrics) {
	m.LinesOfCode += m2.LinesOfCode
	m.CommentLines += m2.CommentLines
	m.Statements += m2.Statements
	m.Rules += m2.Rules
}

// ComputeMetrics measures sheet.
func ComputeMetrics(sheet *tree.StyleSheet) Metrics {
	c := &metricsCounter{
		code:     make(map[int]bool),
		comments: make(map[int]bool),
	}
	c.Bind(c)
	tree.Walk(c, sheet)
	return Metrics{
		LinesOfCode:  len(c.code),
		CommentLines: len(c.comments),
		Statements:   c.statements,
		Rules:        c.rules,
	}
}

type metricsCounter struct {
	tree.BaseVisitor
	code       map[int]bool
	comments   map[int]bool
	statements int
	rules      int
}

func (c *metricsCounter) VisitAtRule(n *tree.AtRule) {
	c.statements++
	c.ScanChildren(n)
}

func (c *metricsCounter) VisitPropertyDeclaration(n *tree.PropertyDeclaration) {
	c.statements++
	c.ScanChildren(n)
}

func (c *metricsCounter) VisitVariableDeclaration(n *tree.VariableDeclaration) {
	c.statements++
	c.ScanChildren(n)
}

func (c *metricsCounter) VisitRuleset(n *tree.Ruleset) {
	c.rules++
	c.ScanChildren(n)
}

func (c *metricsCounter) VisitToken(t *tree.SyntaxToken) {
	if t.Type != token.EOF && t.Type != token.BOM {
		markLines(c.code, t.Span)
	}
	c.BaseVisitor.VisitToken(t)
}

func (c *metricsCounter) VisitComment(_ *tree.SyntaxToken, tr token.Trivia) {
	markLines(c.comments, tr.Span)
}

func markLines(lines map[int]bool, span token.Span) {
	for l := span.Start.Line; l <= span.End.Line; l++ {
		lines[l] = true
	}
}
