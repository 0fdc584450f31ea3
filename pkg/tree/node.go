// Package tree defines the concrete syntax tree produced by the parser.
//
// Every node owns its children exclusively and never changes after the
// parser has built it. Leaves wrap a single *SyntaxToken, and tokens keep
// the whitespace and comments that precede them, so the source of any
// subtree can be reconstructed byte for byte with FullText.
//
// Traversal uses double dispatch: Node.Accept calls the Visitor method for
// the node's kind. Embed BaseVisitor to get the default behaviour of
// scanning children, and override only the kinds you need:
//
//	type counter struct {
//		tree.BaseVisitor
//		rulesets int
//	}
//
//	func (c *counter) VisitRuleset(n *tree.Ruleset) {
//		c.rulesets++
//		c.ScanChildren(n)
//	}
//
//	c := &counter{}
//	c.Bind(c)
//	tree.Walk(c, sheet)
package tree

import "github.com/leapstack-labs/leapcss/pkg/token"

// Node is implemented by every tree node, tokens included.
type Node interface {
	// Kind returns the production the node was built from.
	Kind() Kind
	// Children returns the direct children in source order.
	Children() []Node
	// Span covers the node's tokens, leading trivia excluded.
	Span() token.Span
	// Accept calls the visitor method matching the node's kind.
	Accept(v Visitor)
}

// SyntaxToken is a token placed in the tree.
type SyntaxToken struct {
	token.Token
}

// NewToken wraps tok as a tree node.
func NewToken(tok token.Token) *SyntaxToken {
	return &SyntaxToken{Token: tok}
}

// Kind implements Node.
func (*SyntaxToken) Kind() Kind { return KindToken }

// Children implements Node. Tokens are leaves; their trivia is reached
// through Visitor.VisitToken.
func (*SyntaxToken) Children() []Node { return nil }

// Span implements Node.
func (t *SyntaxToken) Span() token.Span { return t.Token.Span }

// Accept implements Node.
func (t *SyntaxToken) Accept(v Visitor) { v.VisitToken(t) }

// Text returns the token text without trivia.
func (t *SyntaxToken) Text() string {
	if t == nil {
		return ""
	}
	return t.Literal
}

// Comments returns the comment trivia preceding the token.
func (t *SyntaxToken) Comments() []token.Trivia {
	var out []token.Trivia
	for _, tr := range t.Trivia {
		if tr.IsComment() {
			out = append(out, tr)
		}
	}
	return out
}

// appendNode appends n unless it is a nil pointer.
func appendNode[T any, P interface {
	*T
	Node
}](out []Node, n P) []Node {
	if n == nil {
		return out
	}
	return append(out, n)
}

// spanOf joins the spans of the given nodes.
func spanOf(nodes []Node) token.Span {
	var s token.Span
	for _, n := range nodes {
		s = s.Join(n.Span())
	}
	return s
}

// leaf is embedded by nodes that wrap exactly one token.
type leaf struct {
	Token *SyntaxToken
}

// Children implements Node.
func (l *leaf) Children() []Node { return []Node{l.Token} }

// Span implements Node.
func (l *leaf) Span() token.Span { return l.Token.Span() }

// Text returns the wrapped token text.
func (l *leaf) Text() string { return l.Token.Text() }

// collect returns the nodes of type T found directly in items.
func collect[T Node](items []Node) []T {
	var out []T
	for _, n := range items {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
