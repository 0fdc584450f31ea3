package tree

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/token"
)

// Selectors is a comma separated selector list.
type Selectors struct {
	Items []Node // *Selector and comma tokens
}

// NewSelectors builds a selector list.
func NewSelectors(items []Node) *Selectors { return &Selectors{Items: items} }

// Kind implements Node.
func (*Selectors) Kind() Kind { return KindSelectors }

// Children implements Node.
func (s *Selectors) Children() []Node { return s.Items }

// Span implements Node.
func (s *Selectors) Span() token.Span { return spanOf(s.Items) }

// Accept implements Node.
func (s *Selectors) Accept(v Visitor) { v.VisitSelectors(s) }

// Selectors returns the selectors of the list without separators.
func (s *Selectors) Selectors() []*Selector { return collect[*Selector](s.Items) }

// Selector is a chain of compound selectors joined by combinators.
type Selector struct {
	Items []Node // *CompoundSelector and *SelectorCombinator
}

// NewSelector builds a complex selector.
func NewSelector(items []Node) *Selector { return &Selector{Items: items} }

// Kind implements Node.
func (*Selector) Kind() Kind { return KindSelector }

// Children implements Node.
func (s *Selector) Children() []Node { return s.Items }

// Span implements Node.
func (s *Selector) Span() token.Span { return spanOf(s.Items) }

// Accept implements Node.
func (s *Selector) Accept(v Visitor) { v.VisitSelector(s) }

// Compounds returns the compound selectors of the chain.
func (s *Selector) Compounds() []*CompoundSelector { return collect[*CompoundSelector](s.Items) }

// CompoundSelector is a sequence of simple selectors with no combinator
// between them, such as "a.link:hover".
type CompoundSelector struct {
	Items []Node
}

// NewCompoundSelector builds a compound selector.
func NewCompoundSelector(items []Node) *CompoundSelector { return &CompoundSelector{Items: items} }

// Kind implements Node.
func (*CompoundSelector) Kind() Kind { return KindCompoundSelector }

// Children implements Node.
func (c *CompoundSelector) Children() []Node { return c.Items }

// Span implements Node.
func (c *CompoundSelector) Span() token.Span { return spanOf(c.Items) }

// Accept implements Node.
func (c *CompoundSelector) Accept(v Visitor) { v.VisitCompoundSelector(c) }

// CombinatorType distinguishes selector combinators.
type CombinatorType int

// Combinator types.
const (
	Descendant        CombinatorType = iota // whitespace
	Child                                   // >
	NextSibling                             // +
	SubsequentSibling                       // ~
)

func (c CombinatorType) String() string {
	switch c {
	case Child:
		return ">"
	case NextSibling:
		return "+"
	case SubsequentSibling:
		return "~"
	default:
		return " "
	}
}

// SelectorCombinator joins two compound selectors. The descendant
// combinator has no token: it is the whitespace trivia of the next compound.
type SelectorCombinator struct {
	Token *SyntaxToken // nil for Descendant
	Type  CombinatorType
}

// NewSelectorCombinator builds a combinator from its token, or a
// descendant combinator when tok is nil.
func NewSelectorCombinator(tok *SyntaxToken) *SelectorCombinator {
	c := &SelectorCombinator{Token: tok}
	switch tok.Text() {
	case ">":
		c.Type = Child
	case "+":
		c.Type = NextSibling
	case "~":
		c.Type = SubsequentSibling
	}
	return c
}

// Kind implements Node.
func (*SelectorCombinator) Kind() Kind { return KindSelectorCombinator }

// Children implements Node.
func (c *SelectorCombinator) Children() []Node { return appendNode(nil, c.Token) }

// Span implements Node.
func (c *SelectorCombinator) Span() token.Span {
	if c.Token == nil {
		return token.Span{}
	}
	return c.Token.Span()
}

// Accept implements Node.
func (c *SelectorCombinator) Accept(v Visitor) { v.VisitSelectorCombinator(c) }

// ---------- Simple selectors ----------

// Namespace is the "prefix|" part of a type or attribute selector.
type Namespace struct {
	Prefix *SyntaxToken // identifier or '*', nil for "|name"
	Bar    *SyntaxToken
}

// NewNamespace builds a namespace prefix.
func NewNamespace(prefix, bar *SyntaxToken) *Namespace { return &Namespace{Prefix: prefix, Bar: bar} }

// Kind implements Node.
func (*Namespace) Kind() Kind { return KindNamespace }

// Children implements Node.
func (n *Namespace) Children() []Node { return appendNode(appendNode(nil, n.Prefix), n.Bar) }

// Span implements Node.
func (n *Namespace) Span() token.Span { return spanOf(n.Children()) }

// Accept implements Node.
func (n *Namespace) Accept(v Visitor) { v.VisitNamespace(n) }

// TypeSelector is an element name, '*', or the Less parent selector '&'.
type TypeSelector struct {
	Namespace *Namespace
	Name      *SyntaxToken
}

// NewTypeSelector builds a type selector.
func NewTypeSelector(ns *Namespace, name *SyntaxToken) *TypeSelector {
	return &TypeSelector{Namespace: ns, Name: name}
}

// Kind implements Node.
func (*TypeSelector) Kind() Kind { return KindTypeSelector }

// Children implements Node.
func (t *TypeSelector) Children() []Node { return appendNode(appendNode(nil, t.Namespace), t.Name) }

// Span implements Node.
func (t *TypeSelector) Span() token.Span { return spanOf(t.Children()) }

// Accept implements Node.
func (t *TypeSelector) Accept(v Visitor) { v.VisitTypeSelector(t) }

// ClassSelector is ".name".
type ClassSelector struct {
	Dot  *SyntaxToken
	Name *SyntaxToken
}

// NewClassSelector builds a class selector.
func NewClassSelector(dot, name *SyntaxToken) *ClassSelector {
	return &ClassSelector{Dot: dot, Name: name}
}

// Kind implements Node.
func (*ClassSelector) Kind() Kind { return KindClassSelector }

// Children implements Node.
func (c *ClassSelector) Children() []Node { return []Node{c.Dot, c.Name} }

// Span implements Node.
func (c *ClassSelector) Span() token.Span { return spanOf(c.Children()) }

// Accept implements Node.
func (c *ClassSelector) Accept(v Visitor) { v.VisitClassSelector(c) }

// ClassName returns the class name without the dot.
func (c *ClassSelector) ClassName() string { return c.Name.Text() }

// IdSelector is "#name".
type IdSelector struct{ leaf }

// NewIdSelector wraps a HASH token used as a selector.
func NewIdSelector(tok *SyntaxToken) *IdSelector { return &IdSelector{leaf{tok}} }

// Kind implements Node.
func (*IdSelector) Kind() Kind { return KindIdSelector }

// Accept implements Node.
func (s *IdSelector) Accept(v Visitor) { v.VisitIdSelector(s) }

// IdName returns the id without '#'.
func (s *IdSelector) IdName() string { return strings.TrimPrefix(s.Text(), "#") }

// PseudoSelector is ":name", "::name" or ":name(args)".
type PseudoSelector struct {
	Colons []*SyntaxToken // one or two
	Body   Node           // *PseudoIdentifier or *PseudoFunction
}

// NewPseudoSelector builds a pseudo-class or pseudo-element.
func NewPseudoSelector(colons []*SyntaxToken, body Node) *PseudoSelector {
	return &PseudoSelector{Colons: colons, Body: body}
}

// Kind implements Node.
func (*PseudoSelector) Kind() Kind { return KindPseudoSelector }

// Children implements Node.
func (p *PseudoSelector) Children() []Node {
	out := make([]Node, 0, len(p.Colons)+1)
	for _, c := range p.Colons {
		out = append(out, c)
	}
	return append(out, p.Body)
}

// Span implements Node.
func (p *PseudoSelector) Span() token.Span { return spanOf(p.Children()) }

// Accept implements Node.
func (p *PseudoSelector) Accept(v Visitor) { v.VisitPseudoSelector(p) }

// IsElement reports whether the selector uses the "::" form.
func (p *PseudoSelector) IsElement() bool { return len(p.Colons) == 2 }

// PseudoIdentifier is the name of an argument-less pseudo selector.
type PseudoIdentifier struct{ leaf }

// NewPseudoIdentifier wraps an IDENT token.
func NewPseudoIdentifier(tok *SyntaxToken) *PseudoIdentifier { return &PseudoIdentifier{leaf{tok}} }

// Kind implements Node.
func (*PseudoIdentifier) Kind() Kind { return KindPseudoIdentifier }

// Accept implements Node.
func (p *PseudoIdentifier) Accept(v Visitor) { v.VisitPseudoIdentifier(p) }

// PseudoFunction is "name(args)" after a colon. Args holds a single
// *Selectors for selector arguments such as :not(), and value items
// otherwise.
type PseudoFunction struct {
	Name  *SyntaxToken
	Open  *SyntaxToken
	Args  []Node
	Close *SyntaxToken
}

// NewPseudoFunction builds a functional pseudo selector.
func NewPseudoFunction(name, open *SyntaxToken, args []Node, closing *SyntaxToken) *PseudoFunction {
	return &PseudoFunction{Name: name, Open: open, Args: args, Close: closing}
}

// Kind implements Node.
func (*PseudoFunction) Kind() Kind { return KindPseudoFunction }

// Children implements Node.
func (p *PseudoFunction) Children() []Node {
	out := make([]Node, 0, len(p.Args)+3)
	out = append(out, p.Name, p.Open)
	out = append(out, p.Args...)
	return append(out, p.Close)
}

// Span implements Node.
func (p *PseudoFunction) Span() token.Span { return spanOf(p.Children()) }

// Accept implements Node.
func (p *PseudoFunction) Accept(v Visitor) { v.VisitPseudoFunction(p) }

// AttributeSelector is "[ns|name op value flag]".
type AttributeSelector struct {
	Open      *SyntaxToken
	Namespace *Namespace
	Name      *SyntaxToken
	Matcher   *AttributeMatcherExpression // nil for "[name]"
	Close     *SyntaxToken
}

// NewAttributeSelector builds an attribute selector.
func NewAttributeSelector(open *SyntaxToken, ns *Namespace, name *SyntaxToken, m *AttributeMatcherExpression, closing *SyntaxToken) *AttributeSelector {
	return &AttributeSelector{Open: open, Namespace: ns, Name: name, Matcher: m, Close: closing}
}

// Kind implements Node.
func (*AttributeSelector) Kind() Kind { return KindAttributeSelector }

// Children implements Node.
func (a *AttributeSelector) Children() []Node {
	out := []Node{a.Open}
	out = appendNode(out, a.Namespace)
	out = append(out, a.Name)
	out = appendNode(out, a.Matcher)
	return append(out, a.Close)
}

// Span implements Node.
func (a *AttributeSelector) Span() token.Span { return spanOf(a.Children()) }

// Accept implements Node.
func (a *AttributeSelector) Accept(v Visitor) { v.VisitAttributeSelector(a) }

// AttributeMatcherExpression is "op value [flag]" inside an attribute selector.
type AttributeMatcherExpression struct {
	Matcher *AttributeMatcher
	Value   Node // *Identifier or *StringLiteral
	Flag    *CaseInsensitiveFlag
}

// NewAttributeMatcherExpression builds the matching part of an attribute selector.
func NewAttributeMatcherExpression(m *AttributeMatcher, value Node, flag *CaseInsensitiveFlag) *AttributeMatcherExpression {
	return &AttributeMatcherExpression{Matcher: m, Value: value, Flag: flag}
}

// Kind implements Node.
func (*AttributeMatcherExpression) Kind() Kind { return KindAttributeMatcherExpression }

// Children implements Node.
func (e *AttributeMatcherExpression) Children() []Node {
	return appendNode([]Node{e.Matcher, e.Value}, e.Flag)
}

// Span implements Node.
func (e *AttributeMatcherExpression) Span() token.Span { return spanOf(e.Children()) }

// Accept implements Node.
func (e *AttributeMatcherExpression) Accept(v Visitor) { v.VisitAttributeMatcherExpression(e) }

// AttributeMatcher is one of = ~= |= ^= $= *=.
type AttributeMatcher struct{ leaf }

// NewAttributeMatcher wraps the operator token.
func NewAttributeMatcher(tok *SyntaxToken) *AttributeMatcher { return &AttributeMatcher{leaf{tok}} }

// Kind implements Node.
func (*AttributeMatcher) Kind() Kind { return KindAttributeMatcher }

// Accept implements Node.
func (m *AttributeMatcher) Accept(v Visitor) { v.VisitAttributeMatcher(m) }

// CaseInsensitiveFlag is the trailing "i" or "s" of an attribute selector.
type CaseInsensitiveFlag struct{ leaf }

// NewCaseInsensitiveFlag wraps the flag identifier.
func NewCaseInsensitiveFlag(tok *SyntaxToken) *CaseInsensitiveFlag {
	return &CaseInsensitiveFlag{leaf{tok}}
}

// Kind implements Node.
func (*CaseInsensitiveFlag) Kind() Kind { return KindCaseInsensitiveFlag }

// Accept implements Node.
func (f *CaseInsensitiveFlag) Accept(v Visitor) { v.VisitCaseInsensitiveFlag(f) }

// KeyframesSelector is a keyframe offset: "from", "to" or a percentage.
type KeyframesSelector struct {
	Value Node // *Identifier or *Percentage
}

// NewKeyframesSelector builds a keyframe offset.
func NewKeyframesSelector(value Node) *KeyframesSelector { return &KeyframesSelector{Value: value} }

// Kind implements Node.
func (*KeyframesSelector) Kind() Kind { return KindKeyframesSelector }

// Children implements Node.
func (k *KeyframesSelector) Children() []Node { return []Node{k.Value} }

// Span implements Node.
func (k *KeyframesSelector) Span() token.Span { return k.Value.Span() }

// Accept implements Node.
func (k *KeyframesSelector) Accept(v Visitor) { v.VisitKeyframesSelector(k) }
