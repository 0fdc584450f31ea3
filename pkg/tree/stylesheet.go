package tree

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
	"github.com/leapstack-labs/leapcss/pkg/token"
)

// ---------- Stylesheet ----------

// StyleSheet is the root of every tree.
type StyleSheet struct {
	BOM   *SyntaxToken // optional byte order mark
	Items []Node       // *AtRule, *Ruleset, *Declarations (Less variables, stray semicolons)
	EOF   *SyntaxToken // carries the trailing trivia
}

// Kind implements Node.
func (*StyleSheet) Kind() Kind { return KindStyleSheet }

// Children implements Node.
func (s *StyleSheet) Children() []Node {
	out := appendNode(make([]Node, 0, len(s.Items)+2), s.BOM)
	out = append(out, s.Items...)
	return appendNode(out, s.EOF)
}

// Span implements Node.
func (s *StyleSheet) Span() token.Span { return spanOf(s.Children()) }

// Accept implements Node.
func (s *StyleSheet) Accept(v Visitor) { v.VisitStyleSheet(s) }

// AtRules returns the top-level at-rules.
func (s *StyleSheet) AtRules() []*AtRule { return collect[*AtRule](s.Items) }

// Rulesets returns the top-level rulesets.
func (s *StyleSheet) Rulesets() []*Ruleset { return collect[*Ruleset](s.Items) }

// VariableDeclarations returns the top-level Less variable declarations.
func (s *StyleSheet) VariableDeclarations() []*VariableDeclaration {
	var out []*VariableDeclaration
	for _, d := range collect[*Declarations](s.Items) {
		out = append(out, d.VariableDeclarations()...)
	}
	return out
}

// ---------- At-rules ----------

// AtKeyword is the "@name" token starting an at-rule.
type AtKeyword struct{ leaf }

// NewAtKeyword wraps an AT-KEYWORD token.
func NewAtKeyword(tok *SyntaxToken) *AtKeyword { return &AtKeyword{leaf{tok}} }

// Kind implements Node.
func (*AtKeyword) Kind() Kind { return KindAtKeyword }

// Accept implements Node.
func (k *AtKeyword) Accept(v Visitor) { v.VisitAtKeyword(k) }

// Name returns the keyword without the leading '@'.
func (k *AtKeyword) Name() string { return strings.TrimPrefix(k.Text(), "@") }

// AtRule is "@keyword prelude { block }" or "@keyword prelude;".
type AtRule struct {
	Keyword   *AtKeyword
	Prelude   []Node
	Block     *AtRuleBlock // nil for statement at-rules
	Semicolon *SyntaxToken // optional terminator

	standard catalog.Entry
}

// NewAtRule builds an at-rule and classifies its keyword against cat.
func NewAtRule(cat *catalog.Catalog, kw *AtKeyword, prelude []Node, block *AtRuleBlock, semi *SyntaxToken) *AtRule {
	return &AtRule{
		Keyword:   kw,
		Prelude:   prelude,
		Block:     block,
		Semicolon: semi,
		standard:  cat.AtRule(kw.Name()),
	}
}

// Kind implements Node.
func (*AtRule) Kind() Kind { return KindAtRule }

// Children implements Node.
func (r *AtRule) Children() []Node {
	out := appendNode(make([]Node, 0, len(r.Prelude)+3), r.Keyword)
	out = append(out, r.Prelude...)
	out = appendNode(out, r.Block)
	return appendNode(out, r.Semicolon)
}

// Span implements Node.
func (r *AtRule) Span() token.Span { return spanOf(r.Children()) }

// Accept implements Node.
func (r *AtRule) Accept(v Visitor) { v.VisitAtRule(r) }

// Name returns the at-rule name as written, without '@'.
func (r *AtRule) Name() string { return r.Keyword.Name() }

// Vendor returns the vendor prefix of the name, if any.
func (r *AtRule) Vendor() catalog.Vendor { return r.standard.Vendor }

// IsVendorPrefixed reports whether the name carries a vendor prefix.
func (r *AtRule) IsVendorPrefixed() bool { return r.standard.IsVendorPrefixed() }

// Standard returns the catalog classification of the name.
func (r *AtRule) Standard() catalog.Entry { return r.standard }

// Is reports whether the at-rule is the named standard at-rule,
// ignoring any vendor prefix.
func (r *AtRule) Is(name string) bool {
	return r.standard.Descriptor != nil && r.standard.Descriptor.Name == name
}

// blockContent holds the items of a braced block and their partition.
type blockContent struct {
	Open    *SyntaxToken
	Content []Node // *Declarations, *AtRule, *Ruleset
	Close   *SyntaxToken

	propertyDeclarations []*PropertyDeclaration
	variableDeclarations []*VariableDeclaration
	atRules              []*AtRule
	rulesets             []*Ruleset
}

func newBlockContent(open *SyntaxToken, content []Node, closing *SyntaxToken) blockContent {
	b := blockContent{Open: open, Content: content, Close: closing}
	for _, n := range content {
		switch n := n.(type) {
		case *Declarations:
			b.propertyDeclarations = append(b.propertyDeclarations, n.PropertyDeclarations()...)
			b.variableDeclarations = append(b.variableDeclarations, n.VariableDeclarations()...)
		case *AtRule:
			b.atRules = append(b.atRules, n)
		case *Ruleset:
			b.rulesets = append(b.rulesets, n)
		}
	}
	return b
}

// Children implements Node.
func (b *blockContent) Children() []Node {
	out := appendNode(make([]Node, 0, len(b.Content)+2), b.Open)
	out = append(out, b.Content...)
	return appendNode(out, b.Close)
}

// Span implements Node.
func (b *blockContent) Span() token.Span { return spanOf(b.Children()) }

// PropertyDeclarations returns the property declarations of the block.
func (b *blockContent) PropertyDeclarations() []*PropertyDeclaration { return b.propertyDeclarations }

// VariableDeclarations returns the Less variable declarations of the block.
func (b *blockContent) VariableDeclarations() []*VariableDeclaration { return b.variableDeclarations }

// AtRules returns the at-rules nested in the block.
func (b *blockContent) AtRules() []*AtRule { return b.atRules }

// Rulesets returns the rulesets nested in the block.
func (b *blockContent) Rulesets() []*Ruleset { return b.rulesets }

// IsEmpty reports whether the block has no declaration, at-rule or ruleset.
func (b *blockContent) IsEmpty() bool {
	return len(b.propertyDeclarations) == 0 && len(b.variableDeclarations) == 0 &&
		len(b.atRules) == 0 && len(b.rulesets) == 0
}

// AtRuleBlock is the braced body of an at-rule.
type AtRuleBlock struct{ blockContent }

// NewAtRuleBlock builds the block and partitions its content.
func NewAtRuleBlock(open *SyntaxToken, content []Node, closing *SyntaxToken) *AtRuleBlock {
	return &AtRuleBlock{newBlockContent(open, content, closing)}
}

// Kind implements Node.
func (*AtRuleBlock) Kind() Kind { return KindAtRuleBlock }

// Accept implements Node.
func (b *AtRuleBlock) Accept(v Visitor) { v.VisitAtRuleBlock(b) }

// ---------- Rulesets ----------

// Ruleset is an optional selector list followed by a block.
type Ruleset struct {
	Selectors *Selectors // nil for a bare block
	Block     *RulesetBlock
}

// NewRuleset builds a ruleset.
func NewRuleset(selectors *Selectors, block *RulesetBlock) *Ruleset {
	return &Ruleset{Selectors: selectors, Block: block}
}

// Kind implements Node.
func (*Ruleset) Kind() Kind { return KindRuleset }

// Children implements Node.
func (r *Ruleset) Children() []Node {
	return appendNode(appendNode(make([]Node, 0, 2), r.Selectors), r.Block)
}

// Span implements Node.
func (r *Ruleset) Span() token.Span { return spanOf(r.Children()) }

// Accept implements Node.
func (r *Ruleset) Accept(v Visitor) { v.VisitRuleset(r) }

// RulesetBlock is the braced body of a ruleset.
type RulesetBlock struct{ blockContent }

// NewRulesetBlock builds the block and partitions its content.
func NewRulesetBlock(open *SyntaxToken, content []Node, closing *SyntaxToken) *RulesetBlock {
	return &RulesetBlock{newBlockContent(open, content, closing)}
}

// Kind implements Node.
func (*RulesetBlock) Kind() Kind { return KindRulesetBlock }

// Accept implements Node.
func (b *RulesetBlock) Accept(v Visitor) { v.VisitRulesetBlock(b) }

// ---------- Declarations ----------

// Declarations is a run of declarations and the semicolons between them.
// Stray semicolons are kept as tokens.
type Declarations struct {
	Items []Node // *PropertyDeclaration, *VariableDeclaration, *SyntaxToken
}

// NewDeclarations builds a declaration run.
func NewDeclarations(items []Node) *Declarations { return &Declarations{Items: items} }

// Kind implements Node.
func (*Declarations) Kind() Kind { return KindDeclarations }

// Children implements Node.
func (d *Declarations) Children() []Node { return d.Items }

// Span implements Node.
func (d *Declarations) Span() token.Span { return spanOf(d.Items) }

// Accept implements Node.
func (d *Declarations) Accept(v Visitor) { v.VisitDeclarations(d) }

// PropertyDeclarations returns the property declarations of the run.
func (d *Declarations) PropertyDeclarations() []*PropertyDeclaration {
	return collect[*PropertyDeclaration](d.Items)
}

// VariableDeclarations returns the Less variable declarations of the run.
func (d *Declarations) VariableDeclarations() []*VariableDeclaration {
	return collect[*VariableDeclaration](d.Items)
}

// PropertyDeclaration is "property: value".
type PropertyDeclaration struct {
	Property *Property
	Colon    *SyntaxToken
	Value    *Value
}

// NewPropertyDeclaration builds a property declaration.
func NewPropertyDeclaration(p *Property, colon *SyntaxToken, value *Value) *PropertyDeclaration {
	return &PropertyDeclaration{Property: p, Colon: colon, Value: value}
}

// Kind implements Node.
func (*PropertyDeclaration) Kind() Kind { return KindPropertyDeclaration }

// Children implements Node.
func (d *PropertyDeclaration) Children() []Node {
	return []Node{d.Property, d.Colon, d.Value}
}

// Span implements Node.
func (d *PropertyDeclaration) Span() token.Span { return spanOf(d.Children()) }

// Accept implements Node.
func (d *PropertyDeclaration) Accept(v Visitor) { v.VisitPropertyDeclaration(d) }

// IsImportant reports whether the value carries !important.
func (d *PropertyDeclaration) IsImportant() bool { return d.Value.Important() != nil }

// VariableDeclaration is the Less "@name: value".
type VariableDeclaration struct {
	Variable *Variable
	Colon    *SyntaxToken
	Value    *Value
}

// NewVariableDeclaration builds a variable declaration.
func NewVariableDeclaration(variable *Variable, colon *SyntaxToken, value *Value) *VariableDeclaration {
	return &VariableDeclaration{Variable: variable, Colon: colon, Value: value}
}

// Kind implements Node.
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// Children implements Node.
func (d *VariableDeclaration) Children() []Node {
	return []Node{d.Variable, d.Colon, d.Value}
}

// Span implements Node.
func (d *VariableDeclaration) Span() token.Span { return spanOf(d.Children()) }

// Accept implements Node.
func (d *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(d) }

// Property is a declaration name, with an optional '*' IE hack prefix.
// The '_' hack is a valid identifier start, so "_color" is the name itself.
type Property struct {
	Hack  *SyntaxToken
	Token *SyntaxToken

	standard catalog.Entry
}

// NewProperty builds a property and classifies its name against cat.
func NewProperty(cat *catalog.Catalog, hack, name *SyntaxToken) *Property {
	return &Property{Hack: hack, Token: name, standard: cat.Property(name.Text())}
}

// Kind implements Node.
func (*Property) Kind() Kind { return KindProperty }

// Children implements Node.
func (p *Property) Children() []Node {
	return appendNode(appendNode(make([]Node, 0, 2), p.Hack), p.Token)
}

// Span implements Node.
func (p *Property) Span() token.Span { return spanOf(p.Children()) }

// Accept implements Node.
func (p *Property) Accept(v Visitor) { v.VisitProperty(p) }

// Name returns the property name as written.
func (p *Property) Name() string { return p.Token.Text() }

// Vendor returns the vendor prefix of the name, if any.
func (p *Property) Vendor() catalog.Vendor { return p.standard.Vendor }

// IsVendorPrefixed reports whether the name carries a vendor prefix.
func (p *Property) IsVendorPrefixed() bool { return p.standard.IsVendorPrefixed() }

// IsCustom reports whether the property is a "--name" custom property.
func (p *Property) IsCustom() bool { return strings.HasPrefix(p.Name(), "--") }

// Standard returns the catalog classification of the name.
func (p *Property) Standard() catalog.Entry { return p.standard }

// Is reports whether the property is the named standard property,
// ignoring any vendor prefix.
func (p *Property) Is(name string) bool {
	return p.standard.Descriptor != nil && p.standard.Descriptor.Name == name
}
