package tree

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
	"github.com/leapstack-labs/leapcss/pkg/token"
)

// Value is the right-hand side of a declaration, or an at-rule prelude
// item list.
type Value struct {
	Items []Node
}

// NewValue builds a value.
func NewValue(items []Node) *Value { return &Value{Items: items} }

// Kind implements Node.
func (*Value) Kind() Kind { return KindValue }

// Children implements Node.
func (v *Value) Children() []Node { return v.Items }

// Span implements Node.
func (v *Value) Span() token.Span { return spanOf(v.Items) }

// Accept implements Node.
func (v *Value) Accept(vis Visitor) { vis.VisitValue(v) }

// Important returns the !important flag, or nil.
func (v *Value) Important() *Important {
	for _, n := range v.Items {
		if imp, ok := n.(*Important); ok {
			return imp
		}
	}
	return nil
}

// Functions returns the functions found directly in the value.
func (v *Value) Functions() []*Function { return collect[*Function](v.Items) }

// Uris returns the url() items found directly in the value.
func (v *Value) Uris() []*Uri { return collect[*Uri](v.Items) }

// Function is "name(args)".
type Function struct {
	Name  *SyntaxToken
	Open  *SyntaxToken
	Args  []Node
	Close *SyntaxToken

	standard catalog.Entry
}

// NewFunction builds a function and classifies its name against cat.
func NewFunction(cat *catalog.Catalog, name, open *SyntaxToken, args []Node, closing *SyntaxToken) *Function {
	return &Function{Name: name, Open: open, Args: args, Close: closing, standard: cat.Function(name.Text())}
}

// Kind implements Node.
func (*Function) Kind() Kind { return KindFunction }

// Children implements Node.
func (f *Function) Children() []Node {
	out := make([]Node, 0, len(f.Args)+3)
	out = append(out, f.Name, f.Open)
	out = append(out, f.Args...)
	return append(out, f.Close)
}

// Span implements Node.
func (f *Function) Span() token.Span { return spanOf(f.Children()) }

// Accept implements Node.
func (f *Function) Accept(v Visitor) { v.VisitFunction(f) }

// FunctionName returns the function name as written.
func (f *Function) FunctionName() string { return f.Name.Text() }

// Vendor returns the vendor prefix of the name, if any.
func (f *Function) Vendor() catalog.Vendor { return f.standard.Vendor }

// IsVendorPrefixed reports whether the name carries a vendor prefix.
func (f *Function) IsVendorPrefixed() bool { return f.standard.IsVendorPrefixed() }

// Standard returns the catalog classification of the name.
func (f *Function) Standard() catalog.Entry { return f.standard }

// ParenthesisBlock is "( items )".
type ParenthesisBlock struct {
	Open  *SyntaxToken
	Items []Node
	Close *SyntaxToken
}

// NewParenthesisBlock builds a parenthesised group.
func NewParenthesisBlock(open *SyntaxToken, items []Node, closing *SyntaxToken) *ParenthesisBlock {
	return &ParenthesisBlock{Open: open, Items: items, Close: closing}
}

// Kind implements Node.
func (*ParenthesisBlock) Kind() Kind { return KindParenthesisBlock }

// Children implements Node.
func (b *ParenthesisBlock) Children() []Node { return wrap(b.Open, b.Items, b.Close) }

// Span implements Node.
func (b *ParenthesisBlock) Span() token.Span { return spanOf(b.Children()) }

// Accept implements Node.
func (b *ParenthesisBlock) Accept(v Visitor) { v.VisitParenthesisBlock(b) }

// BracketBlock is "[ items ]" in a value, such as a grid line name.
type BracketBlock struct {
	Open  *SyntaxToken
	Items []Node
	Close *SyntaxToken
}

// NewBracketBlock builds a bracketed group.
func NewBracketBlock(open *SyntaxToken, items []Node, closing *SyntaxToken) *BracketBlock {
	return &BracketBlock{Open: open, Items: items, Close: closing}
}

// Kind implements Node.
func (*BracketBlock) Kind() Kind { return KindBracketBlock }

// Children implements Node.
func (b *BracketBlock) Children() []Node { return wrap(b.Open, b.Items, b.Close) }

// Span implements Node.
func (b *BracketBlock) Span() token.Span { return spanOf(b.Children()) }

// Accept implements Node.
func (b *BracketBlock) Accept(v Visitor) { v.VisitBracketBlock(b) }

func wrap(open *SyntaxToken, items []Node, closing *SyntaxToken) []Node {
	out := make([]Node, 0, len(items)+2)
	out = append(out, open)
	out = append(out, items...)
	return append(out, closing)
}

// Uri is "url(content)". Content is an *UriContent, a *StringLiteral,
// or nil for "url()".
type Uri struct {
	Name    *SyntaxToken
	Open    *SyntaxToken
	Content Node
	Close   *SyntaxToken
}

// NewUri builds a url() item.
func NewUri(name, open *SyntaxToken, content Node, closing *SyntaxToken) *Uri {
	return &Uri{Name: name, Open: open, Content: content, Close: closing}
}

// Kind implements Node.
func (*Uri) Kind() Kind { return KindUri }

// Children implements Node.
func (u *Uri) Children() []Node {
	if u.Content == nil {
		return []Node{u.Name, u.Open, u.Close}
	}
	return []Node{u.Name, u.Open, u.Content, u.Close}
}

// Span implements Node.
func (u *Uri) Span() token.Span { return spanOf(u.Children()) }

// Accept implements Node.
func (u *Uri) Accept(v Visitor) { v.VisitUri(u) }

// URL returns the referenced address without quotes.
func (u *Uri) URL() string {
	switch c := u.Content.(type) {
	case *UriContent:
		return c.Text()
	case *StringLiteral:
		return c.Unquoted()
	}
	return ""
}

// UriContent is the unquoted address inside url().
type UriContent struct{ leaf }

// NewUriContent wraps a URI-CONTENT token.
func NewUriContent(tok *SyntaxToken) *UriContent { return &UriContent{leaf{tok}} }

// Kind implements Node.
func (*UriContent) Kind() Kind { return KindUriContent }

// Accept implements Node.
func (u *UriContent) Accept(v Visitor) { v.VisitUriContent(u) }

// ---------- Leaves ----------

// Identifier is a bare identifier in a value.
type Identifier struct{ leaf }

// NewIdentifier wraps an IDENT token.
func NewIdentifier(tok *SyntaxToken) *Identifier { return &Identifier{leaf{tok}} }

// Kind implements Node.
func (*Identifier) Kind() Kind { return KindIdentifier }

// Accept implements Node.
func (i *Identifier) Accept(v Visitor) { v.VisitIdentifier(i) }

// StringLiteral is a quoted string.
type StringLiteral struct{ leaf }

// NewStringLiteral wraps a STRING token.
func NewStringLiteral(tok *SyntaxToken) *StringLiteral { return &StringLiteral{leaf{tok}} }

// Kind implements Node.
func (*StringLiteral) Kind() Kind { return KindStringLiteral }

// Accept implements Node.
func (s *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(s) }

// Unquoted returns the string without its delimiting quotes.
func (s *StringLiteral) Unquoted() string {
	text := s.Text()
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		return text[1 : len(text)-1]
	}
	return text
}

// Number is a numeric literal.
type Number struct{ leaf }

// NewNumber wraps a NUMBER token.
func NewNumber(tok *SyntaxToken) *Number { return &Number{leaf{tok}} }

// Kind implements Node.
func (*Number) Kind() Kind { return KindNumber }

// Accept implements Node.
func (n *Number) Accept(v Visitor) { v.VisitNumber(n) }

// Unit is the unit of a dimension.
type Unit struct{ leaf }

// NewUnit wraps a UNIT token.
func NewUnit(tok *SyntaxToken) *Unit { return &Unit{leaf{tok}} }

// Kind implements Node.
func (*Unit) Kind() Kind { return KindUnit }

// Accept implements Node.
func (u *Unit) Accept(v Visitor) { v.VisitUnit(u) }

// Dimension is a number immediately followed by a unit.
type Dimension struct {
	Number *Number
	Unit   *Unit
}

// NewDimension builds a dimension.
func NewDimension(number *Number, unit *Unit) *Dimension {
	return &Dimension{Number: number, Unit: unit}
}

// Kind implements Node.
func (*Dimension) Kind() Kind { return KindDimension }

// Children implements Node.
func (d *Dimension) Children() []Node { return []Node{d.Number, d.Unit} }

// Span implements Node.
func (d *Dimension) Span() token.Span { return spanOf(d.Children()) }

// Accept implements Node.
func (d *Dimension) Accept(v Visitor) { v.VisitDimension(d) }

// Percentage is a number immediately followed by '%'.
type Percentage struct {
	Number  *Number
	Percent *SyntaxToken
}

// NewPercentage builds a percentage.
func NewPercentage(number *Number, percent *SyntaxToken) *Percentage {
	return &Percentage{Number: number, Percent: percent}
}

// Kind implements Node.
func (*Percentage) Kind() Kind { return KindPercentage }

// Children implements Node.
func (p *Percentage) Children() []Node { return []Node{p.Number, p.Percent} }

// Span implements Node.
func (p *Percentage) Span() token.Span { return spanOf(p.Children()) }

// Accept implements Node.
func (p *Percentage) Accept(v Visitor) { v.VisitPercentage(p) }

// Hash is "#" followed by a name, usually a colour.
type Hash struct{ leaf }

// NewHash wraps a HASH token.
func NewHash(tok *SyntaxToken) *Hash { return &Hash{leaf{tok}} }

// Kind implements Node.
func (*Hash) Kind() Kind { return KindHash }

// Accept implements Node.
func (h *Hash) Accept(v Visitor) { v.VisitHash(h) }

// Variable is a Less "@name" reference.
type Variable struct{ leaf }

// NewVariable wraps the AT-KEYWORD token naming a variable.
func NewVariable(tok *SyntaxToken) *Variable { return &Variable{leaf{tok}} }

// Kind implements Node.
func (*Variable) Kind() Kind { return KindVariable }

// Accept implements Node.
func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }

// Name returns the variable name without '@'.
func (n *Variable) Name() string { return strings.TrimPrefix(n.Text(), "@") }

// UnicodeRange is "U+0025-00FF".
type UnicodeRange struct{ leaf }

// NewUnicodeRange wraps a UNICODE-RANGE token.
func NewUnicodeRange(tok *SyntaxToken) *UnicodeRange { return &UnicodeRange{leaf{tok}} }

// Kind implements Node.
func (*UnicodeRange) Kind() Kind { return KindUnicodeRange }

// Accept implements Node.
func (u *UnicodeRange) Accept(v Visitor) { v.VisitUnicodeRange(u) }

// Delimiter is punctuation inside a value, such as ',' or '/'.
type Delimiter struct{ leaf }

// NewDelimiter wraps a punctuation token.
func NewDelimiter(tok *SyntaxToken) *Delimiter { return &Delimiter{leaf{tok}} }

// Kind implements Node.
func (*Delimiter) Kind() Kind { return KindDelimiter }

// Accept implements Node.
func (d *Delimiter) Accept(v Visitor) { v.VisitDelimiter(d) }

// Important is "!important".
type Important struct {
	Bang    *SyntaxToken
	Keyword *SyntaxToken
}

// NewImportant builds the flag.
func NewImportant(bang, keyword *SyntaxToken) *Important {
	return &Important{Bang: bang, Keyword: keyword}
}

// Kind implements Node.
func (*Important) Kind() Kind { return KindImportant }

// Children implements Node.
func (i *Important) Children() []Node { return []Node{i.Bang, i.Keyword} }

// Span implements Node.
func (i *Important) Span() token.Span { return spanOf(i.Children()) }

// Accept implements Node.
func (i *Important) Accept(v Visitor) { v.VisitImportant(i) }
