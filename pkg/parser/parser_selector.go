package parser

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// ---------- Selectors ----------

// parseSelectors parses a comma separated selector list. Inside
// @keyframes every selector is a keyframe offset.
//
//	selectors → selector (',' selector)*
func (p *Parser) parseSelectors(keyframes bool) *tree.Selectors {
	var items []tree.Node
	for {
		var sel *tree.Selector
		if keyframes {
			sel = p.parseKeyframesSelector()
		} else {
			sel = p.parseSelector()
		}
		if sel == nil {
			return nil
		}
		items = append(items, sel)
		if !p.check(token.COMMA) {
			return tree.NewSelectors(items)
		}
		items = append(items, p.next())
	}
}

// parseSelector parses a complex selector. Whitespace between two
// compound selectors is the descendant combinator.
//
//	selector → compound (combinator? compound)*
func (p *Parser) parseSelector() *tree.Selector {
	first := p.parseCompound()
	if first == nil {
		return nil
	}
	items := []tree.Node{first}
	for {
		var comb *tree.SelectorCombinator
		switch {
		case p.checkDelim(">") || p.checkDelim("+") || p.checkDelim("~"):
			comb = tree.NewSelectorCombinator(p.next())
		case p.cur().HasWhitespaceBefore() && p.startsCompound():
			comb = tree.NewSelectorCombinator(nil)
		default:
			return tree.NewSelector(items)
		}
		compound := p.parseCompound()
		if compound == nil {
			return nil
		}
		items = append(items, comb, compound)
	}
}

// parseKeyframesSelector parses "from", "to" or a percentage.
func (p *Parser) parseKeyframesSelector() *tree.Selector {
	var value tree.Node
	switch {
	case p.check(token.IDENT):
		value = tree.NewIdentifier(p.next())
	case p.check(token.NUMBER) && p.peek(1).Type == token.PERCENT:
		value = tree.NewPercentage(tree.NewNumber(p.next()), p.next())
	default:
		p.fail("a keyframe selector")
		return nil
	}
	return tree.NewSelector([]tree.Node{tree.NewKeyframesSelector(value)})
}

// startsCompound reports whether a compound selector can start here.
func (p *Parser) startsCompound() bool {
	switch p.cur().Type {
	case token.IDENT, token.HASH, token.COLON, token.LBRACKET:
		return true
	case token.DELIM:
		switch p.cur().Literal {
		case ".", "*", "&", "|":
			return true
		}
	}
	return false
}

// parseCompound parses simple selectors with no whitespace between them.
//
//	compound → [type_selector] (class | id | pseudo | attribute)*
func (p *Parser) parseCompound() *tree.CompoundSelector {
	var items []tree.Node

	if p.check(token.IDENT) || p.checkDelim("*") || p.checkDelim("&") || p.checkDelim("|") {
		t := p.parseTypeSelector()
		if t == nil {
			return nil
		}
		items = append(items, t)
	}

	for len(items) == 0 || p.cur().Adjacent() {
		var item tree.Node
		switch {
		case p.checkDelim(".") && p.peek(1).Type == token.IDENT && p.peek(1).Adjacent():
			item = tree.NewClassSelector(p.next(), p.next())
		case p.check(token.HASH):
			item = tree.NewIdSelector(p.next())
		case p.check(token.COLON):
			if ps := p.parsePseudo(); ps != nil {
				item = ps
			}
		case p.check(token.LBRACKET):
			if a := p.parseAttribute(); a != nil {
				item = a
			}
		case p.check(token.IDENT) && isParentSelector(items):
			// Less and nesting suffix: "&-item"
			item = tree.NewTypeSelector(nil, p.next())
		default:
			if len(items) == 0 {
				p.fail("a selector")
				return nil
			}
			return tree.NewCompoundSelector(items)
		}
		if item == nil {
			return nil
		}
		items = append(items, item)
	}
	return tree.NewCompoundSelector(items)
}

func isParentSelector(items []tree.Node) bool {
	if len(items) == 0 {
		return false
	}
	t, ok := items[len(items)-1].(*tree.TypeSelector)
	return ok && t.Name.Text() == "&"
}

// parseTypeSelector parses "[ns|]name", where name is an identifier,
// '*' or '&'.
func (p *Parser) parseTypeSelector() *tree.TypeSelector {
	var ns *tree.Namespace
	switch {
	case p.checkDelim("|"):
		ns = tree.NewNamespace(nil, p.next())
	case p.peek(1).IsDelim("|") && p.peek(1).Adjacent() && !p.checkDelim("&"):
		ns = tree.NewNamespace(p.next(), p.next())
	}

	if ns != nil && !p.cur().Adjacent() {
		p.fail("an element name")
		return nil
	}
	if p.check(token.IDENT) || p.checkDelim("*") || ns == nil && p.checkDelim("&") {
		return tree.NewTypeSelector(ns, p.next())
	}
	p.fail("an element name")
	return nil
}

// parsePseudo parses a pseudo-class or pseudo-element. Functional pseudo
// selectors take a selector list when one parses, or value items
// otherwise, as in :nth-child(2n+1).
//
//	pseudo → ':' [':'] IDENT ['(' (selectors | value_item*) ')']
func (p *Parser) parsePseudo() *tree.PseudoSelector {
	colons := []*tree.SyntaxToken{p.next()}
	if p.check(token.COLON) && p.cur().Adjacent() {
		colons = append(colons, p.next())
	}
	if !p.check(token.IDENT) || !p.cur().Adjacent() {
		p.fail("a pseudo-class name")
		return nil
	}
	name := p.next()

	if !p.check(token.LPAREN) || !p.cur().Adjacent() {
		return tree.NewPseudoSelector(colons, tree.NewPseudoIdentifier(name))
	}
	open := p.next()

	var args []tree.Node
	m := p.mark()
	if sel := p.parseSelectors(false); sel != nil && p.check(token.RPAREN) {
		args = []tree.Node{sel}
	} else {
		p.reset(m)
		items := p.parseNestedItems(token.RPAREN)
		if items == nil {
			return nil
		}
		args = items.items
	}
	closing := p.expect(token.RPAREN, `")"`)
	if closing == nil {
		return nil
	}
	return tree.NewPseudoSelector(colons, tree.NewPseudoFunction(name, open, args, closing))
}

// parseAttribute parses an attribute selector.
//
//	attribute → '[' [ns '|'] IDENT [matcher (IDENT | STRING | NUMBER) [IDENT]] ']'
func (p *Parser) parseAttribute() *tree.AttributeSelector {
	open := p.next()

	var ns *tree.Namespace
	switch {
	case p.checkDelim("|"):
		ns = tree.NewNamespace(nil, p.next())
	case (p.check(token.IDENT) || p.checkDelim("*")) && p.peek(1).IsDelim("|") && p.peek(1).Adjacent():
		ns = tree.NewNamespace(p.next(), p.next())
	}

	name := p.expect(token.IDENT, "an attribute name")
	if name == nil {
		return nil
	}

	var expr *tree.AttributeMatcherExpression
	if p.checkDelim("=") || isMatchToken(p.cur().Type) {
		matcher := tree.NewAttributeMatcher(p.next())
		var value tree.Node
		switch p.cur().Type {
		case token.IDENT:
			value = tree.NewIdentifier(p.next())
		case token.STRING:
			value = tree.NewStringLiteral(p.next())
		case token.NUMBER:
			value = tree.NewNumber(p.next())
		default:
			p.fail("an attribute value")
			return nil
		}
		var flag *tree.CaseInsensitiveFlag
		if p.check(token.IDENT) && (strings.EqualFold(p.cur().Literal, "i") || strings.EqualFold(p.cur().Literal, "s")) {
			flag = tree.NewCaseInsensitiveFlag(p.next())
		}
		expr = tree.NewAttributeMatcherExpression(matcher, value, flag)
	}

	closing := p.expect(token.RBRACKET, `"]"`)
	if closing == nil {
		return nil
	}
	return tree.NewAttributeSelector(open, ns, name, expr, closing)
}

func isMatchToken(t TokenType) bool {
	switch t {
	case token.INCLUDE_MATCH, token.DASH_MATCH, token.PREFIX_MATCH, token.SUFFIX_MATCH, token.SUBSTRING_MATCH:
		return true
	}
	return false
}
