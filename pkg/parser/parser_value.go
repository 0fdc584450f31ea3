package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// ---------- Values ----------

// parseValue parses the non-empty value following after, up to ';', '}'
// or the end of input.
//
//	value → value_item+
func (p *Parser) parseValue(after *tree.SyntaxToken) *tree.Value {
	var items []tree.Node
	for !p.check(token.SEMICOLON) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		item := p.parseValueItem()
		if item == nil {
			return nil
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		p.failAt(p.cur(), fmt.Sprintf(ErrEmptyValue, after.Text()))
		return nil
	}
	return tree.NewValue(items)
}

// parseValueItem parses one component of a value or an at-rule prelude.
//
//	value_item → function | uri | IDENT | STRING | number | HASH
//	           | UNICODE_RANGE | important | '(' items ')' | '[' items ']'
//	           | variable | delimiter
func (p *Parser) parseValueItem() tree.Node {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT:
		if next := p.peek(1); next.Type == token.LPAREN && next.Adjacent() {
			// a failed production must come back as an untyped nil
			if strings.EqualFold(tok.Literal, "url") {
				if u := p.parseUri(); u != nil {
					return u
				}
				return nil
			}
			if f := p.parseFunction(); f != nil {
				return f
			}
			return nil
		}
		return tree.NewIdentifier(p.next())
	case token.STRING:
		return tree.NewStringLiteral(p.next())
	case token.NUMBER:
		return p.parseNumeric()
	case token.HASH:
		return tree.NewHash(p.next())
	case token.UNICODE_RANGE:
		return tree.NewUnicodeRange(p.next())
	case token.LPAREN:
		open := p.next()
		items := p.parseNestedItems(token.RPAREN)
		if items == nil {
			return nil
		}
		closing := p.expect(token.RPAREN, `")"`)
		if closing == nil {
			return nil
		}
		return tree.NewParenthesisBlock(open, items.items, closing)
	case token.LBRACKET:
		open := p.next()
		items := p.parseNestedItems(token.RBRACKET)
		if items == nil {
			return nil
		}
		closing := p.expect(token.RBRACKET, `"]"`)
		if closing == nil {
			return nil
		}
		return tree.NewBracketBlock(open, items.items, closing)
	case token.ATKEYWORD:
		if p.opts.Less {
			return tree.NewVariable(p.next())
		}
	case token.DELIM:
		if tok.Literal == "!" {
			if next := p.peek(1); next.Type == token.IDENT && strings.EqualFold(next.Literal, "important") {
				return tree.NewImportant(p.next(), p.next())
			}
		}
		return tree.NewDelimiter(p.next())
	case token.COMMA, token.COLON,
		token.INCLUDE_MATCH, token.DASH_MATCH, token.PREFIX_MATCH, token.SUFFIX_MATCH, token.SUBSTRING_MATCH:
		return tree.NewDelimiter(p.next())
	}
	p.fail("a value")
	return nil
}

// parseNestedItems parses value items up to closing, exclusive.
func (p *Parser) parseNestedItems(closing TokenType) *blockItems {
	out := &blockItems{}
	for !p.check(closing) {
		if p.check(token.EOF) {
			p.fail(fmt.Sprintf("%q", closing.String()))
			return nil
		}
		item := p.parseValueItem()
		if item == nil {
			return nil
		}
		out.items = append(out.items, item)
	}
	return out
}

// parseNumeric parses a number, a dimension or a percentage. The lexer
// only emits UNIT and PERCENT directly after a NUMBER.
func (p *Parser) parseNumeric() tree.Node {
	number := tree.NewNumber(p.next())
	switch {
	case p.check(token.UNIT):
		return tree.NewDimension(number, tree.NewUnit(p.next()))
	case p.check(token.PERCENT):
		return tree.NewPercentage(number, p.next())
	}
	return number
}

// parseFunction parses "name(args)". A function may have no arguments.
//
//	function → IDENT '(' value_item* ')'
func (p *Parser) parseFunction() *tree.Function {
	name := p.next()
	open := p.next()
	args := p.parseNestedItems(token.RPAREN)
	if args == nil {
		return nil
	}
	closing := p.expect(token.RPAREN, `")"`)
	if closing == nil {
		return nil
	}
	return tree.NewFunction(p.opts.Catalog, name, open, args.items, closing)
}

// parseUri parses "url(...)", quoted or not.
//
//	uri → 'url' '(' (URI_CONTENT | STRING)? ')'
func (p *Parser) parseUri() *tree.Uri {
	name := p.next()
	open := p.next()

	var content tree.Node
	switch p.cur().Type {
	case token.URI_CONTENT:
		content = tree.NewUriContent(p.next())
	case token.STRING:
		content = tree.NewStringLiteral(p.next())
	}

	closing := p.expect(token.RPAREN, `")"`)
	if closing == nil {
		return nil
	}
	return tree.NewUri(name, open, content, closing)
}
