// Package parser provides CSS and Less parsing into a lossless syntax tree.
//
// # Usage
//
//	sheet, err := parser.Parse("h1 { color: red }")
//	if err != nil {
//	    // err is a *parser.ParseError
//	}
//
// Less sources go through ParseWithLanguage:
//
//	sheet, err := parser.ParseWithLanguage(src, core.Less)
//
// # Grammar Overview
//
// The parser implements a backtracking recursive descent parser over a
// pre-tokenized input:
//
//	stylesheet    → [BOM] (at_rule | ruleset | variable_decl | ';')* EOF
//	at_rule       → AT_KEYWORD prelude* (block | ';')?
//	ruleset       → [selectors] '{' block_content '}'
//	block_content → (';' | at_rule | variable_decl | ruleset | declaration)*
//	declaration   → ['*'] IDENT ':' value
//	variable_decl → AT_KEYWORD ':' value          (Less only)
//	value         → value_item+
//
// Parsing is all or nothing: the first production that cannot be matched
// aborts the parse. When alternatives were tried, the error reported is
// the one that got farthest into the input.
//
// See each file for detailed grammar rules for that section.
package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// Options configure a parse.
type Options struct {
	// Less enables Less variables and line comments.
	Less bool
	// Catalog classifies at-rule, property and function names.
	// Defaults to catalog.Default, or catalog.Less when Less is set.
	Catalog *catalog.Catalog
}

// Parser parses CSS into a syntax tree.
type Parser struct {
	tokens []Token
	pos    int // index of the current token
	opts   Options

	err *ParseError // farthest failure
}

// NewParser creates a new parser for the given input.
func NewParser(src string, opts Options) *Parser {
	if opts.Catalog == nil {
		if opts.Less {
			opts.Catalog = catalog.Less()
		} else {
			opts.Catalog = catalog.Default()
		}
	}
	lexer := NewLexer(src)
	if opts.Less {
		lexer = NewLessLexer(src)
	}
	return &Parser{tokens: lexer.Tokenize(), opts: opts}
}

// Parse parses CSS source.
func Parse(src string) (*tree.StyleSheet, error) {
	return NewParser(src, Options{}).Parse()
}

// ParseWithLanguage parses source written in lang.
func ParseWithLanguage(src string, lang *core.Language) (*tree.StyleSheet, error) {
	return NewParser(src, Options{Less: lang.Less, Catalog: lang.Catalog()}).Parse()
}

// Parse parses the whole input. It returns a *ParseError on failure.
func (p *Parser) Parse() (*tree.StyleSheet, error) {
	sheet := p.parseStyleSheet()
	if sheet == nil {
		return nil, p.err
	}
	return sheet, nil
}

// ---------- Token Helpers ----------

// cur returns the current token.
func (p *Parser) cur() Token {
	return p.tokens[p.pos]
}

// peek returns the token n positions ahead; EOF past the end.
func (p *Parser) peek(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.cur().Type == t
}

// checkDelim returns true if the current token is the delimiter ch.
func (p *Parser) checkDelim(ch string) bool {
	return p.cur().IsDelim(ch)
}

// next consumes the current token and returns it as a tree token.
func (p *Parser) next() *tree.SyntaxToken {
	tok := tree.NewToken(p.cur())
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches, otherwise records an
// error and returns nil.
func (p *Parser) expect(t TokenType, what string) *tree.SyntaxToken {
	if p.check(t) {
		return p.next()
	}
	p.fail(what)
	return nil
}

// mark returns a backtracking point.
func (p *Parser) mark() int {
	return p.pos
}

// reset rewinds to a backtracking point.
func (p *Parser) reset(m int) {
	p.pos = m
}

// fail records an "unexpected token" error at the current token. Only the
// farthest error is kept.
func (p *Parser) fail(expected string) {
	tok := p.cur()
	var msg string
	switch tok.Type {
	case token.ILLEGAL:
		msg = illegalMessage(tok)
	default:
		msg = fmt.Sprintf(ErrUnexpectedToken, describe(tok), expected)
	}
	p.failAt(tok, msg)
}

func (p *Parser) failAt(tok Token, msg string) {
	if p.err != nil && tok.Span.Start.Offset < p.err.Pos.Offset {
		return
	}
	p.err = &ParseError{Pos: tok.Span.Start, Message: msg}
}

func illegalMessage(tok Token) string {
	switch {
	case strings.HasPrefix(tok.Literal, "\"") || strings.HasPrefix(tok.Literal, "'"):
		return ErrUnterminatedString
	case strings.HasPrefix(tok.Literal, "/*"):
		return ErrUnterminatedComment
	default:
		return fmt.Sprintf(ErrIllegalToken, tok.Literal)
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of file"
	case token.IDENT, token.ATKEYWORD, token.HASH, token.NUMBER, token.STRING, token.DELIM:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return tok.Type.String()
	}
}

// ---------- Stylesheet ----------

// parseStyleSheet parses the top level.
//
//	stylesheet → [BOM] (at_rule | ruleset | variable_decl | ';')* EOF
func (p *Parser) parseStyleSheet() *tree.StyleSheet {
	sheet := &tree.StyleSheet{}
	if p.check(token.BOM) {
		sheet.BOM = p.next()
	}

	var decls []tree.Node
	flush := func() {
		if len(decls) > 0 {
			sheet.Items = append(sheet.Items, tree.NewDeclarations(decls))
			decls = nil
		}
	}

	for !p.check(token.EOF) {
		switch {
		case p.check(token.SEMICOLON):
			decls = append(decls, p.next())
		case p.isVariableDeclaration():
			d := p.parseVariableDeclaration()
			if d == nil {
				return nil
			}
			decls = append(decls, d)
		case p.check(token.ATKEYWORD):
			flush()
			r := p.parseAtRule()
			if r == nil {
				return nil
			}
			sheet.Items = append(sheet.Items, r)
		default:
			flush()
			r := p.parseRuleset(false)
			if r == nil {
				return nil
			}
			sheet.Items = append(sheet.Items, r)
		}
	}
	flush()

	sheet.EOF = p.next()
	return sheet
}

// ---------- At-rules ----------

// parseAtRule parses an at-rule. The terminating ';' is optional before
// '}' and at the end of input.
//
//	at_rule → AT_KEYWORD prelude* ('{' block_content '}' | ';')?
func (p *Parser) parseAtRule() *tree.AtRule {
	kw := tree.NewAtKeyword(p.next())

	var prelude []tree.Node
	for !p.check(token.LBRACE) && !p.check(token.SEMICOLON) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		item := p.parseValueItem()
		if item == nil {
			return nil
		}
		prelude = append(prelude, item)
	}

	var block *tree.AtRuleBlock
	var semi *tree.SyntaxToken
	switch {
	case p.check(token.LBRACE):
		keyframes := strings.HasSuffix(strings.ToLower(kw.Name()), "keyframes")
		open := p.next()
		content := p.parseBlockContent(keyframes)
		if content == nil {
			return nil
		}
		closing := p.expectClose()
		if closing == nil {
			return nil
		}
		block = tree.NewAtRuleBlock(open, content.items, closing)
	case p.check(token.SEMICOLON):
		semi = p.next()
	}

	return tree.NewAtRule(p.opts.Catalog, kw, prelude, block, semi)
}

// isVariableDeclaration reports whether a Less "@name:" starts here.
func (p *Parser) isVariableDeclaration() bool {
	return p.opts.Less && p.check(token.ATKEYWORD) && p.peek(1).Type == token.COLON
}

// parseVariableDeclaration parses "@name: value".
func (p *Parser) parseVariableDeclaration() *tree.VariableDeclaration {
	variable := tree.NewVariable(p.next())
	colon := p.next()
	value := p.parseValue(colon)
	if value == nil {
		return nil
	}
	return tree.NewVariableDeclaration(variable, colon, value)
}

// ---------- Rulesets ----------

// parseRuleset parses a ruleset. The selector list is optional.
//
//	ruleset → [selectors] '{' block_content '}'
func (p *Parser) parseRuleset(keyframes bool) *tree.Ruleset {
	var selectors *tree.Selectors
	if !p.check(token.LBRACE) {
		selectors = p.parseSelectors(keyframes)
		if selectors == nil {
			return nil
		}
	}
	open := p.expect(token.LBRACE, `"{"`)
	if open == nil {
		return nil
	}
	content := p.parseBlockContent(false)
	if content == nil {
		return nil
	}
	closing := p.expectClose()
	if closing == nil {
		return nil
	}
	return tree.NewRuleset(selectors, tree.NewRulesetBlock(open, content.items, closing))
}

func (p *Parser) expectClose() *tree.SyntaxToken {
	if p.check(token.EOF) {
		p.failAt(p.cur(), ErrUnterminatedBlock)
		return nil
	}
	return p.expect(token.RBRACE, `"}"`)
}

// blockItems is the parsed content of a block.
type blockItems struct {
	items []tree.Node
}

// parseBlockContent parses the items of a braced block up to, not
// including, the closing brace. Runs of declarations and semicolons are
// grouped in a Declarations node.
//
//	block_content → (';' | at_rule | variable_decl | ruleset | declaration)*
func (p *Parser) parseBlockContent(keyframes bool) *blockItems {
	out := &blockItems{}
	var decls []tree.Node
	flush := func() {
		if len(decls) > 0 {
			out.items = append(out.items, tree.NewDeclarations(decls))
			decls = nil
		}
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		switch {
		case p.check(token.SEMICOLON):
			decls = append(decls, p.next())
		case p.isVariableDeclaration():
			d := p.parseVariableDeclaration()
			if d == nil {
				return nil
			}
			decls = append(decls, d)
		case p.check(token.ATKEYWORD):
			flush()
			r := p.parseAtRule()
			if r == nil {
				return nil
			}
			out.items = append(out.items, r)
		default:
			m := p.mark()
			if r := p.parseRuleset(keyframes); r != nil {
				flush()
				out.items = append(out.items, r)
				continue
			}
			p.reset(m)
			d := p.parseDeclaration()
			if d == nil {
				return nil
			}
			decls = append(decls, d)
		}
	}
	flush()
	return out
}

// ---------- Declarations ----------

// parseDeclaration parses a property declaration, which must be followed
// by ';' or the end of the block.
//
//	declaration → ['*'] IDENT ':' value
func (p *Parser) parseDeclaration() *tree.PropertyDeclaration {
	var hack *tree.SyntaxToken
	if p.checkDelim("*") && p.peek(1).Type == token.IDENT && p.peek(1).Adjacent() {
		hack = p.next()
	}
	name := p.expect(token.IDENT, "a property name")
	if name == nil {
		return nil
	}
	colon := p.expect(token.COLON, `":"`)
	if colon == nil {
		return nil
	}
	value := p.parseValue(colon)
	if value == nil {
		return nil
	}
	if !p.check(token.SEMICOLON) && !p.check(token.RBRACE) {
		p.fail(`";" or "}"`)
		return nil
	}
	return tree.NewPropertyDeclaration(tree.NewProperty(p.opts.Catalog, hack, name), colon, value)
}
