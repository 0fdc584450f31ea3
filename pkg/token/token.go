// Package token defines the lexical units produced by the CSS/Less lexer.
//
// Every token carries the trivia (whitespace and comments) that precede it,
// so the concatenation of FullText over the token stream reproduces the
// source byte-for-byte.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow the CSS Syntax token names
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL
	BOM // U+FEFF at the very start of the input

	// Names and literals
	IDENT         // color, -moz-box, --custom
	ATKEYWORD     // @media, @var
	HASH          // #fff, #main
	STRING        // "a", 'b'
	NUMBER        // 12, -1.5, +.5e3
	UNIT          // px in 12px (always adjacent to a NUMBER)
	PERCENT       // % in 50% (always adjacent to a NUMBER)
	URI_CONTENT   // unquoted body of url(...)
	UNICODE_RANGE // U+0025-00FF, u+4??

	// Punctuation
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]

	// Attribute matchers
	INCLUDE_MATCH   // ~=
	DASH_MATCH      // |=
	PREFIX_MATCH    // ^=
	SUFFIX_MATCH    // $=
	SUBSTRING_MATCH // *=

	// DELIM is any other single code point: . > + ~ * / = ! & | < $ ? ^ \ @
	DELIM
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	BOM:     "BOM",

	IDENT:         "IDENT",
	ATKEYWORD:     "AT-KEYWORD",
	HASH:          "HASH",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	UNIT:          "UNIT",
	PERCENT:       "%",
	URI_CONTENT:   "URI-CONTENT",
	UNICODE_RANGE: "UNICODE-RANGE",

	COLON:     ":",
	SEMICOLON: ";",
	COMMA:     ",",
	LBRACE:    "{",
	RBRACE:    "}",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",

	INCLUDE_MATCH:   "~=",
	DASH_MATCH:      "|=",
	PREFIX_MATCH:    "^=",
	SUFFIX_MATCH:    "$=",
	SUBSTRING_MATCH: "*=",

	DELIM: "DELIM",
}

// Token represents a lexical token with its preceding trivia.
type Token struct {
	Type    TokenType
	Literal string   // exact source text of the token
	Span    Span     // span of Literal, trivia excluded
	Trivia  []Trivia // whitespace and comments preceding the token, in order
}

// Pos returns the start position of the token text.
func (t Token) Pos() Position {
	return t.Span.Start
}

// Is reports whether the token has the given type and, for DELIM tokens,
// the given literal.
func (t Token) Is(typ TokenType, literal string) bool {
	return t.Type == typ && t.Literal == literal
}

// IsDelim reports whether the token is the DELIM ch.
func (t Token) IsDelim(ch string) bool {
	return t.Type == DELIM && t.Literal == ch
}

// Adjacent reports whether the token directly follows the previous one,
// with no whitespace or comment in between.
func (t Token) Adjacent() bool {
	return len(t.Trivia) == 0
}

// HasWhitespaceBefore reports whether any whitespace trivia precedes the token.
func (t Token) HasWhitespaceBefore() bool {
	for _, tr := range t.Trivia {
		if tr.Kind == Whitespace {
			return true
		}
	}
	return false
}

// LeadingText returns the concatenated trivia text.
func (t Token) LeadingText() string {
	if len(t.Trivia) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tr := range t.Trivia {
		b.WriteString(tr.Text)
	}
	return b.String()
}

// FullText returns the trivia text followed by the token text.
func (t Token) FullText() string {
	if len(t.Trivia) == 0 {
		return t.Literal
	}
	return t.LeadingText() + t.Literal
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Literal)
}
