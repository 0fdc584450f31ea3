package parser

import "github.com/leapstack-labs/leapcss/pkg/token"

// TokenType is an alias for token.TokenType.
type TokenType = token.TokenType

// Token is an alias for token.Token.
type Token = token.Token

// Position is an alias for token.Position.
type Position = token.Position

// Tokenize returns all tokens of a CSS input, ending with EOF.
func Tokenize(input string) []Token {
	return NewLexer(input).Tokenize()
}

// TokenizeLess returns all tokens of a Less input, ending with EOF.
func TokenizeLess(input string) []Token {
	return NewLessLexer(input).Tokenize()
}
