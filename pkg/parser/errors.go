package parser

import (
	"fmt"

	"github.com/leapstack-labs/leapcss/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Line returns the 1-based line of the error.
func (e *ParseError) Line() int {
	return e.Pos.Line
}

// Common error messages
const (
	ErrUnexpectedToken     = "unexpected %s, expected %s"
	ErrUnterminatedString  = "unterminated string literal"
	ErrUnterminatedComment = "unterminated comment"
	ErrUnterminatedBlock   = "unclosed block, expected \"}\""
	ErrIllegalToken        = "illegal character sequence %q"
	ErrEmptyValue          = "expected a value after %q"
)
