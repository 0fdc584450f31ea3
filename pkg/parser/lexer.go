package parser

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/token"
)

const bom = "\uFEFF"

// Lexer tokenizes CSS and Less input. Whitespace and comments are not
// dropped: they are attached as trivia to the token that follows them.
type Lexer struct {
	input string
	pos   int // offset of the next unread byte
	line  int // line of pos (1-based)
	col   int // column of pos, in runes (1-based)
	less  bool

	pending []token.Token // tokens scanned ahead, such as the unit of a dimension
	inURL   bool          // the previous tokens were "url" and "("
}

// NewLexer creates a new Lexer for CSS input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// NewLessLexer creates a new Lexer that also accepts Less line comments.
func NewLessLexer(input string) *Lexer {
	l := NewLexer(input)
	l.less = true
	return l
}

// Tokenize returns all tokens from the input, ending with EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// ---------- Character Helpers ----------

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// peekAt returns the byte n positions ahead, or 0 past the end.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) ch() byte {
	return l.peekAt(0)
}

// advance consumes n bytes and keeps line and column current.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		b := l.input[l.pos]
		l.pos++
		switch {
		case b == '\n':
			l.line++
			l.col = 1
		case l.pos >= len(l.input) || !isContinuation(l.input[l.pos]):
			l.col++
		}
	}
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

// ---------- Tokens ----------

// NextToken returns the next token together with its leading trivia.
func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.pos == 0 && l.hasPrefix(bom) {
		start := l.currentPos()
		l.advance(len(bom))
		return token.Token{Type: token.BOM, Literal: bom, Span: token.Span{Start: start, End: l.currentPos()}}
	}

	var trivia []token.Trivia
	if l.inURL {
		l.inURL = false
		trivia = l.collectTrivia(false)
		if !l.atEOF() && l.ch() != '"' && l.ch() != '\'' && l.ch() != ')' {
			tok := l.readURIContent()
			tok.Trivia = trivia
			return tok
		}
	} else {
		trivia = l.collectTrivia(true)
	}

	tok := l.scanToken()
	tok.Trivia = trivia
	return tok
}

// scanToken scans one token at the current position.
func (l *Lexer) scanToken() token.Token {
	start := l.pos
	startPos := l.currentPos()

	emit := func(typ token.TokenType, n int) token.Token {
		l.advance(n)
		return token.Token{
			Type:    typ,
			Literal: l.input[start:l.pos],
			Span:    token.Span{Start: startPos, End: l.currentPos()},
		}
	}

	if l.atEOF() {
		return emit(token.EOF, 0)
	}
	if l.hasPrefix("/*") {
		// unterminated comment
		return emit(token.ILLEGAL, len(l.input)-l.pos)
	}

	ch := l.ch()
	switch {
	case ch == '"' || ch == '\'':
		return l.readString(start, startPos)
	case isDigit(ch), ch == '.' && isDigit(l.peekAt(1)):
		return l.readNumeric(start, startPos)
	case (ch == '+' || ch == '-') && startsNumber(l.peekAt(1), l.peekAt(2)):
		return l.readNumeric(start, startPos)
	case (ch == 'u' || ch == 'U') && l.peekAt(1) == '+' && (isHex(l.peekAt(2)) || l.peekAt(2) == '?'):
		return l.readUnicodeRange(start, startPos)
	case l.startsIdent(0):
		return l.readIdentLike(start, startPos)
	}

	switch ch {
	case '@':
		if l.startsIdent(1) {
			l.advance(1)
			l.readName()
			return emit(token.ATKEYWORD, 0)
		}
		return emit(token.DELIM, 1)
	case '#':
		if isNameChar(l.peekAt(1)) || l.isEscape(1) {
			l.advance(1)
			l.readName()
			return emit(token.HASH, 0)
		}
		return emit(token.DELIM, 1)
	case ':':
		return emit(token.COLON, 1)
	case ';':
		return emit(token.SEMICOLON, 1)
	case ',':
		return emit(token.COMMA, 1)
	case '{':
		return emit(token.LBRACE, 1)
	case '}':
		return emit(token.RBRACE, 1)
	case '(':
		return emit(token.LPAREN, 1)
	case ')':
		return emit(token.RPAREN, 1)
	case '[':
		return emit(token.LBRACKET, 1)
	case ']':
		return emit(token.RBRACKET, 1)
	}

	if l.peekAt(1) == '=' {
		switch ch {
		case '~':
			return emit(token.INCLUDE_MATCH, 2)
		case '|':
			return emit(token.DASH_MATCH, 2)
		case '^':
			return emit(token.PREFIX_MATCH, 2)
		case '$':
			return emit(token.SUFFIX_MATCH, 2)
		case '*':
			return emit(token.SUBSTRING_MATCH, 2)
		}
	}

	if ch == '\\' {
		// an escape that does not start an identifier
		return emit(token.ILLEGAL, 1)
	}

	return emit(token.DELIM, runeLen(l.input[l.pos:]))
}

// ---------- Trivia ----------

// collectTrivia consumes whitespace and, when comments is set, comments,
// CDO and CDC markers.
func (l *Lexer) collectTrivia(comments bool) []token.Trivia {
	var out []token.Trivia
	for !l.atEOF() {
		start := l.pos
		startPos := l.currentPos()
		var kind token.TriviaKind

		switch {
		case isWhitespace(l.ch()):
			kind = token.Whitespace
			for !l.atEOF() && isWhitespace(l.ch()) {
				l.advance(1)
			}
		case comments && l.hasPrefix("/*"):
			kind = token.BlockComment
			end := strings.Index(l.input[l.pos+2:], "*/")
			if end < 0 {
				// unterminated: left for scanToken to report
				return out
			}
			l.advance(end + 4)
		case comments && l.less && l.hasPrefix("//"):
			kind = token.LineComment
			end := strings.IndexAny(l.input[l.pos:], "\r\n")
			if end < 0 {
				end = len(l.input) - l.pos
			}
			l.advance(end)
		case comments && l.hasPrefix("<!--"):
			kind = token.CDO
			l.advance(4)
		case comments && l.hasPrefix("-->"):
			kind = token.CDC
			l.advance(3)
		default:
			return out
		}

		out = append(out, token.Trivia{
			Kind: kind,
			Text: l.input[start:l.pos],
			Span: token.Span{Start: startPos, End: l.currentPos()},
		})
	}
	return out
}

// ---------- Lexemes ----------

// readString reads a quoted string. A newline or the end of input before
// the closing quote produces an ILLEGAL token.
func (l *Lexer) readString(start int, startPos token.Position) token.Token {
	quote := l.ch()
	l.advance(1)
	typ := token.ILLEGAL
	for !l.atEOF() {
		ch := l.ch()
		if ch == quote {
			l.advance(1)
			typ = token.STRING
			break
		}
		if ch == '\n' || ch == '\r' || ch == '\f' {
			break
		}
		if ch == '\\' {
			l.advance(1)
			if l.ch() == '\r' && l.peekAt(1) == '\n' {
				l.advance(1)
			}
		}
		l.advance(1)
	}
	return token.Token{Type: typ, Literal: l.input[start:l.pos], Span: token.Span{Start: startPos, End: l.currentPos()}}
}

// readNumeric reads a number and queues the unit or '%' that directly
// follows it, if any.
func (l *Lexer) readNumeric(start int, startPos token.Position) token.Token {
	if l.ch() == '+' || l.ch() == '-' {
		l.advance(1)
	}
	for isDigit(l.ch()) {
		l.advance(1)
	}
	if l.ch() == '.' && isDigit(l.peekAt(1)) {
		l.advance(1)
		for isDigit(l.ch()) {
			l.advance(1)
		}
	}
	if c := l.ch(); c == 'e' || c == 'E' {
		if isDigit(l.peekAt(1)) || (l.peekAt(1) == '+' || l.peekAt(1) == '-') && isDigit(l.peekAt(2)) {
			l.advance(2)
			for isDigit(l.ch()) {
				l.advance(1)
			}
		}
	}
	num := token.Token{Type: token.NUMBER, Literal: l.input[start:l.pos], Span: token.Span{Start: startPos, End: l.currentPos()}}

	unitStart := l.pos
	unitPos := l.currentPos()
	switch {
	case l.ch() == '%':
		l.advance(1)
		l.pending = append(l.pending, token.Token{
			Type: token.PERCENT, Literal: "%", Span: token.Span{Start: unitPos, End: l.currentPos()},
		})
	case l.startsIdent(0):
		l.readName()
		l.pending = append(l.pending, token.Token{
			Type: token.UNIT, Literal: l.input[unitStart:l.pos], Span: token.Span{Start: unitPos, End: l.currentPos()},
		})
	}
	return num
}

// readUnicodeRange reads "U+" followed by hex digits, wildcards and an
// optional "-end".
func (l *Lexer) readUnicodeRange(start int, startPos token.Position) token.Token {
	l.advance(2)
	for n := 0; n < 6 && (isHex(l.ch()) || l.ch() == '?'); n++ {
		l.advance(1)
	}
	if l.ch() == '-' && isHex(l.peekAt(1)) {
		l.advance(1)
		for n := 0; n < 6 && isHex(l.ch()); n++ {
			l.advance(1)
		}
	}
	return token.Token{Type: token.UNICODE_RANGE, Literal: l.input[start:l.pos], Span: token.Span{Start: startPos, End: l.currentPos()}}
}

// readIdentLike reads an identifier. "url(" switches the next token to
// unquoted URI content.
func (l *Lexer) readIdentLike(start int, startPos token.Position) token.Token {
	l.readName()
	tok := token.Token{Type: token.IDENT, Literal: l.input[start:l.pos], Span: token.Span{Start: startPos, End: l.currentPos()}}
	if l.ch() == '(' && strings.EqualFold(tok.Literal, "url") {
		parenPos := l.currentPos()
		l.advance(1)
		l.pending = append(l.pending, token.Token{
			Type: token.LPAREN, Literal: "(", Span: token.Span{Start: parenPos, End: l.currentPos()},
		})
		l.inURL = true
	}
	return tok
}

// readURIContent reads an unquoted url up to whitespace or ')'. Quotes,
// '(' and the end of input make it ILLEGAL.
func (l *Lexer) readURIContent() token.Token {
	start := l.pos
	startPos := l.currentPos()
	typ := token.URI_CONTENT
	for !l.atEOF() {
		ch := l.ch()
		if ch == ')' || isWhitespace(ch) {
			break
		}
		if ch == '"' || ch == '\'' || ch == '(' {
			typ = token.ILLEGAL
		}
		if ch == '\\' {
			l.advance(1)
		}
		l.advance(1)
	}
	if l.atEOF() {
		typ = token.ILLEGAL
	}
	return token.Token{Type: typ, Literal: l.input[start:l.pos], Span: token.Span{Start: startPos, End: l.currentPos()}}
}

// readName consumes name characters and escapes.
func (l *Lexer) readName() {
	for !l.atEOF() {
		switch {
		case isNameChar(l.ch()):
			l.advance(1)
		case l.isEscape(0):
			l.advance(1)
			if isHex(l.ch()) {
				for n := 0; n < 6 && isHex(l.ch()); n++ {
					l.advance(1)
				}
				if isWhitespace(l.ch()) {
					l.advance(1)
				}
			} else {
				l.advance(runeLen(l.input[l.pos:]))
			}
		default:
			return
		}
	}
}

// startsIdent reports whether an identifier starts n bytes ahead.
func (l *Lexer) startsIdent(n int) bool {
	c := l.peekAt(n)
	switch {
	case isNameStart(c):
		return true
	case c == '\\':
		return l.isEscape(n)
	case c == '-':
		next := l.peekAt(n + 1)
		return isNameStart(next) || next == '-' || l.isEscape(n+1)
	}
	return false
}

// isEscape reports whether a valid escape starts n bytes ahead.
func (l *Lexer) isEscape(n int) bool {
	if l.peekAt(n) != '\\' || l.pos+n+1 >= len(l.input) {
		return false
	}
	next := l.peekAt(n + 1)
	return next != '\n' && next != '\r' && next != '\f'
}

// ---------- Character Classes ----------

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHex(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// isNameStart includes every non-ASCII byte.
func isNameStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch >= 0x80
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

func startsNumber(a, b byte) bool {
	return isDigit(a) || a == '.' && isDigit(b)
}

// runeLen returns the byte length of the first UTF-8 sequence of s.
func runeLen(s string) int {
	n := 1
	for n < len(s) && isContinuation(s[n]) {
		n++
	}
	return n
}
