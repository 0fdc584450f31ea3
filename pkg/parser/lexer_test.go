package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/parser"
	"github.com/leapstack-labs/leapcss/pkg/token"
)

type lexed struct {
	typ     token.TokenType
	literal string
}

func lex(tokens []token.Token) []lexed {
	out := make([]lexed, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, lexed{tok.Type, tok.Literal})
	}
	return out
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{
			name:  "at-rule and dimension",
			input: "@media screen{h1{width:10px}}",
			want: []lexed{
				{token.ATKEYWORD, "@media"},
				{token.IDENT, "screen"},
				{token.LBRACE, "{"},
				{token.IDENT, "h1"},
				{token.LBRACE, "{"},
				{token.IDENT, "width"},
				{token.COLON, ":"},
				{token.NUMBER, "10"},
				{token.UNIT, "px"},
				{token.RBRACE, "}"},
				{token.RBRACE, "}"},
				{token.EOF, ""},
			},
		},
		{
			name:  "unquoted url",
			input: "b:url( x.png )",
			want: []lexed{
				{token.IDENT, "b"},
				{token.COLON, ":"},
				{token.IDENT, "url"},
				{token.LPAREN, "("},
				{token.URI_CONTENT, "x.png"},
				{token.RPAREN, ")"},
				{token.EOF, ""},
			},
		},
		{
			name:  "quoted url",
			input: `url("a.png")`,
			want: []lexed{
				{token.IDENT, "url"},
				{token.LPAREN, "("},
				{token.STRING, `"a.png"`},
				{token.RPAREN, ")"},
				{token.EOF, ""},
			},
		},
		{
			name:  "numbers",
			input: "-.5e3px 10% +5 1.5em",
			want: []lexed{
				{token.NUMBER, "-.5e3"},
				{token.UNIT, "px"},
				{token.NUMBER, "10"},
				{token.PERCENT, "%"},
				{token.NUMBER, "+5"},
				{token.NUMBER, "1.5"},
				{token.UNIT, "em"},
				{token.EOF, ""},
			},
		},
		{
			name:  "identifiers",
			input: `-webkit-box --main-color \31 a`,
			want: []lexed{
				{token.IDENT, "-webkit-box"},
				{token.IDENT, "--main-color"},
				{token.IDENT, `\31 a`},
				{token.EOF, ""},
			},
		},
		{
			name:  "hash and class",
			input: "#fff .a",
			want: []lexed{
				{token.HASH, "#fff"},
				{token.DELIM, "."},
				{token.IDENT, "a"},
				{token.EOF, ""},
			},
		},
		{
			name:  "at sign without name",
			input: "@ import",
			want: []lexed{
				{token.DELIM, "@"},
				{token.IDENT, "import"},
				{token.EOF, ""},
			},
		},
		{
			name:  "attribute matchers",
			input: "~= |= ^= $= *= =",
			want: []lexed{
				{token.INCLUDE_MATCH, "~="},
				{token.DASH_MATCH, "|="},
				{token.PREFIX_MATCH, "^="},
				{token.SUFFIX_MATCH, "$="},
				{token.SUBSTRING_MATCH, "*="},
				{token.DELIM, "="},
				{token.EOF, ""},
			},
		},
		{
			name:  "unicode range",
			input: "U+0025-00FF u+4??",
			want: []lexed{
				{token.UNICODE_RANGE, "U+0025-00FF"},
				{token.UNICODE_RANGE, "u+4??"},
				{token.EOF, ""},
			},
		},
		{
			name:  "strings",
			input: `"a\"b" 'c'`,
			want: []lexed{
				{token.STRING, `"a\"b"`},
				{token.STRING, `'c'`},
				{token.EOF, ""},
			},
		},
		{
			name:  "unterminated string",
			input: "\"abc\nx",
			want: []lexed{
				{token.ILLEGAL, `"abc`},
				{token.IDENT, "x"},
				{token.EOF, ""},
			},
		},
		{
			name:  "css has no line comments",
			input: "// a",
			want: []lexed{
				{token.DELIM, "/"},
				{token.DELIM, "/"},
				{token.IDENT, "a"},
				{token.EOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lex(parser.Tokenize(tt.input)))
		})
	}
}

func TestLexer_BOM(t *testing.T) {
	tokens := parser.Tokenize("\ufeffa")
	require.Len(t, tokens, 3)
	assert.Equal(t, token.BOM, tokens[0].Type)
	assert.Equal(t, "\ufeff", tokens[0].Literal)
	assert.Equal(t, "a", tokens[1].Literal)

	// a BOM that does not start the file stays inside the string
	tokens = parser.Tokenize("\"\ufeff\"")
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "\"\ufeff\"", tokens[0].Literal)
}

func TestLexer_Trivia(t *testing.T) {
	tokens := parser.Tokenize("/* a */ b")
	require.Len(t, tokens, 2)
	require.Len(t, tokens[0].Trivia, 2)
	assert.Equal(t, token.BlockComment, tokens[0].Trivia[0].Kind)
	assert.Equal(t, "/* a */", tokens[0].Trivia[0].Text)
	assert.Equal(t, token.Whitespace, tokens[0].Trivia[1].Kind)

	tokens = parser.TokenizeLess("// a\nb")
	require.Len(t, tokens, 2)
	require.Len(t, tokens[0].Trivia, 2)
	assert.Equal(t, token.LineComment, tokens[0].Trivia[0].Kind)
	assert.Equal(t, "// a", tokens[0].Trivia[0].Text)

	// the comment marker is part of an unquoted url in Less
	tokens = parser.TokenizeLess("url(//cdn/x.png)")
	assert.Equal(t, []lexed{
		{token.IDENT, "url"},
		{token.LPAREN, "("},
		{token.URI_CONTENT, "//cdn/x.png"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}, lex(tokens))
}

func TestLexer_Positions(t *testing.T) {
	tokens := parser.Tokenize("a\n  bé c")
	require.Len(t, tokens, 4)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Span.Start)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 4}, tokens[1].Span.Start)
	// columns count runes
	assert.Equal(t, token.Position{Line: 2, Column: 5, Offset: 7}, tokens[1].Span.End)
	assert.Equal(t, token.Position{Line: 2, Column: 6, Offset: 8}, tokens[2].Span.Start)
}

func TestLexer_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"/* only a comment */",
		"\ufeff@charset \"utf-8\";\n",
		"a { color: red; /* x */ }\n<!-- b{} -->",
		"@media (min-width: 10px) { .a > .b + .c ~ d { margin: -1px 0 +2em 50% !important } }",
		"a { background: url( 'x.png' ) no-repeat, url(y.png) }",
		"\"unterminated\n{}",
		"/* unterminated",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range parser.Tokenize(input) {
			b.WriteString(tok.FullText())
		}
		assert.Equal(t, input, b.String())
	}
}
