package tree

import "strings"

// Tokens returns the tokens of n in source order.
func Tokens(n Node) []*SyntaxToken {
	var out []*SyntaxToken
	Inspect(n, func(c Node) bool {
		if t, ok := c.(*SyntaxToken); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// FullText reconstructs the source of n, including the trivia of every
// token. FullText of a StyleSheet equals the parsed input.
func FullText(n Node) string {
	var b strings.Builder
	for _, t := range Tokens(n) {
		for _, tr := range t.Trivia {
			b.WriteString(tr.Text)
		}
		b.WriteString(t.Literal)
	}
	return b.String()
}

// Text is FullText without the trivia preceding the first token.
func Text(n Node) string {
	toks := Tokens(n)
	if len(toks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(toks[0].Literal)
	for _, t := range toks[1:] {
		for _, tr := range t.Trivia {
			b.WriteString(tr.Text)
		}
		b.WriteString(t.Literal)
	}
	return b.String()
}

// FirstToken returns the first token of n, or nil.
func FirstToken(n Node) *SyntaxToken {
	var first *SyntaxToken
	Inspect(n, func(c Node) bool {
		if first != nil {
			return false
		}
		if t, ok := c.(*SyntaxToken); ok {
			first = t
			return false
		}
		return true
	})
	return first
}
