package passes

import (
	"sort"

	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// TextType classifies a highlighted span.
type TextType int

// Highlighting classes.
const (
	Keyword      TextType = iota // at-keywords
	KeywordLight                 // property names
	String                       // string literals
	Comment                      // block and line comments
	Constant                     // numbers, dimensions, percentages, hashes
	Annotation                   // !important
)

var textTypeNames = [...]string{
	Keyword:      "keyword",
	KeywordLight: "keyword_light",
	String:       "string",
	Comment:      "comment",
	Constant:     "constant",
	Annotation:   "annotation",
}

func (t TextType) String() string {
	if int(t) < len(textTypeNames) {
		return textTypeNames[t]
	}
	return "unknown"
}

// Highlight is one classified span of source.
type Highlight struct {
	Span token.Span
	Type TextType
}

// Highlights returns the highlighted spans of sheet ordered by start
// offset. Spans never overlap.
func Highlights(sheet *tree.StyleSheet) []Highlight {
	h := &highlighter{}
	h.Bind(h)
	tree.Walk(h, sheet)
	sort.SliceStable(h.out, func(i, j int) bool {
		return h.out[i].Span.Start.Offset < h.out[j].Span.Start.Offset
	})
	return h.out
}

type highlighter struct {
	tree.BaseVisitor
	out []Highlight
}

func (h *highlighter) add(n tree.Node, typ TextType) {
	h.out = append(h.out, Highlight{Span: n.Span(), Type: typ})
}

// comments of the tokens of n, for nodes whose children are not scanned.
func (h *highlighter) addComments(n tree.Node) {
	for _, t := range tree.Tokens(n) {
		h.VisitToken(t)
	}
}

func (h *highlighter) VisitAtKeyword(n *tree.AtKeyword) {
	h.add(n, Keyword)
	h.addComments(n)
}

func (h *highlighter) VisitProperty(n *tree.Property) {
	h.add(n, KeywordLight)
	h.addComments(n)
}

func (h *highlighter) VisitStringLiteral(n *tree.StringLiteral) {
	h.add(n, String)
	h.addComments(n)
}

func (h *highlighter) VisitNumber(n *tree.Number) {
	h.add(n, Constant)
	h.addComments(n)
}

func (h *highlighter) VisitDimension(n *tree.Dimension) {
	h.add(n, Constant)
	h.addComments(n)
}

func (h *highlighter) VisitPercentage(n *tree.Percentage) {
	h.add(n, Constant)
	h.addComments(n)
}

func (h *highlighter) VisitHash(n *tree.Hash) {
	h.add(n, Constant)
	h.addComments(n)
}

func (h *highlighter) VisitImportant(n *tree.Important) {
	h.add(n, Annotation)
	h.addComments(n)
}

func (h *highlighter) VisitComment(_ *tree.SyntaxToken, tr token.Trivia) {
	h.out = append(h.out, Highlight{Span: tr.Span, Type: Comment})
}
