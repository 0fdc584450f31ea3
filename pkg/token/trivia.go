package token

// TriviaKind distinguishes the kinds of non-semantic source text.
type TriviaKind int

// Trivia kinds.
const (
	Whitespace   TriviaKind = iota // spaces, tabs, newlines, form feeds
	BlockComment                   // /* comment */
	LineComment                    // // comment (Less only)
	CDO                            // <!--
	CDC                            // -->
)

var triviaNames = [...]string{
	Whitespace:   "whitespace",
	BlockComment: "block-comment",
	LineComment:  "line-comment",
	CDO:          "cdo",
	CDC:          "cdc",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "unknown"
}

// Trivia is whitespace or a comment attached to the token that follows it.
type Trivia struct {
	Kind TriviaKind
	Text string // includes delimiters (/* */ or //)
	Span Span
}

// IsComment returns true for block and line comments.
func (t Trivia) IsComment() bool {
	return t.Kind == BlockComment || t.Kind == LineComment
}
