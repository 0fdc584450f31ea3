package pitfall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/pitfall" // register rules
)

func runRule(t *testing.T, lang *core.Language, ruleID, src string) []lint.Issue {
	t.Helper()
	analyzer, err := lint.NewAnalyzer(lint.NewConfig().Only(ruleID), lang)
	require.NoError(t, err)

	res, err := analyzer.AnalyzeFile("test."+lang.Suffixes[0], src)
	require.NoError(t, err)
	require.Equal(t, lint.Traversed, res.State, "source must parse")
	return res.Issues
}

func messages(issues []lint.Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

func TestDuplicatedSelectors(t *testing.T) {
	tests := []struct {
		name string
		lang *core.Language
		src  string
		want []string
	}{
		{name: "distinct", src: "a {} b {} .a {} #a {}"},
		{
			name: "same scope",
			src:  ".btn { color: red; }\n.btn { margin: 0; }",
			want: []string{`Merge the rules using the duplicated ".btn" selector.`},
		},
		{
			name: "within one list",
			src:  "a, b, a {}",
			want: []string{`Merge the rules using the duplicated "a" selector.`},
		},
		{
			name: "whitespace is normalized",
			src:  "a  >\n b {} a > b {} a /* c */ b {} a b {}",
			want: []string{
				`Merge the rules using the duplicated "a > b" selector.`,
				`Merge the rules using the duplicated "a b" selector.`,
			},
		},
		{name: "different at-rule scopes", src: "a {} @media print { a {} } @media screen { a {} }"},
		{
			name: "inside one at-rule",
			src:  "@media print { a {} a {} }",
			want: []string{`Merge the rules using the duplicated "a" selector.`},
		},
		{name: "keyframes", src: "@keyframes k { from {} to {} } @keyframes l { from {} to {} }"},
		{name: "less nesting scopes", lang: core.Less, src: ".a { &:hover {} } .b { &:hover {} }"},
		{
			name: "less nesting duplicate",
			lang: core.Less,
			src:  ".a { .c {} .c {} }",
			want: []string{`Merge the rules using the duplicated ".c" selector.`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := tt.lang
			if lang == nil {
				lang = core.CSS
			}
			assert.Equal(t, tt.want, messages(runRule(t, lang, "duplicated-selectors", tt.src)))
		})
	}
}

func TestDuplicatedSelectors_Secondary(t *testing.T) {
	issues := runRule(t, core.CSS, "duplicated-selectors", ".a {}\n\n  .a {}")
	require.Len(t, issues, 1)

	assert.Equal(t, 3, issues[0].Pos.Line)
	assert.Equal(t, 3, issues[0].Pos.Column)
	require.Len(t, issues[0].RelatedInfo, 1)
	assert.Equal(t, 1, issues[0].RelatedInfo[0].Pos.Line)
	assert.Equal(t, 1, issues[0].RelatedInfo[0].Pos.Column)
	assert.Equal(t, "First occurrence", issues[0].RelatedInfo[0].Message)
}

func TestEmptyRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "declarations", src: "a { color: red; }"},
		{name: "empty", src: "a {}", want: 1},
		{name: "comment only", src: "a { /* todo */ }", want: 1},
		{name: "semicolon only", src: "a { ; }", want: 1},
		{name: "empty at-rule is not a rule", src: "@media print {}"},
		{name: "nested", src: "@media print { a {} b { color: red; } }", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runRule(t, core.CSS, "empty-rules", tt.src)
			require.Len(t, issues, tt.want)
			for _, i := range issues {
				assert.Equal(t, "Remove this empty rule.", i.Message)
			}
		})
	}
}
