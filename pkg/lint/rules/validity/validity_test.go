package validity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/validity" // register rules
)

// Helper to run one rule over a source
func runRule(t *testing.T, lang *core.Language, src string, ruleID string) []lint.Issue {
	t.Helper()
	analyzer, err := lint.NewAnalyzer(lint.NewConfig().Only(ruleID), lang)
	require.NoError(t, err)

	res, err := analyzer.AnalyzeFile("test."+lang.Name, src)
	require.NoError(t, err)
	require.Equal(t, lint.Traversed, res.State, "source must parse")
	return res.Issues
}

func messages(issues []lint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

func TestUnknownAtRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "standard", src: "@media screen { a { color: red } } @import 'a.css';"},
		{name: "case insensitive", src: "@MEDIA screen {}"},
		{name: "vendor prefixed standard", src: "@-webkit-keyframes k { from { top: 0 } }"},
		{name: "vendor prefixed unknown", src: "@-moz-document url-prefix() {}"},
		{
			name: "unknown",
			src:  "@media-query screen {}",
			want: []string{`Remove this usage of the unknown "media-query" @-rule.`},
		},
		{
			name: "unknown nested",
			src:  "@media screen { @foo; a { @bar {} } }",
			want: []string{
				`Remove this usage of the unknown "foo" @-rule.`,
				`Remove this usage of the unknown "bar" @-rule.`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runRule(t, core.CSS, tt.src, "unknown-at-rules")
			assert.Equal(t, len(tt.want), len(issues))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, messages(issues))
			}
		})
	}
}

func TestUnknownAtRules_Location(t *testing.T) {
	issues := runRule(t, core.CSS, "a {}\n  @foo bar;", "unknown-at-rules")
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Pos.Line)
	assert.Equal(t, 3, issues[0].Pos.Column)
	assert.Equal(t, 7, issues[0].EndPos.Column)
	assert.Equal(t, lint.SeverityWarning, issues[0].Severity)
}

func TestUnknownFunctions(t *testing.T) {
	tests := []struct {
		name string
		lang *core.Language
		src  string
		want []string
	}{
		{name: "standard", lang: core.CSS, src: "a { width: calc(100% - 1px); color: rgb(0, 0, 0); }"},
		{name: "case insensitive", lang: core.CSS, src: "a { color: RGBA(0, 0, 0, .5) }"},
		{name: "url is not a function", lang: core.CSS, src: "a { background: url(x.png) }"},
		{name: "vendor prefixed", lang: core.CSS, src: "a { background: -webkit-gradient(linear, left top, left bottom) }"},
		{name: "vendor prefixed unknown", lang: core.CSS, src: "a { x: -moz-foo(1) }"},
		{
			name: "unknown",
			lang: core.CSS,
			src:  "a { width: calculate(1px) }",
			want: []string{`Remove this usage of the unknown "calculate" function.`},
		},
		{
			name: "nested unknown",
			lang: core.CSS,
			src:  "a { width: calc(foo(1px) + bar()) }",
			want: []string{
				`Remove this usage of the unknown "foo" function.`,
				`Remove this usage of the unknown "bar" function.`,
			},
		},
		{
			name: "less function in css",
			lang: core.CSS,
			src:  "a { color: darken(#fff, 10%) }",
			want: []string{`Remove this usage of the unknown "darken" function.`},
		},
		{name: "less function in less", lang: core.Less, src: "@c: #fff;\na { color: darken(@c, 10%) }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runRule(t, tt.lang, tt.src, "unknown-functions")
			assert.Equal(t, len(tt.want), len(issues))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, messages(issues))
			}
		})
	}
}

func TestKnownProperties(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "standard", src: "a { color: red; margin: 0 }"},
		{name: "case insensitive", src: "a { COLOR: red }"},
		{name: "custom property", src: ":root { --main-color: red }"},
		{name: "vendor prefixed", src: "a { -webkit-transition: none; -moz-unknown-thing: 1 }"},
		{name: "star hack", src: "a { *zoom: 1 }"},
		{name: "font-face descriptor", src: "@font-face { font-family: x; src: url(x.woff) }"},
		{
			name: "unknown",
			src:  "a { colour: red; color: red; }\nb { widht: 1px }",
			want: []string{
				`Remove this usage of the unknown "colour" property.`,
				`Remove this usage of the unknown "widht" property.`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runRule(t, core.CSS, tt.src, "known-properties")
			assert.Equal(t, len(tt.want), len(issues))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, messages(issues))
			}
		})
	}
}
