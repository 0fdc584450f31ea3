package compatibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/compatibility" // register rules
)

const fontFaceID = "font-face-browser-compatibility"

func runRule(t *testing.T, cfg *lint.Config, ruleID, src string) []string {
	t.Helper()
	analyzer, err := lint.NewAnalyzer(cfg.Only(ruleID), core.CSS)
	require.NoError(t, err)

	res, err := analyzer.AnalyzeFile("test.css", src)
	require.NoError(t, err)
	require.Equal(t, lint.Traversed, res.State, "source must parse")

	var got []string
	for _, i := range res.Issues {
		got = append(got, i.Message)
	}
	return got
}

const (
	missingFormat = `Add a "format()" hint after this "url()".`
	missingEOT    = `Add a preceding "src" declaration with a single ".eot" url.`
	missingIEFix  = `Add an ".eot" url with the "?#iefix" suffix to this "src" declaration.`
)

func TestFontFaceBrowserCompatibility(t *testing.T) {
	const (
		modern = `@font-face {
  font-family: "f";
  src: url("f.woff2") format("woff2"), url(f.woff) format("woff");
}`
		withEOT = `@font-face {
  font-family: "f";
  src: url("f.eot");
  src: url("f.woff2") format("woff2"), url("f.woff") format("woff");
}`
		withIEFix = `@font-face {
  font-family: "f";
  src: url("f.eot");
  src: url("f.eot?#iefix") format("embedded-opentype"), url("f.woff") format("woff");
}`
	)

	tests := []struct {
		name  string
		level string
		src   string
		want  []string
	}{
		{name: "basic compliant", src: modern},
		{name: "basic with local", src: `@font-face { src: local("F"), url(f.woff) format("woff"); }`},
		{name: "other at-rules are ignored", src: `@media print { a { color: red; } }`},
		{
			name: "missing src",
			src:  `@font-face { font-family: "f"; }`,
			want: []string{`Add a "src" property to this "@font-face" rule.`},
		},
		{
			name: "missing format",
			src:  `@font-face { src: url("f.woff2"), url("f.woff") format("woff"); }`,
			want: []string{missingFormat},
		},
		{
			name: "only the last src is checked for formats",
			src:  withEOT,
		},
		{name: "deep compliant", level: "deep", src: withEOT},
		{name: "deep without eot", level: "deep", src: modern, want: []string{missingEOT}},
		{name: "deepest compliant", level: "deepest", src: withIEFix},
		{name: "deepest without iefix", level: "deepest", src: withEOT, want: []string{missingIEFix}},
		{
			name:  "deepest with nothing",
			level: "deepest",
			src:   `@font-face { src: url("f.woff"); }`,
			want:  []string{missingFormat, missingEOT, missingIEFix},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := lint.NewConfig()
			if tt.level != "" {
				cfg.SetRuleOption(fontFaceID, "browser_support_level", tt.level)
			}
			assert.Equal(t, tt.want, runRule(t, cfg, fontFaceID, tt.src))
		})
	}
}

func TestFontFaceBrowserCompatibility_InvalidLevel(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOption(fontFaceID, "browser_support_level", "blabla")
	_, err := lint.NewAnalyzer(cfg, core.CSS)
	require.Error(t, err)

	var cerr *lint.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "browser_support_level", cerr.Param)
	assert.Equal(t, "Check css:font-face-browser-compatibility "+
		`("@font-face" rule should be made compatible with the required browsers): `+
		"parameter value is not valid.\nActual: 'blabla'\nExpected: 'basic' or 'deep' or 'deepest'", err.Error())
}

func TestObsoleteProperties(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "standard properties", src: "a { color: red; clip-path: none; }"},
		{name: "experimental is not obsolete", src: "a { zoom: 1; }"},
		{
			name: "obsolete",
			src:  "a { clip: rect(0, 0, 0, 0); }",
			want: []string{`Remove this usage of the obsolete "clip" property.`},
		},
		{
			name: "vendor prefixed",
			src:  "a { -webkit-box-flex: 1; display: flex; }",
			want: []string{`Remove this usage of the obsolete "-webkit-box-flex" property.`},
		},
		{
			name: "nested in at-rules",
			src:  "@media screen { a { grid-gap: 1px; } }",
			want: []string{`Remove this usage of the obsolete "grid-gap" property.`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runRule(t, lint.NewConfig(), "obsolete-properties", tt.src))
		})
	}
}
