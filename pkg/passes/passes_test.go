package passes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/parser"
	"github.com/leapstack-labs/leapcss/pkg/passes"
	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func parse(t *testing.T, src string) *tree.StyleSheet {
	t.Helper()
	sheet, err := parser.Parse(src)
	require.NoError(t, err)
	return sheet
}

func TestHighlights(t *testing.T) {
	src := `@media print { a { color: #fff !important; width: 10px; height: 5%; content: "x"; z-index: 2 } } /* c */`
	sheet := parse(t, src)

	type hl struct {
		typ  passes.TextType
		text string
	}
	var got []hl
	for _, h := range passes.Highlights(sheet) {
		got = append(got, hl{h.Type, src[h.Span.Start.Offset:h.Span.End.Offset]})
	}

	assert.Equal(t, []hl{
		{passes.Keyword, "@media"},
		{passes.KeywordLight, "color"},
		{passes.Constant, "#fff"},
		{passes.Annotation, "!important"},
		{passes.KeywordLight, "width"},
		{passes.Constant, "10px"},
		{passes.KeywordLight, "height"},
		{passes.Constant, "5%"},
		{passes.KeywordLight, "content"},
		{passes.String, `"x"`},
		{passes.KeywordLight, "z-index"},
		{passes.Constant, "2"},
		{passes.Comment, "/* c */"},
	}, got)
}

func TestHighlights_LessLineComments(t *testing.T) {
	src := "// note\n@c: red;\na { color: @c; }"
	sheet, err := parser.ParseWithLanguage(src, core.Less)
	require.NoError(t, err)

	hs := passes.Highlights(sheet)
	require.NotEmpty(t, hs)
	assert.Equal(t, passes.Comment, hs[0].Type)
	assert.Equal(t, "// note", src[hs[0].Span.Start.Offset:hs[0].Span.End.Offset])
}

func TestTextType_String(t *testing.T) {
	assert.Equal(t, "keyword_light", passes.KeywordLight.String())
	assert.Equal(t, "annotation", passes.Annotation.String())
	assert.Equal(t, "unknown", passes.TextType(42).String())
}

func images(toks []passes.CPDToken) []string {
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Image)
	}
	return out
}

func TestCPDTokens(t *testing.T) {
	sheet := parse(t, "\ufeffa /* c */ { width: 1px; content: \"x\"; }\n")

	tests := []struct {
		name string
		opts passes.CPDOptions
		want []string
	}{
		{
			name: "verbatim",
			want: []string{"a", "{", "width", ":", "1", "px", ";", "content", ":", `"x"`, ";", "}"},
		},
		{
			name: "numbers normalised",
			opts: passes.CPDOptions{NormalizeNumbers: true},
			want: []string{"a", "{", "width", ":", "$number", "px", ";", "content", ":", `"x"`, ";", "}"},
		},
		{
			name: "strings normalised",
			opts: passes.CPDOptions{NormalizeStrings: true},
			want: []string{"a", "{", "width", ":", "1", "px", ";", "content", ":", "$string", ";", "}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, images(passes.CPDTokens(sheet, tt.opts)))
		})
	}
}

func cpdFile(t *testing.T, path, src string) passes.CPDFile {
	t.Helper()
	return passes.CPDFile{Path: path, Tokens: passes.CPDTokens(parse(t, src), passes.CPDOptions{})}
}

func TestFindDuplicates_AcrossFiles(t *testing.T) {
	files := []passes.CPDFile{
		cpdFile(t, "a.css", "a { color: red; margin: 0; }"),
		cpdFile(t, "b.css", "b { color: red; margin: 0; }"),
	}

	dups := passes.FindDuplicates(files, 5)
	require.Len(t, dups, 1)
	assert.Equal(t, 10, dups[0].Tokens)
	assert.Equal(t, []passes.Occurrence{
		{
			Path:  "a.css",
			Start: token.Position{Line: 1, Column: 3, Offset: 2},
			End:   token.Position{Line: 1, Column: 29, Offset: 28},
		},
		{
			Path:  "b.css",
			Start: token.Position{Line: 1, Column: 3, Offset: 2},
			End:   token.Position{Line: 1, Column: 29, Offset: 28},
		},
	}, dups[0].Occurrences)

	assert.Empty(t, passes.FindDuplicates(files, 11))
}

func TestFindDuplicates_SameFile(t *testing.T) {
	files := []passes.CPDFile{cpdFile(t, "a.css", "a { x: 1; } a { x: 1; }")}

	dups := passes.FindDuplicates(files, 7)
	require.Len(t, dups, 1)
	assert.Equal(t, 7, dups[0].Tokens)
	require.Len(t, dups[0].Occurrences, 2)
	assert.Equal(t, 1, dups[0].Occurrences[0].Start.Column)
	assert.Equal(t, 13, dups[0].Occurrences[1].Start.Column)
}

func TestFindDuplicates_DefaultMinimum(t *testing.T) {
	files := []passes.CPDFile{
		cpdFile(t, "a.css", "a { color: red; }"),
		cpdFile(t, "b.css", "a { color: red; }"),
	}
	assert.Empty(t, passes.FindDuplicates(files, 0))
}

func TestComputeMetrics(t *testing.T) {
	src := "/* header\n   comment */\n@import \"a.css\";\n\na {\n  color: red; /* inline */\n  margin: 0;\n}\n\n" +
		"@media print {\n  b { display: none; }\n}\n"

	m := passes.ComputeMetrics(parse(t, src))
	assert.Equal(t, passes.Metrics{
		LinesOfCode:  8,
		CommentLines: 3,
		Statements:   5,
		Rules:        2,
	}, m)

	var total passes.Metrics
	total.Add(m)
	total.Add(m)
	assert.Equal(t, 16, total.LinesOfCode)
	assert.Equal(t, 4, total.Rules)
}

func TestComputeMetrics_Empty(t *testing.T) {
	assert.Equal(t, passes.Metrics{}, passes.ComputeMetrics(parse(t, "")))
}
