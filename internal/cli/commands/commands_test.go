package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files relative to a new working directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewTreeCommand(), "tree <file>", []string{"language", "trivia"}},
		{NewHighlightCommand(), "highlight <file>", []string{"language", "format"}},
		{NewMetricsCommand(), "metrics [paths...]", []string{"language", "format"}},
		{NewCPDCommand(), "cpd [paths...]", []string{"language", "format", "minimum-tokens", "normalize"}},
		{NewDiscoverCommand(), "discover [paths...]", []string{"language", "format"}},
		{NewRunsCommand(), "runs", []string{"format", "limit"}},
		{NewDoctorCommand(), "doctor [paths...]", []string{"language", "format"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestTreeCommand(t *testing.T) {
	writeFiles(t, map[string]string{"a.css": "a { color: red; }"})

	out, _, err := execute(t, NewTreeCommand(), "a.css")
	require.NoError(t, err)
	assert.Contains(t, out, "style-sheet")
	assert.Contains(t, out, "ruleset")
	assert.Contains(t, out, "property-declaration")
	assert.Contains(t, out, `IDENT "color" 1:5`)
	assert.NotContains(t, out, "whitespace")

	out, _, err = execute(t, NewTreeCommand(), "--trivia", "a.css")
	require.NoError(t, err)
	assert.Contains(t, out, `whitespace " " 1:2`)
}

func TestTreeCommand_Errors(t *testing.T) {
	writeFiles(t, map[string]string{
		"broken.css":  "a { color: red; ",
		"lib.min.css": "a{}",
		"a.css":       "a {}",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "parse error", args: []string{"broken.css"}, wantErr: "broken.css: "},
		{name: "minified", args: []string{"lib.min.css"}, wantErr: "lib.min.css: file is skipped as minified"},
		{name: "missing file", args: []string{"nope.css"}, wantErr: "nope.css"},
		{name: "unknown language", args: []string{"--language", "sass", "a.css"}, wantErr: `"sass"`},
		{name: "no argument", wantErr: "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, NewTreeCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHighlightCommand(t *testing.T) {
	writeFiles(t, map[string]string{"a.css": "@media print { a { color: #fff !important; } } /* c */"})

	out, _, err := execute(t, NewHighlightCommand(), "--format", "json", "a.css")
	require.NoError(t, err)

	var got []HighlightJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var pairs []string
	for _, h := range got {
		pairs = append(pairs, h.Type+"="+h.Text)
	}
	assert.Equal(t, []string{
		"keyword=@media",
		"keyword_light=color",
		"constant=#fff",
		"annotation=!important",
		"comment=/* c */",
	}, pairs)
	assert.Equal(t, 1, got[0].StartLine)
	assert.Equal(t, 1, got[0].StartColumn)
	assert.Equal(t, 7, got[0].EndColumn)

	out, _, err = execute(t, NewHighlightCommand(), "--format", "markdown", "a.css")
	require.NoError(t, err)
	assert.Contains(t, out, "keyword_light")
	assert.Contains(t, out, "| ")
}

func TestMetricsCommand(t *testing.T) {
	src := "/* header\n   comment */\n@import \"a.css\";\n\na {\n  color: red; /* inline */\n  margin: 0;\n}\n\n" +
		"@media print {\n  b { display: none; }\n}\n"
	writeFiles(t, map[string]string{
		"a.css":      src,
		"b.css":      src,
		"broken.css": "a {",
	})

	out, stderr, err := execute(t, NewMetricsCommand(), "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var got MetricsJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Files, 2)
	assert.Equal(t, FileMetrics{Path: got.Files[0].Path, LinesOfCode: 8, CommentLines: 3, Statements: 5, Rules: 2}, got.Files[0])
	assert.Equal(t, 16, got.Total.LinesOfCode)
	assert.Equal(t, 4, got.Total.Rules)
	require.Len(t, got.ParseFailures, 1)
	assert.Equal(t, "broken.css", filepath.Base(got.ParseFailures[0]))

	out, stderr, err = execute(t, NewMetricsCommand(), "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "a.css")
	assert.Contains(t, stderr, "WARN unable to parse broken.css")
}

func TestCPDCommand(t *testing.T) {
	writeFiles(t, map[string]string{
		"a.css": "a { color: red; margin: 0; }",
		"b.css": "b { color: red; margin: 0; }",
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, NewCPDCommand(), "--format", "json", "--minimum-tokens", "5")
		require.NoError(t, err)

		var got CPDJSONOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 5, got.MinimumTokens)
		assert.Equal(t, 2, got.Files)
		require.Len(t, got.Duplications, 1)
		assert.Equal(t, 10, got.Duplications[0].Tokens)
		require.Len(t, got.Duplications[0].Occurrences, 2)
		o := got.Duplications[0].Occurrences[0]
		assert.Equal(t, "a.css", filepath.Base(o.Path))
		assert.Equal(t, OccurrenceJSON{Path: o.Path, StartLine: 1, StartColumn: 3, EndLine: 1, EndColumn: 29}, o)
	})

	t.Run("default minimum", func(t *testing.T) {
		out, _, err := execute(t, NewCPDCommand(), "--format", "markdown")
		require.NoError(t, err)
		assert.Contains(t, out, "No duplications of 70 tokens or more in 2 files")
	})

	t.Run("markdown", func(t *testing.T) {
		out, _, err := execute(t, NewCPDCommand(), "--format", "markdown", "--minimum-tokens", "5")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# 1 duplications"))
		assert.Contains(t, out, "10 tokens in 2 places")
		assert.Contains(t, out, "1:3-1:29")
	})
}

func TestDiscoverCommand(t *testing.T) {
	writeFiles(t, map[string]string{
		"styles/a.css":       "a {}",
		"styles/b.less":      "b {}",
		"styles/lib.min.css": "c{}",
		"README.md":          "# x",
	})

	out, _, err := execute(t, NewDiscoverCommand(), "--format", "json")
	require.NoError(t, err)

	var got DiscoverOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Files, 2)
	assert.Equal(t, map[string]int{"css": 1, "less": 1}, got.Summary)

	out, _, err = execute(t, NewDiscoverCommand(), "--format", "json", "--language", "less")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	for _, f := range got.Files {
		assert.Equal(t, "less", f.Language)
	}
}

func TestRunsCommand_NoCache(t *testing.T) {
	writeFiles(t, nil)

	_, stderr, err := execute(t, NewRunsCommand(), "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stderr, "No cache found")
}
