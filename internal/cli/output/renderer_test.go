package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"text", ModeText},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{"xml", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{name: "auto on terminal", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, want: ModeMarkdown},
		{name: "explicit text piped", mode: ModeText, want: ModeText},
		{name: "json on terminal", mode: ModeJSON, isTTY: true, want: ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_PlainWhenPiped(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRenderer(out, errOut, ModeAuto)
	assert.False(t, r.IsTTY())

	r.Header(1, "Lint Rules")
	r.Success("done")
	r.StatusLine("leapcss.yaml", "success", "created")
	r.Error("broken")
	r.Warning("careful")

	assert.Equal(t, "# Lint Rules\n\nOK done\n  - leapcss.yaml created\n", out.String())
	assert.Equal(t, "ERROR broken\nWARN careful\n", errOut.String())
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(LintOutput{RunID: "run-1", Summary: LintSummary{TotalIssues: 2}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, float64(2), got["summary"].(map[string]any)["total_issues"])
}
