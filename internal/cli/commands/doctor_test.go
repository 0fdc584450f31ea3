package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHealthScore(t *testing.T) {
	tests := []struct {
		name      string
		checks    []HealthCheck
		fileCount int
		want      int
	}{
		{
			name:      "no checks returns 100",
			fileCount: 10,
			want:      100,
		},
		{
			name: "all passing returns 100",
			checks: []HealthCheck{
				{RuleID: "empty-rules", Status: "pass"},
				{RuleID: "known-properties", Status: "pass"},
			},
			fileCount: 10,
			want:      100,
		},
		{
			name: "warnings reduce score",
			checks: []HealthCheck{
				{RuleID: "empty-rules", Status: "pass"},
				{RuleID: "known-properties", Status: "warn", IssueCount: 2},
			},
			fileCount: 10,
			want:      90,
		},
		{
			name:      "errors count double",
			checks:    []HealthCheck{{RuleID: "empty-rules", Status: "error", IssueCount: 2}},
			fileCount: 10,
			want:      80,
		},
		{
			name:      "more files means less impact per issue",
			checks:    []HealthCheck{{RuleID: "empty-rules", Status: "warn", IssueCount: 5}},
			fileCount: 100,
			want:      90,
		},
		{
			name: "many issues clamp to 0",
			checks: []HealthCheck{
				{RuleID: "empty-rules", Status: "error", IssueCount: 20},
				{RuleID: "known-properties", Status: "error", IssueCount: 20},
			},
			fileCount: 5,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateHealthScore(tt.checks, tt.fileCount))
		})
	}
}

func TestGetRecommendation(t *testing.T) {
	for _, id := range []string{
		"known-properties", "unknown-at-rules", "unknown-functions", "obsolete-properties",
		"font-face-browser-compatibility", "duplicated-selectors", "empty-rules", "selector-naming-convention",
	} {
		t.Run(id, func(t *testing.T) {
			assert.NotEmpty(t, getRecommendation(id))
		})
	}
	assert.Empty(t, getRecommendation("unknown"))
}

func TestGenerateRecommendations(t *testing.T) {
	checks := []HealthCheck{
		{RuleID: "empty-rules", Status: "warn", IssueCount: 1},
		{RuleID: "obsolete-properties", Status: "warn", IssueCount: 2},
		{RuleID: "known-properties", Status: "pass"},
	}

	recs := generateRecommendations(checks, ProjectSummary{ParseFailures: 1, Duplications: 1})
	require.Len(t, recs, 4)
	assert.Contains(t, recs[0], "syntax errors")
	assert.Contains(t, recs[1], "empty rulesets")
	assert.Contains(t, recs[2], "obsolete properties")
	assert.Contains(t, recs[3], "leapcss cpd")
}

func TestGenerateRecommendations_LimitTo5(t *testing.T) {
	var checks []HealthCheck
	for _, id := range []string{
		"known-properties", "unknown-at-rules", "unknown-functions", "obsolete-properties",
		"font-face-browser-compatibility", "duplicated-selectors", "empty-rules",
	} {
		checks = append(checks, HealthCheck{RuleID: id, Status: "warn", IssueCount: 1})
	}

	assert.Len(t, generateRecommendations(checks, ProjectSummary{}), 5)
}

func TestDoctorCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(".a { }\n.b { color: red; }\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.less"), []byte("@c: red;\n.d { color: @c; }\n"), 0600))

	cmd := NewDoctorCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--format", "json"})
	require.NoError(t, cmd.Execute())

	var got DoctorOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Summary.Files)
	assert.Equal(t, 1, got.Summary.CSSFiles)
	assert.Equal(t, 1, got.Summary.LessFiles)
	assert.Zero(t, got.Summary.ParseFailures)
	assert.Equal(t, 3, got.Summary.Rules)

	var empty *HealthCheck
	for i := range got.HealthChecks {
		if got.HealthChecks[i].RuleID == "empty-rules" {
			empty = &got.HealthChecks[i]
		}
	}
	require.NotNil(t, empty)
	assert.Equal(t, "warn", empty.Status)
	assert.Equal(t, 1, empty.IssueCount)
	assert.Less(t, got.Score, 100)
}

func TestDoctorCommand_NoFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewDoctorCommand()
	errOut := new(bytes.Buffer)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"--format", "markdown"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "No stylesheets found")
}
