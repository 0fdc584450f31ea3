package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
)

func runRules(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "language", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_Markdown(t *testing.T) {
	out, err := runRules(t, "--format", "markdown")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Lint Rules"))
	for _, group := range []string{"## Compatibility", "## Convention", "## Pitfall", "## Validity"} {
		assert.Contains(t, out, group)
	}
	for _, def := range lint.GetAll() {
		assert.Contains(t, out, def.ID)
	}
}

func TestRulesCommand_Text(t *testing.T) {
	out, err := runRules(t, "--format", "text", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Lint Rules")
	assert.Contains(t, out, "browser_support_level")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	out, err := runRules(t, "--format", "markdown", "--group", "pitfall")
	require.NoError(t, err)

	assert.Contains(t, out, "## Pitfall")
	assert.Contains(t, out, "empty-rules")
	assert.NotContains(t, out, "## Validity")
	assert.NotContains(t, out, "known-properties")
}

func TestRulesCommand_JSON(t *testing.T) {
	out, err := runRules(t, "--format", "json")
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, lint.Count(), result.Count.Total)
	assert.Len(t, result.Rules, result.Count.Total)

	sum := 0
	for _, n := range result.Count.ByGroup {
		sum += n
	}
	assert.Equal(t, result.Count.Total, sum)
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, err := runRules(t, "empty-rules", "--format", "markdown")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# empty-rules"))
		assert.Contains(t, out, "```css")
		assert.Equal(t, 0, strings.Count(out, "```")%2, "code fences must be balanced")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runRules(t, "font-face-browser-compatibility", "--format", "json")
		require.NoError(t, err)

		var rule core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &rule))
		assert.Equal(t, "font-face-browser-compatibility", rule.ID)
		assert.Equal(t, core.SeverityWarning, rule.DefaultSeverity)
		require.Len(t, rule.Params, 1)
		assert.Equal(t, "browser_support_level", rule.Params[0].Key)
		assert.Equal(t, "basic", rule.Params[0].Default)
	})

	t.Run("text", func(t *testing.T) {
		out, err := runRules(t, "selector-naming-convention", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "selector-naming-convention")
		assert.Contains(t, out, "info")
		assert.Contains(t, out, lint.BuildDocURL("selector-naming-convention"))
	})
}

func TestRulesCommand_NotFound(t *testing.T) {
	_, err := runRules(t, "INVALID99")
	require.Error(t, err)
	assert.Equal(t, `rule "INVALID99" not found`, err.Error())
}

func TestFilterRulesByOptions(t *testing.T) {
	rules := []core.RuleInfo{
		{ID: "a", Group: "validity"},
		{ID: "b", Group: "pitfall"},
		{ID: "c", Group: "pitfall", Languages: []string{"less"}},
	}

	tests := []struct {
		name string
		opts RulesOptions
		want []string
	}{
		{name: "no filter", want: []string{"a", "b", "c"}},
		{name: "group", opts: RulesOptions{Group: "Pitfall"}, want: []string{"b", "c"}},
		{name: "language", opts: RulesOptions{Language: "css"}, want: []string{"a", "b"}},
		{name: "group and language", opts: RulesOptions{Group: "pitfall", Language: "less"}, want: []string{"b", "c"}},
		{name: "no match", opts: RulesOptions{Group: "convention"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range filterRulesByOptions(rules, &tt.opts) {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "General", groupTitle(""))
	assert.Equal(t, "Pitfall", groupTitle("pitfall"))
}
