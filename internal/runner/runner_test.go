package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/internal/runner"
	"github.com/leapstack-labs/leapcss/internal/state"
	"github.com/leapstack-labs/leapcss/internal/testutil"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func relPaths(t *testing.T, dir string, targets []runner.Target) []string {
	t.Helper()
	var out []string
	for _, tg := range targets {
		rel, err := filepath.Rel(dir, tg.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel)+":"+tg.Language.Name)
	}
	return out
}

func TestDiscover(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.css":              "a {}",
		"b.min.css":          "a{}",
		"b-min.css":          "a{}",
		"c.less":             "a {}",
		"sub/d.css":          "a {}",
		"sub/e.scss":         "a {}",
		".hidden/e.css":      "a {}",
		"node_modules/f.css": "a {}",
		"g.txt":              "",
	})

	tests := []struct {
		name  string
		paths []string
		opts  runner.DiscoverOptions
		want  []string
	}{
		{
			name:  "all languages",
			paths: []string{dir},
			want:  []string{"a.css:css", "c.less:less", "sub/d.css:css"},
		},
		{
			name:  "one language",
			paths: []string{dir},
			opts:  runner.DiscoverOptions{Languages: []*core.Language{core.Less}},
			want:  []string{"c.less:less"},
		},
		{
			name:  "suffix override",
			paths: []string{dir},
			opts: runner.DiscoverOptions{
				Languages: []*core.Language{core.CSS},
				Suffixes:  map[string][]string{"css": {"css", "scss"}},
			},
			want: []string{"a.css:css", "sub/d.css:css", "sub/e.scss:css"},
		},
		{
			name:  "explicit files are deduplicated",
			paths: []string{filepath.Join(dir, "sub"), filepath.Join(dir, "sub", "d.css")},
			want:  []string{"sub/d.css:css"},
		},
		{
			name:  "explicit minified file is skipped",
			paths: []string{filepath.Join(dir, "b.min.css")},
		},
		{
			name:  "forced language",
			paths: []string{filepath.Join(dir, "g.txt")},
			opts:  runner.DiscoverOptions{Force: core.Less},
			want:  []string{"g.txt:less"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, err := runner.Discover(tt.paths, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, dir, targets))
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"g.txt": ""})

	_, err := runner.Discover([]string{filepath.Join(dir, "g.txt")}, runner.DiscoverOptions{})
	assert.ErrorContains(t, err, "no language handles this file")

	_, err = runner.Discover([]string{filepath.Join(dir, "missing")}, runner.DiscoverOptions{})
	assert.ErrorContains(t, err, "failed to access")
}

func discover(t *testing.T, dir string) []runner.Target {
	t.Helper()
	targets, err := runner.Discover([]string{dir}, runner.DiscoverOptions{})
	require.NoError(t, err)
	return targets
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.css": "a {}\n",
		"a.css": "a { colour: red; }\n",
		"c.css": "a {\n  color: red;\n",
	})

	res, err := runner.Run(context.Background(), runner.Options{
		Targets: discover(t, dir),
		Config:  lint.NewConfig(),
		Workers: 2,
		Logger:  testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Files, 3)

	a, b, c := res.Files[0], res.Files[1], res.Files[2]
	assert.Equal(t, filepath.Join(dir, "a.css"), a.Path)
	assert.Equal(t, lint.Traversed, a.State)
	require.Len(t, a.Issues, 1)
	assert.Equal(t, "known-properties", a.Issues[0].RuleID)
	assert.NotNil(t, a.Sheet)

	require.Len(t, b.Issues, 1)
	assert.Equal(t, "empty-rules", b.Issues[0].RuleID)

	assert.Equal(t, lint.ParseFailed, c.State)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, lint.ParsingErrorID, c.Issues[0].RuleID)
	assert.Equal(t, 3, c.Issues[0].Line())

	assert.Equal(t, 3, res.IssueCount())
	assert.Len(t, res.Issues(), 3)
	counts := res.CountBySeverity()
	assert.Equal(t, 1, counts[lint.SeverityError])
	assert.Equal(t, 2, counts[lint.SeverityWarning])
}

func TestRun_ConfigErrorBeforeFiles(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOption("selector-naming-convention", "format", "(")

	res, err := runner.Run(context.Background(), runner.Options{
		Targets: []runner.Target{{Path: "does-not-exist.css", Language: core.CSS}},
		Config:  cfg,
	})
	assert.Nil(t, res)
	var cerr *lint.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "selector-naming-convention", cerr.RuleID)
}

func TestRun_Cancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.css": "a { color: red; }", "b.css": "b { color: red; }"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runner.Run(ctx, runner.Options{Targets: discover(t, dir)})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, runner.ErrCancelled)
}

type boom struct{}

func (boom) Kinds() []tree.Kind                { return []tree.Kind{tree.KindRuleset} }
func (boom) VisitNode(*lint.Pass, tree.Node) { panic("boom") }

func TestRun_AnalysisErrorIsFatal(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.css": "a { color: red; }"})

	registry := lint.NewRegistry()
	registry.Register(lint.ParsingError)
	registry.Register(lint.RuleDef{ID: "boom", New: func(lint.Options) lint.Check { return boom{} }})

	_, err := runner.Run(context.Background(), runner.Options{
		Targets:         discover(t, dir),
		AnalyzerOptions: []lint.Option{lint.WithRegistry(registry)},
	})
	var aerr *lint.AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "boom", aerr.RuleID)
}

func TestRun_Cache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.css": "a {}\n", "b.css": "b { color: red; }\n"})

	store := state.NewSQLiteStore(nil)
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.Migrate())
	defer store.Close()

	run := func(cfg *lint.Config) *runner.Result {
		t.Helper()
		res, err := runner.Run(context.Background(), runner.Options{
			Targets: discover(t, dir),
			Config:  cfg,
			Store:   store,
		})
		require.NoError(t, err)
		return res
	}

	first := run(lint.NewConfig())
	assert.False(t, first.Files[0].Cached)
	assert.False(t, first.Files[1].Cached)

	second := run(lint.NewConfig())
	assert.True(t, second.Files[0].Cached)
	assert.True(t, second.Files[1].Cached)
	assert.Equal(t, first.Issues(), second.Issues())
	assert.Nil(t, second.Files[0].Sheet)

	// editing a file invalidates only that file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.css"), []byte("b {}\n"), 0o644))
	third := run(lint.NewConfig())
	assert.True(t, third.Files[0].Cached)
	assert.False(t, third.Files[1].Cached)
	assert.Equal(t, 2, third.IssueCount())

	// a configuration change invalidates everything
	fourth := run(lint.NewConfig().Disable("empty-rules"))
	assert.False(t, fourth.Files[0].Cached)
	assert.Equal(t, 0, fourth.IssueCount())

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	for _, r := range runs {
		assert.Equal(t, state.RunStatusCompleted, r.Status)
	}
	latest, err := store.GetRun(context.Background(), fourth.RunID)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Files)
}

func TestRun_Encoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.css")
	require.NoError(t, os.WriteFile(path, []byte("a { content: \"caf\xe9\"; }"), 0o644))

	res, err := runner.Run(context.Background(), runner.Options{
		Targets:  []runner.Target{{Path: path, Language: core.CSS}},
		Encoding: "latin1",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Files[0].Sheet)
	assert.Equal(t, "a { content: \"café\"; }", tree.FullText(res.Files[0].Sheet))

	_, err = runner.Run(context.Background(), runner.Options{Encoding: "klingon"})
	assert.ErrorContains(t, err, `unsupported encoding "klingon"`)
}

func TestDecoder(t *testing.T) {
	d, err := runner.NewDecoder("")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", d.Name())

	text, err := d.Decode([]byte("a\xffb"))
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", text)

	d, err = runner.NewDecoder("windows-1252")
	require.NoError(t, err)
	text, err = d.Decode([]byte{0x80, 'x'})
	require.NoError(t, err)
	assert.Equal(t, "€x", text)
}

func TestHashConfig(t *testing.T) {
	a := runner.HashConfig(lint.NewConfig().SetRuleOption("r", "k", "v"))
	b := runner.HashConfig(lint.NewConfig().SetRuleOption("r", "k", "v"))
	c := runner.HashConfig(lint.NewConfig().SetRuleOption("r", "k", "w"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, runner.HashConfig(lint.NewConfig().SetRuleOption("r", "k", "v"), "latin1"))
	assert.Equal(t, runner.HashConfig(nil), runner.HashConfig(lint.NewConfig()))
}

func TestWatch(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.css": "a { color: red; }\n"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan *runner.Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- runner.Watch(ctx, runner.WatchOptions{
			Paths:    []string{dir},
			Run:      runner.Options{Logger: testutil.NewTestLogger(t)},
			Debounce: 50 * time.Millisecond,
		}, func(res *runner.Result, err error) {
			if err == nil {
				results <- res
			}
		})
	}()

	wait := func() *runner.Result {
		t.Helper()
		select {
		case res := <-results:
			return res
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a watch result")
			return nil
		}
	}

	assert.Equal(t, 0, wait().IssueCount())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a {}\n"), 0o644))
	assert.Equal(t, 1, wait().IssueCount())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
