package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "leapcss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultEncoding, cfg.Encoding)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, []string{"css"}, cfg.CSS.Suffixes)
	assert.True(t, cfg.CSS.ExcludeMinified)
	assert.Equal(t, []string{"less"}, cfg.Less.Suffixes)
	assert.False(t, cfg.Less.ExcludeMinified)
	assert.Equal(t, DefaultMinimumTokens, cfg.CPD.MinimumTokens)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(dir, DefaultCacheFile), cfg.Cache.Path)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.NotNil(t, cfg.Lint)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(ResetConfig)

	path := writeConfig(t, dir, `output: json
workers: 4
css:
  suffixes: [css, pcss]
  exclude_minified: false
lint:
  disabled: [empty-rules]
  severity:
    unknown-functions: error
  rules:
    selector-naming-convention:
      format: "^[a-z]+$"
cpd:
  minimum_tokens: 20
cache:
  enabled: true
  path: build/cache.db
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"css", "pcss"}, cfg.CSS.Suffixes)
	assert.False(t, cfg.CSS.ExcludeMinified)
	assert.Equal(t, []string{"less"}, cfg.Less.Suffixes, "untouched defaults survive")
	assert.Equal(t, []string{"empty-rules"}, cfg.Lint.Disabled)
	assert.Equal(t, map[string]string{"unknown-functions": "error"}, cfg.Lint.Severity)
	assert.Equal(t, "^[a-z]+$", cfg.Lint.Rules["selector-naming-convention"]["format"])
	assert.Equal(t, 20, cfg.CPD.MinimumTokens)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(dir, "build", "cache.db"), cfg.Cache.Path)
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "log_level: error\n")
	nested := filepath.Join(root, "styles", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, DefaultCacheFile), cfg.Cache.Path)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(ResetConfig)
	writeConfig(t, dir, "log_level: error\nworkers: 2\nencoding: latin1\n")

	t.Setenv("LEAPCSS_LOG_LEVEL", "info")
	t.Setenv("LEAPCSS_WORKERS", "3")
	t.Setenv("LEAPCSS_CPD__MINIMUM_TOKENS", "50")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("workers", 0, "")
	flags.String("encoding", "", "")
	flags.Bool("cache", false, "")
	flags.StringSlice("disable", nil, "")
	require.NoError(t, flags.Parse([]string{"--workers=5", "--cache", "--disable=empty-rules"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel, "env overrides file")
	assert.Equal(t, 5, cfg.Workers, "flag overrides env")
	assert.Equal(t, "latin1", cfg.Encoding, "unchanged flag keeps the file value")
	assert.Equal(t, 50, cfg.CPD.MinimumTokens, "nested env key")
	assert.True(t, cfg.Cache.Enabled, "--cache maps to cache.enabled")
	assert.Empty(t, cfg.Lint.Disabled, "command flags do not feed the config")
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad output", content: "output: xml\n", wantErr: `invalid output "xml"`},
		{name: "bad log level", content: "log_level: loud\n", wantErr: `invalid log level "loud"`},
		{name: "negative workers", content: "workers: -1\n", wantErr: "workers must not be negative"},
		{name: "zero minimum tokens", content: "cpd:\n  minimum_tokens: 0\n", wantErr: "cpd.minimum_tokens must be positive"},
		{name: "no suffixes", content: "css:\n  suffixes: []\n", wantErr: "css.suffixes must not be empty"},
		{name: "bad severity", content: "lint:\n  severity:\n    empty-rules: fatal\n", wantErr: `unknown severity "fatal"`},
		{name: "bad yaml", content: "output: [\n", wantErr: "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			t.Cleanup(ResetConfig)
			writeConfig(t, dir, tt.content)

			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	t.Cleanup(ResetConfig)

	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, dir, cfg.ProjectRoot)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		verbose   bool
		wantDebug bool
		wantWarn  bool
	}{
		{name: "default", level: "warn", wantWarn: true},
		{name: "debug", level: "debug", wantDebug: true, wantWarn: true},
		{name: "error", level: "error"},
		{name: "verbose forces debug", level: "error", verbose: true, wantDebug: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, &Config{LogLevel: tt.level, Verbose: tt.verbose})
			require.NoError(t, err)

			logger.Debug("debug message")
			logger.Warn("warn message")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn message")))
		})
	}

	_, err := NewLogger(&bytes.Buffer{}, &Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger, err := NewLogger(&bytes.Buffer{}, Default())
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
