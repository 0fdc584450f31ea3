// Package config provides configuration management for the leapcss CLI.
//
// Configuration is layered with koanf: built-in defaults, then the
// leapcss.yaml project file, then LEAPCSS_* environment variables, then
// the flags given on the command line.
package config

// LanguageConfig holds the file selection of one stylesheet language.
type LanguageConfig struct {
	Suffixes        []string `koanf:"suffixes" yaml:"suffixes"`
	ExcludeMinified bool     `koanf:"exclude_minified" yaml:"exclude_minified"`
}

// LintConfig holds rule selection and rule parameters.
type LintConfig struct {
	Disabled []string                  `koanf:"disabled" yaml:"disabled,omitempty"`
	Severity map[string]string         `koanf:"severity" yaml:"severity,omitempty"`
	Rules    map[string]map[string]any `koanf:"rules" yaml:"rules,omitempty"`
}

// CPDConfig configures copy-paste detection.
type CPDConfig struct {
	MinimumTokens int `koanf:"minimum_tokens" yaml:"minimum_tokens"`
}

// CacheConfig configures the analysis cache.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled"`
	Path    string `koanf:"path" yaml:"path"`
}

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string          `koanf:"output" yaml:"output"`
	LogLevel     string          `koanf:"log_level" yaml:"log_level"`
	Verbose      bool            `koanf:"verbose" yaml:"-"`
	Workers      int             `koanf:"workers" yaml:"workers"`
	Encoding     string          `koanf:"encoding" yaml:"encoding"`
	CSS          *LanguageConfig `koanf:"css" yaml:"css"`
	Less         *LanguageConfig `koanf:"less" yaml:"less"`
	Lint         *LintConfig     `koanf:"lint" yaml:"lint"`
	CPD          *CPDConfig      `koanf:"cpd" yaml:"cpd"`
	Cache        *CacheConfig    `koanf:"cache" yaml:"cache"`

	// ProjectRoot is the directory holding the config file, or the
	// working directory when there is none. Relative paths resolve
	// against it.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel      = "warn"
	DefaultEncoding      = "utf-8"
	DefaultMinimumTokens = 70
	DefaultCacheFile     = ".leapcss/cache.db"
)

// ConfigFileNames are the project file names, in lookup order.
var ConfigFileNames = []string{"leapcss.yaml", "leapcss.yml"}

// Default returns the configuration used when no file, variable or flag
// changes anything.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Encoding:     DefaultEncoding,
		CSS:          &LanguageConfig{Suffixes: []string{"css"}, ExcludeMinified: true},
		Less:         &LanguageConfig{Suffixes: []string{"less"}},
		Lint:         &LintConfig{},
		CPD:          &CPDConfig{MinimumTokens: DefaultMinimumTokens},
		Cache:        &CacheConfig{Path: DefaultCacheFile},
	}
}

// defaultsMap is Default flattened into koanf keys.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"output":                d.OutputFormat,
		"log_level":             d.LogLevel,
		"verbose":               false,
		"workers":               0,
		"encoding":              d.Encoding,
		"css.suffixes":          d.CSS.Suffixes,
		"css.exclude_minified":  d.CSS.ExcludeMinified,
		"less.suffixes":         d.Less.Suffixes,
		"less.exclude_minified": d.Less.ExcludeMinified,
		"cpd.minimum_tokens":    d.CPD.MinimumTokens,
		"cache.enabled":         d.Cache.Enabled,
		"cache.path":            d.Cache.Path,
	}
}
