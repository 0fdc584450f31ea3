package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/core"
)

var (
	outputModes = []string{"auto", "text", "markdown", "json"}
	logLevels   = []string{"debug", "info", "warn", "error"}
)

// Validate checks if the configuration is valid. Rule parameters are not
// checked here: the analyzer validates them against each rule.
func (c *Config) Validate() error {
	if !slices.Contains(outputModes, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("invalid output %q, expected one of: %s", c.OutputFormat, strings.Join(outputModes, ", "))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.CPD != nil && c.CPD.MinimumTokens <= 0 {
		return fmt.Errorf("cpd.minimum_tokens must be positive, got %d", c.CPD.MinimumTokens)
	}
	for name, lc := range map[string]*LanguageConfig{"css": c.CSS, "less": c.Less} {
		if lc != nil && len(lc.Suffixes) == 0 {
			return fmt.Errorf("%s.suffixes must not be empty", name)
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
			}
		}
	}
	return nil
}

// ParseLogLevel converts a --log-level value to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level %q, expected one of: %s", s, strings.Join(logLevels, ", "))
	}
}
