package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapcss/internal/cli/config"
)

// ConfigField describes one configuration key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string
}

// getConfigSchema lists the keys of leapcss.yaml with their defaults.
func getConfigSchema() []ConfigField {
	d := config.Default()
	return []ConfigField{
		{"output", "string", d.OutputFormat, "Output format: auto, text, markdown or json", "General"},
		{"log_level", "string", d.LogLevel, "Log level: debug, info, warn or error", "General"},
		{"workers", "int", "0", "Files analyzed in parallel (0 uses every CPU)", "General"},
		{"encoding", "string", d.Encoding, "Character encoding of source files", "General"},

		{"css.suffixes", "list", strings.Join(d.CSS.Suffixes, ", "), "File suffixes analyzed as CSS", "Languages"},
		{"css.exclude_minified", "bool", fmt.Sprint(d.CSS.ExcludeMinified), "Skip minified CSS files", "Languages"},
		{"less.suffixes", "list", strings.Join(d.Less.Suffixes, ", "), "File suffixes analyzed as Less", "Languages"},
		{"less.exclude_minified", "bool", fmt.Sprint(d.Less.ExcludeMinified), "Skip minified Less files", "Languages"},

		{"lint.disabled", "list", "", "Rule IDs to turn off", "Linting"},
		{"lint.severity", "map", "", "Severity override per rule ID", "Linting"},
		{"lint.rules", "map", "", "Parameter values per rule ID", "Linting"},

		{"cpd.minimum_tokens", "int", fmt.Sprint(d.CPD.MinimumTokens), "Shortest token run reported as a duplication", "Copy-Paste Detection"},

		{"cache.enabled", "bool", fmt.Sprint(d.Cache.Enabled), "Reuse results for unchanged files", "Cache"},
		{"cache.path", "string", d.Cache.Path, "Location of the cache database", "Cache"},
	}
}

// generateConfigDocs writes the configuration reference.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapcss.yaml reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapcss reads %s from the working directory or the path given with %s.",
		InlineCode(config.ConfigFileNames[0]), InlineCode("--config")))

	var category string
	var rows [][]string
	flush := func() {
		if category == "" {
			return
		}
		w.Header(2, category)
		w.Table([]string{"Key", "Type", "Default", "Description"}, rows)
		rows = nil
	}
	for _, f := range getConfigSchema() {
		if f.Category != category {
			flush()
			category = f.Category
		}
		def := f.Default
		if def != "" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, def, f.Description})
	}
	flush()

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: json
workers: 4
css:
  exclude_minified: false
lint:
  severity:
    empty-rules: error
cpd:
  minimum_tokens: 100
cache:
  enabled: true`)

	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
