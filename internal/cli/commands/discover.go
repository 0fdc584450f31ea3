package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
)

// DiscoveredFile is one stylesheet selected for analysis.
type DiscoveredFile struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

// DiscoverOutput is the JSON output of the discover command.
type DiscoverOutput struct {
	Files   []DiscoveredFile `json:"files"`
	Summary map[string]int   `json:"summary"`
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	var lang, format string

	cmd := &cobra.Command{
		Use:   "discover [paths...]",
		Short: "List the stylesheets that would be analyzed",
		Long: `List the files selected for analysis and the language of each.

Directories are searched recursively for the suffixes configured per
language. Minified CSS files are left out when css.exclude_minified is set.

Output adapts to environment:
  - Terminal: Styled summary
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # List stylesheets in the current directory
  leapcss discover

  # Output as JSON
  leapcss discover styles/ --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, format)
			dopts, err := discoverOptions(cmdCtx.Cfg, lang)
			if err != nil {
				return err
			}
			targets, err := discover(args, dopts)
			if err != nil {
				return err
			}

			out := DiscoverOutput{Files: []DiscoveredFile{}, Summary: map[string]int{}}
			for _, t := range targets {
				out.Files = append(out.Files, DiscoveredFile{Path: t.Path, Language: t.Language.Name})
				out.Summary[t.Language.Name]++
			}
			cmdCtx.Logger.Debug("discovered stylesheets", "count", len(out.Files))
			return renderDiscover(cmdCtx.Renderer, out)
		},
	}

	cmd.Flags().StringVar(&lang, "language", "auto", "Analyze files as this language: auto, css, less")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func renderDiscover(r *output.Renderer, out DiscoverOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}
	if len(out.Files) == 0 {
		r.Warning("No stylesheets found")
		return nil
	}

	styles := r.Styles()
	r.Header(1, fmt.Sprintf("Stylesheets (%d total)", len(out.Files)))
	for _, f := range out.Files {
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Printf("- %s (%s)\n", displayPath(f.Path), f.Language)
			continue
		}
		r.Printf("  %s %s\n", styles.FilePath.Render(displayPath(f.Path)), styles.Muted.Render(f.Language))
	}
	return nil
}
