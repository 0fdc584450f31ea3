package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/passes"
)

// CPDJSONOutput is the JSON output of the cpd command.
type CPDJSONOutput struct {
	MinimumTokens int               `json:"minimum_tokens"`
	Files         int               `json:"files"`
	Duplications  []DuplicationJSON `json:"duplications"`
}

// DuplicationJSON is one duplicated token sequence.
type DuplicationJSON struct {
	Tokens      int              `json:"tokens"`
	Occurrences []OccurrenceJSON `json:"occurrences"`
}

// OccurrenceJSON is one place a duplicated sequence appears.
type OccurrenceJSON struct {
	Path        string `json:"path"`
	StartLine   int    `json:"start_line"`
	StartColumn int    `json:"start_column"`
	EndLine     int    `json:"end_line"`
	EndColumn   int    `json:"end_column"`
}

// NewCPDCommand creates the cpd command.
func NewCPDCommand() *cobra.Command {
	var lang, format string
	var normalize bool

	cmd := &cobra.Command{
		Use:   "cpd [paths...]",
		Short: "Find duplicated blocks of stylesheet code",
		Long: `Detect copy-pasted code across stylesheets.

Files are compared token by token, whitespace and comments excluded.
A duplication is reported when at least --minimum-tokens consecutive
tokens appear in more than one place (default from cpd.minimum_tokens).`,
		Example: `  # Find duplications in the current directory
  leapcss cpd

  # Report shorter duplications, ignoring literal values
  leapcss cpd styles/ --minimum-tokens 30 --normalize`,
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

			ctx, cancel := signalContext(cmd)
			defer cancel()
			res, err := parseFiles(ctx, cmdCtx, targets)
			if err != nil {
				return err
			}

			minTokens := passes.DefaultMinimumTokens
			if cmdCtx.Cfg.CPD != nil && cmdCtx.Cfg.CPD.MinimumTokens > 0 {
				minTokens = cmdCtx.Cfg.CPD.MinimumTokens
			}
			if cmd.Flags().Changed("minimum-tokens") {
				minTokens, _ = cmd.Flags().GetInt("minimum-tokens")
			}

			topts := passes.CPDOptions{NormalizeNumbers: normalize, NormalizeStrings: normalize}
			var files []passes.CPDFile
			for _, f := range res.Files {
				if f.State == lint.ParseFailed || f.Sheet == nil {
					cmdCtx.Logger.Warn("skipping unparsable file", "path", f.Path)
					continue
				}
				files = append(files, passes.CPDFile{Path: f.Path, Tokens: passes.CPDTokens(f.Sheet, topts)})
			}

			out := CPDJSONOutput{MinimumTokens: minTokens, Files: len(files), Duplications: []DuplicationJSON{}}
			for _, d := range passes.FindDuplicates(files, minTokens) {
				dj := DuplicationJSON{Tokens: d.Tokens}
				for _, o := range d.Occurrences {
					dj.Occurrences = append(dj.Occurrences, OccurrenceJSON{
						Path:        o.Path,
						StartLine:   o.Start.Line,
						StartColumn: o.Start.Column,
						EndLine:     o.End.Line,
						EndColumn:   o.End.Column,
					})
				}
				out.Duplications = append(out.Duplications, dj)
			}

			return renderDuplications(cmdCtx.Renderer, out)
		},
	}

	cmd.Flags().StringVar(&lang, "language", "auto", "Analyze files as this language: auto, css, less")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().Int("minimum-tokens", passes.DefaultMinimumTokens, "Smallest duplicated token sequence to report")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Treat all numbers and all strings as equal")

	return cmd
}

func renderDuplications(r *output.Renderer, out CPDJSONOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}
	if len(out.Duplications) == 0 {
		r.Success(fmt.Sprintf("No duplications of %d tokens or more in %d files", out.MinimumTokens, out.Files))
		return nil
	}

	styles := r.Styles()
	r.Header(1, fmt.Sprintf("%d duplications", len(out.Duplications)))
	for _, d := range out.Duplications {
		r.Println(styles.Bold.Render(fmt.Sprintf("%d tokens in %d places", d.Tokens, len(d.Occurrences))))
		for _, o := range d.Occurrences {
			r.Printf("  %s %s\n",
				styles.FilePath.Render(displayPath(o.Path)),
				styles.Muted.Render(fmt.Sprintf("%d:%d-%d:%d", o.StartLine, o.StartColumn, o.EndLine, o.EndColumn)))
		}
		r.Println("")
	}
	return nil
}
