package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/passes"
)

// FileMetrics is the metrics of one file in JSON output.
type FileMetrics struct {
	Path         string `json:"path"`
	LinesOfCode  int    `json:"lines_of_code"`
	CommentLines int    `json:"comment_lines"`
	Statements   int    `json:"statements"`
	Rules        int    `json:"rules"`
}

// MetricsJSONOutput is the JSON output of the metrics command.
type MetricsJSONOutput struct {
	Files         []FileMetrics `json:"files"`
	Total         FileMetrics   `json:"total"`
	ParseFailures []string      `json:"parse_failures,omitempty"`
}

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand() *cobra.Command {
	var lang, format string

	cmd := &cobra.Command{
		Use:   "metrics [paths...]",
		Short: "Compute size metrics of stylesheets",
		Long: `Compute lines of code, comment lines, statements and rules per file.

Statements are declarations and at-rules. Rules are rulesets.
Files that fail to parse are listed and left out of the totals.`,
		Example: `  # Metrics of the current directory
  leapcss metrics

  # As JSON
  leapcss metrics styles/ --format json`,
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

			out := MetricsJSONOutput{Files: []FileMetrics{}}
			var total passes.Metrics
			for _, f := range res.Files {
				if f.State == lint.ParseFailed || f.Sheet == nil {
					out.ParseFailures = append(out.ParseFailures, f.Path)
					continue
				}
				m := passes.ComputeMetrics(f.Sheet)
				total.Add(m)
				out.Files = append(out.Files, fileMetrics(f.Path, m))
			}
			out.Total = fileMetrics("total", total)

			return renderMetrics(cmdCtx.Renderer, out)
		},
	}

	cmd.Flags().StringVar(&lang, "language", "auto", "Analyze files as this language: auto, css, less")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func fileMetrics(path string, m passes.Metrics) FileMetrics {
	return FileMetrics{
		Path:         path,
		LinesOfCode:  m.LinesOfCode,
		CommentLines: m.CommentLines,
		Statements:   m.Statements,
		Rules:        m.Rules,
	}
}

func renderMetrics(r *output.Renderer, out MetricsJSONOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Lines of code", "Comment lines", "Statements", "Rules"})
	for _, f := range out.Files {
		t.AppendRow(table.Row{displayPath(f.Path), f.LinesOfCode, f.CommentLines, f.Statements, f.Rules})
	}
	t.AppendFooter(table.Row{"Total", out.Total.LinesOfCode, out.Total.CommentLines, out.Total.Statements, out.Total.Rules})

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		r.Println(t.Render())
	}
	for _, p := range out.ParseFailures {
		r.Warning("unable to parse " + displayPath(p))
	}
	return nil
}
