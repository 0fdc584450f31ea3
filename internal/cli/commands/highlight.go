package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/pkg/passes"
)

// HighlightJSON is one highlighted span in JSON output.
type HighlightJSON struct {
	Type        string `json:"type"`
	StartLine   int    `json:"start_line"`
	StartColumn int    `json:"start_column"`
	EndLine     int    `json:"end_line"`
	EndColumn   int    `json:"end_column"`
	Text        string `json:"text"`
}

// NewHighlightCommand creates the highlight command.
func NewHighlightCommand() *cobra.Command {
	var lang, format string

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Classify the spans of a stylesheet for syntax highlighting",
		Long: `Parse a stylesheet and list its highlighted spans in source order.

Span types: keyword (at-rules), keyword_light (property names), string,
comment, constant (numbers, dimensions, percentages, hashes) and
annotation (!important).`,
		Example: `  # List the highlighted spans
  leapcss highlight styles/main.css

  # As JSON for an editor integration
  leapcss highlight styles/main.css --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, format)
			sheet, src, err := parseSource(cmdCtx, args[0], lang)
			if err != nil {
				return err
			}

			highlights := passes.Highlights(sheet)
			rows := make([]HighlightJSON, 0, len(highlights))
			for _, h := range highlights {
				rows = append(rows, HighlightJSON{
					Type:        h.Type.String(),
					StartLine:   h.Span.Start.Line,
					StartColumn: h.Span.Start.Column,
					EndLine:     h.Span.End.Line,
					EndColumn:   h.Span.End.Column,
					Text:        src[h.Span.Start.Offset:h.Span.End.Offset],
				})
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(rows)
			}

			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Start", "End", "Type", "Text"})
			for _, h := range rows {
				t.AppendRow(table.Row{
					fmt.Sprintf("%d:%d", h.StartLine, h.StartColumn),
					fmt.Sprintf("%d:%d", h.EndLine, h.EndColumn),
					h.Type,
					fmt.Sprintf("%q", h.Text),
				})
			}
			if r.EffectiveMode() == output.ModeMarkdown {
				r.Println(t.RenderMarkdown())
			} else {
				r.Println(t.Render())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "auto", "Parse the file as this language: auto, css, less")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}
