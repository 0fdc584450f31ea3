package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/internal/cli/output"
	"github.com/leapstack-labs/leapcss/internal/state"
)

// RunJSON is one recorded run.
type RunJSON struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Files       int        `json:"files"`
	Issues      int        `json:"issues"`
	Error       string     `json:"error,omitempty"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	var format string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded lint runs",
		Long: `List the lint runs recorded in the analysis cache, newest first.

Runs are recorded when the cache is enabled (cache.enabled or --cache).`,
		Example: `  # Show the last 10 runs
  leapcss runs

  # Output as JSON
  leapcss runs --limit 50 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd, format)
			r := cmdCtx.Renderer

			path := cmdCtx.Cfg.Cache.Path
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				r.Warning("No cache found at " + displayPath(path) + "; run 'leapcss lint --cache' first")
				return nil
			}
			store, err := openCache(path, cmdCtx.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			return renderRuns(r, runs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")

	return cmd
}

func renderRuns(r *output.Renderer, runs []*state.Run) error {
	if r.EffectiveMode() == output.ModeJSON {
		out := make([]RunJSON, 0, len(runs))
		for _, run := range runs {
			out = append(out, RunJSON{
				ID:          run.ID,
				Status:      string(run.Status),
				StartedAt:   run.StartedAt,
				CompletedAt: run.CompletedAt,
				Files:       run.Files,
				Issues:      run.Issues,
				Error:       run.Error,
			})
		}
		return r.JSON(out)
	}
	if len(runs) == 0 {
		r.Warning("No runs recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Started", "Status", "Files", "Issues"})
	for _, run := range runs {
		t.AppendRow(table.Row{run.ID, run.StartedAt.Local().Format(time.DateTime), run.Status, run.Files, run.Issues})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		r.Println(t.Render())
	}
	return nil
}
