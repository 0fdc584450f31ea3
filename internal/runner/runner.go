// Package runner drives the analysis of many files: it decodes them,
// fans out over a bounded worker group, consults the result cache and
// collects the per-file outcomes in path order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapcss/internal/state"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// ErrCancelled is returned when the context is cancelled before every
// file was analyzed.
var ErrCancelled = errors.New("analysis cancelled")

// Options configures a run.
type Options struct {
	Targets  []Target
	Config   *lint.Config
	Workers  int    // 0 means GOMAXPROCS
	Encoding string // WHATWG label, default utf-8
	Logger   *slog.Logger
	Progress io.Writer // nil disables the progress bar

	// Store enables the result cache and run history. Nil disables both.
	Store state.Store

	// AnalyzerOptions are passed to every analyzer.
	AnalyzerOptions []lint.Option
}

// FileReport is the outcome for one file.
type FileReport struct {
	Path     string
	Language string
	State    lint.FileState
	Issues   []lint.Issue
	Cached   bool
	Sheet    *tree.StyleSheet // nil when cached or unparsable
}

// Result is the outcome of a run.
type Result struct {
	RunID string
	Files []FileReport // sorted by path
}

// Issues returns every issue in file order.
func (r *Result) Issues() []lint.Issue {
	var out []lint.Issue
	for _, f := range r.Files {
		out = append(out, f.Issues...)
	}
	return out
}

// IssueCount returns the number of issues.
func (r *Result) IssueCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Issues)
	}
	return n
}

// CountBySeverity returns the number of issues per severity.
func (r *Result) CountBySeverity() map[lint.Severity]int {
	out := make(map[lint.Severity]int)
	for _, f := range r.Files {
		for _, i := range f.Issues {
			out[i.Severity]++
		}
	}
	return out
}

// Run analyzes opts.Targets. Rule parameters are validated before any file
// is read, so a *lint.ConfigError is returned without partial results.
// A *lint.AnalysisError from any file stops the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	decoder, err := NewDecoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	analyzers := make(map[*core.Language]*lint.Analyzer)
	for _, t := range opts.Targets {
		if _, ok := analyzers[t.Language]; ok {
			continue
		}
		aopts := append([]lint.Option{lint.WithLogger(logger)}, opts.AnalyzerOptions...)
		a, err := lint.NewAnalyzer(opts.Config, t.Language, aopts...)
		if err != nil {
			return nil, err
		}
		analyzers[t.Language] = a
	}

	configHash := HashConfig(opts.Config, decoder.Name())
	result := &Result{RunID: uuid.NewString()}
	if opts.Store != nil {
		run, err := opts.Store.CreateRun(ctx, configHash)
		if err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		result.RunID = run.ID
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Debug("starting analysis",
		slog.String("run_id", result.RunID),
		slog.Int("files", len(opts.Targets)),
		slog.Int("workers", workers))

	w := &worker{
		decoder:    decoder,
		analyzers:  analyzers,
		store:      opts.Store,
		configHash: configHash,
		runID:      result.RunID,
		logger:     logger,
	}

	reports := make([]FileReport, len(opts.Targets))
	bar := newProgress(opts.Progress, len(opts.Targets))
	var analyzed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range opts.Targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return ErrCancelled
			}
			report, err := w.analyze(gctx, t)
			if err != nil {
				return err
			}
			reports[i] = report
			analyzed.Add(1)
			bar.done()
			return nil
		})
	}
	err = g.Wait()
	bar.finish()

	if err == nil && int(analyzed.Load()) < len(opts.Targets) {
		err = ErrCancelled
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = ErrCancelled
	}
	if err != nil {
		w.completeRun(result, int(analyzed.Load()), err)
		if errors.Is(err, ErrCancelled) {
			logger.Info("analysis cancelled", slog.Int64("analyzed", analyzed.Load()))
		}
		return nil, err
	}

	result.Files = reports
	w.completeRun(result, len(reports), nil)
	return result, nil
}

type worker struct {
	decoder    *Decoder
	analyzers  map[*core.Language]*lint.Analyzer
	store      state.Store
	configHash string
	runID      string
	logger     *slog.Logger
}

func (w *worker) analyze(ctx context.Context, t Target) (FileReport, error) {
	report := FileReport{Path: t.Path, Language: t.Language.Name}

	text, hash, err := w.decoder.ReadSource(t.Path)
	if err != nil {
		return report, err
	}

	if cached := w.lookup(ctx, t, hash); cached != nil {
		report.State = cached.State
		report.Issues = cached.Issues
		report.Cached = true
		w.logger.Debug("cache hit", slog.String("path", t.Path))
		return report, nil
	}

	res, err := w.analyzers[t.Language].AnalyzeFile(t.Path, text)
	if err != nil {
		return report, err
	}
	report.State = res.State
	report.Issues = res.Issues
	report.Sheet = res.Sheet

	w.save(ctx, t, hash, res)
	return report, nil
}

// lookup returns the cached result when both the content and the
// configuration are unchanged. Cache failures only cost a re-analysis.
func (w *worker) lookup(ctx context.Context, t Target, hash string) *state.FileResult {
	if w.store == nil {
		return nil
	}
	cached, err := w.store.GetFileResult(ctx, t.Path)
	if err != nil {
		w.logger.Warn("cache lookup failed", slog.String("path", t.Path), slog.Any("error", err))
		return nil
	}
	if cached == nil || cached.ContentHash != hash || cached.ConfigHash != w.configHash ||
		cached.Language != t.Language.Name {
		return nil
	}
	for i := range cached.Issues {
		cached.Issues[i].File = t.Path
	}
	return cached
}

func (w *worker) save(ctx context.Context, t Target, hash string, res *lint.FileResult) {
	if w.store == nil {
		return
	}
	err := w.store.PutFileResult(ctx, &state.FileResult{
		Path:        t.Path,
		Language:    t.Language.Name,
		ContentHash: hash,
		ConfigHash:  w.configHash,
		State:       res.State,
		Issues:      res.Issues,
		RunID:       w.runID,
	})
	if err != nil {
		w.logger.Warn("cache store failed", slog.String("path", t.Path), slog.Any("error", err))
	}
}

func (w *worker) completeRun(result *Result, files int, runErr error) {
	if w.store == nil {
		return
	}
	status := state.RunStatusCompleted
	msg := ""
	switch {
	case errors.Is(runErr, ErrCancelled):
		status = state.RunStatusCancelled
	case runErr != nil:
		status = state.RunStatusFailed
		msg = runErr.Error()
	}
	// the run context may already be cancelled
	if err := w.store.CompleteRun(context.Background(), w.runID, status, files, result.IssueCount(), msg); err != nil {
		w.logger.Warn("failed to record run completion", slog.Any("error", err))
	}
}
