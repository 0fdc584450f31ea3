// Package state persists analysis results in SQLite so that files whose
// content and configuration did not change can be skipped on the next run.
// It also records one row per run.
package state

import (
	"context"
	"time"

	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// RunStatus is the outcome of a run.
type RunStatus string

// Run statuses.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Run is one invocation of the analysis over a set of files.
type Run struct {
	ID          string
	ConfigHash  string
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Files       int
	Issues      int
	Error       string
}

// FileResult is the cached analysis of one file.
type FileResult struct {
	Path        string
	Language    string
	ContentHash string
	ConfigHash  string
	State       lint.FileState
	Issues      []lint.Issue
	RunID       string
	UpdatedAt   time.Time
}

// Store is the persistence interface used by the runner and the CLI.
type Store interface {
	CreateRun(ctx context.Context, configHash string) (*Run, error)
	CompleteRun(ctx context.Context, id string, status RunStatus, files, issues int, errMsg string) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	GetFileResult(ctx context.Context, path string) (*FileResult, error)
	PutFileResult(ctx context.Context, r *FileResult) error
	DeleteFileResult(ctx context.Context, path string) error

	Close() error
}

var _ Store = (*SQLiteStore)(nil)
