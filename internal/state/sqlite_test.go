package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcss/internal/testutil"
	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/token"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_OpenMigrate(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"runs", "file_results"} {
		rows, err := store.db.Query("SELECT 1 FROM " + table + " LIMIT 1")
		require.NoError(t, err, "table %s", table)
		_ = rows.Close()
	}

	// migrating twice is a no-op
	require.NoError(t, store.Migrate())
}

func TestSQLiteStore_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".leapcss", "cache.db")

	store := NewSQLiteStore(nil)
	require.NoError(t, store.Open(path))
	require.NoError(t, store.Migrate())
	assert.Equal(t, path, store.Path())
	require.NoError(t, store.PutFileResult(context.Background(), &FileResult{Path: "a.css", Language: "css"}))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(nil)
	require.NoError(t, reopened.Open(path))
	defer reopened.Close()
	require.NoError(t, reopened.Migrate())

	r, err := reopened.GetFileResult(context.Background(), "a.css")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "css", r.Language)
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	_, err := store.CreateRun(ctx, "h")
	assert.EqualError(t, err, "database not opened")
	_, err = store.GetFileResult(ctx, "a.css")
	assert.EqualError(t, err, "database not opened")
	assert.EqualError(t, store.Migrate(), "database not opened")
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.CreateRun(ctx, "cfg-1")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusRunning, run.Status)

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", got.ConfigHash)
	assert.Equal(t, RunStatusRunning, got.Status)
	assert.Nil(t, got.CompletedAt)

	require.NoError(t, store.CompleteRun(ctx, run.ID, RunStatusFailed, 3, 7, "boom"))

	got, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, 3, got.Files)
	assert.Equal(t, 7, got.Issues)
	assert.Equal(t, "boom", got.Error)

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestSQLiteStore_RunErrors(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetRun(ctx, "missing")
	assert.EqualError(t, err, "run not found: missing")

	err = store.CompleteRun(ctx, "missing", RunStatusCompleted, 0, 0, "")
	assert.EqualError(t, err, "run not found: missing")
}

func TestSQLiteStore_FileResults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.CreateRun(ctx, "cfg")
	require.NoError(t, err)

	missing, err := store.GetFileResult(ctx, "a.css")
	require.NoError(t, err)
	assert.Nil(t, missing)

	issue := lint.Issue{
		RuleID:   "duplicated-selectors",
		Severity: lint.SeverityError,
		Message:  `Merge the rules using the duplicated "a" selector.`,
		File:     "a.css",
		Pos:      token.Position{Line: 2, Column: 1, Offset: 6},
		EndPos:   token.Position{Line: 2, Column: 2, Offset: 7},
		RelatedInfo: []lint.RelatedInfo{
			{FilePath: "a.css", Pos: token.Position{Line: 1, Column: 1}, Message: "First occurrence"},
		},
	}
	require.NoError(t, store.PutFileResult(ctx, &FileResult{
		Path:        "a.css",
		Language:    "css",
		ContentHash: "c1",
		ConfigHash:  "cfg",
		State:       lint.Traversed,
		Issues:      []lint.Issue{issue},
		RunID:       run.ID,
	}))

	got, err := store.GetFileResult(ctx, "a.css")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ContentHash)
	assert.Equal(t, lint.Traversed, got.State)
	assert.Equal(t, run.ID, got.RunID)
	assert.Equal(t, []lint.Issue{issue}, got.Issues)
	assert.False(t, got.UpdatedAt.IsZero())

	// upsert replaces the previous row
	require.NoError(t, store.PutFileResult(ctx, &FileResult{
		Path:        "a.css",
		Language:    "css",
		ContentHash: "c2",
		ConfigHash:  "cfg",
		State:       lint.ParseFailed,
	}))
	got, err = store.GetFileResult(ctx, "a.css")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ContentHash)
	assert.Equal(t, lint.ParseFailed, got.State)
	assert.Empty(t, got.Issues)
	assert.Empty(t, got.RunID)

	require.NoError(t, store.DeleteFileResult(ctx, "a.css"))
	got, err = store.GetFileResult(ctx, "a.css")
	require.NoError(t, err)
	assert.Nil(t, got)
}
