package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// GetFileResult retrieves the cached result for path. It returns nil and
// no error when nothing is cached.
func (s *SQLiteStore) GetFileResult(ctx context.Context, path string) (*FileResult, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	r := &FileResult{Path: path}
	var state int
	var issues string
	var runID sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT language, content_hash, config_hash, state, issues, run_id, updated_at
		 FROM file_results WHERE path = ?`, path,
	).Scan(&r.Language, &r.ContentHash, &r.ConfigHash, &state, &issues, &runID, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file result: %w", err)
	}

	r.State = lint.FileState(state)
	r.RunID = runID.String
	if err := json.Unmarshal([]byte(issues), &r.Issues); err != nil {
		return nil, fmt.Errorf("failed to decode issues of %s: %w", path, err)
	}
	return r, nil
}

// PutFileResult stores or replaces the cached result for r.Path.
func (s *SQLiteStore) PutFileResult(ctx context.Context, r *FileResult) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	issues := r.Issues
	if issues == nil {
		issues = []lint.Issue{}
	}
	data, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("failed to encode issues of %s: %w", r.Path, err)
	}

	var runID sql.NullString
	if r.RunID != "" {
		runID = sql.NullString{String: r.RunID, Valid: true}
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO file_results (path, language, content_hash, config_hash, state, issues, run_id, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (path) DO UPDATE SET
		   language = excluded.language,
		   content_hash = excluded.content_hash,
		   config_hash = excluded.config_hash,
		   state = excluded.state,
		   issues = excluded.issues,
		   run_id = excluded.run_id,
		   updated_at = excluded.updated_at`,
		r.Path, r.Language, r.ContentHash, r.ConfigHash, int(r.State), string(data), runID, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store file result: %w", err)
	}
	return nil
}

// DeleteFileResult removes the cached result for path.
func (s *SQLiteStore) DeleteFileResult(ctx context.Context, path string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM file_results WHERE path = ?`, path); err != nil {
		return fmt.Errorf("failed to delete file result: %w", err)
	}
	return nil
}
