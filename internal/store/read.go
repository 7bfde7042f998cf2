package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = fmt.Errorf("run not found")

// ListRuns returns recorded runs, most recent first, capped at limit.
// A limit of 0 means no cap.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, suite, started_at, passed, failed, errored
		FROM runs
		ORDER BY started_at DESC, id COLLATE BINARY ASC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Suite, &r.StartedAt, &r.Passed, &r.Failed, &r.Errored); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a run and its outcomes in deterministic order:
// ORDER BY seq ASC, id COLLATE BINARY ASC.
func (s *Store) ReadRun(ctx context.Context, runID string) (Run, []OutcomeRecord, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, suite, started_at, passed, failed, errored
		FROM runs
		WHERE id = ?
	`, runID).Scan(&run.ID, &run.Suite, &run.StartedAt, &run.Passed, &run.Failed, &run.Errored)
	if err == sql.ErrNoRows {
		return Run{}, nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("query run: %w", err)
	}

	outcomes, err := s.readOutcomes(ctx, runID)
	if err != nil {
		return Run{}, nil, err
	}

	return run, outcomes, nil
}

// readOutcomes returns all outcomes for a run with deterministic ordering.
func (s *Store) readOutcomes(ctx context.Context, runID string) ([]OutcomeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, source, pass, reason, row_count, error, seq
		FROM outcomes
		WHERE run_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []OutcomeRecord{}
	for rows.Next() {
		var rec OutcomeRecord
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Source, &rec.Pass, &rec.Reason,
			&rec.RowCount, &rec.Error, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		outcomes = append(outcomes, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}

	return outcomes, nil
}
