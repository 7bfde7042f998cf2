package store

import (
	"context"
	"fmt"
)

// Run is one recorded suite run.
type Run struct {
	ID        string `json:"id"`
	Suite     string `json:"suite"`
	StartedAt string `json:"started_at"` // RFC 3339
	Passed    int    `json:"passed"`
	Failed    int    `json:"failed"`
	Errored   int    `json:"errored"`
}

// OutcomeRecord is one recorded check within a run.
//
// Pass/Reason mirror the checker's Outcome. Error carries a provider
// failure message; when set, Pass is false and Reason is empty - the
// two failure modes stay distinct in storage too.
type OutcomeRecord struct {
	ID       string `json:"id"`
	RunID    string `json:"run_id"`
	Source   string `json:"source"`
	Pass     bool   `json:"pass"`
	Reason   string `json:"reason,omitempty"`
	RowCount int    `json:"row_count"`
	Error    string `json:"error,omitempty"`
	Seq      int64  `json:"seq"`
}

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations still return errors.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, suite, started_at, passed, failed, errored)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Suite,
		run.StartedAt,
		run.Passed,
		run.Failed,
		run.Errored,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// WriteOutcome inserts an outcome record.
// Uses ON CONFLICT DO NOTHING for idempotency.
//
// Note: the run referenced by RunID must exist (foreign key constraint).
func (s *Store) WriteOutcome(ctx context.Context, rec OutcomeRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes (id, run_id, source, pass, reason, row_count, error, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		rec.ID,
		rec.RunID,
		rec.Source,
		rec.Pass,
		rec.Reason,
		rec.RowCount,
		rec.Error,
		rec.Seq,
	)
	if err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}

	return nil
}
