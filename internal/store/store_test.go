package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a fresh in-memory store for a test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_InMemory(t *testing.T) {
	st := openTestStore(t)
	assert.NotNil(t, st.DB())
}

func TestOpen_FileBacked_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	st1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st1.Close())

	// Reopening applies the schema again without error.
	st2, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, st2.Close())
}

func TestClose_NilSafe(t *testing.T) {
	var st Store
	assert.NoError(t, st.Close())
}

func TestWriteRun_Idempotent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", Suite: "matchday", StartedAt: "2026-08-30T10:00:00Z", Passed: 3}
	require.NoError(t, st.WriteRun(ctx, run))

	// Duplicate write with different counters is silently ignored.
	dup := run
	dup.Passed = 99
	require.NoError(t, st.WriteRun(ctx, dup))

	got, _, err := st.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Passed)
}

func TestWriteOutcome_RequiresRun(t *testing.T) {
	st := openTestStore(t)

	err := st.WriteOutcome(context.Background(), OutcomeRecord{
		ID:    "out-1",
		RunID: "no-such-run",
		Source: "points",
		Pass:   true,
		Seq:    1,
	})
	require.Error(t, err) // foreign key violation
}

func TestReadRun_NotFound(t *testing.T) {
	st := openTestStore(t)

	_, _, err := st.ReadRun(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestReadRun_OutcomesOrderedBySeq(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.WriteRun(ctx, Run{ID: "run-1", Suite: "matchday", StartedAt: "2026-08-30T10:00:00Z"}))

	// Insert out of order; reads must come back seq-ordered.
	records := []OutcomeRecord{
		{ID: "out-3", RunID: "run-1", Source: "forecast", Pass: false, Reason: "empty result", Seq: 3},
		{ID: "out-1", RunID: "run-1", Source: "points", Pass: true, RowCount: 5, Seq: 1},
		{ID: "out-2", RunID: "run-1", Source: "playing", Pass: false, Error: "connection refused", Seq: 2},
	}
	for _, rec := range records {
		require.NoError(t, st.WriteOutcome(ctx, rec))
	}

	_, outcomes, err := st.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "points", outcomes[0].Source)
	assert.Equal(t, "playing", outcomes[1].Source)
	assert.Equal(t, "forecast", outcomes[2].Source)

	// Provider failure and empty-result failure stay distinct.
	assert.Equal(t, "connection refused", outcomes[1].Error)
	assert.Empty(t, outcomes[1].Reason)
	assert.Equal(t, "empty result", outcomes[2].Reason)
	assert.Empty(t, outcomes[2].Error)
}

func TestListRuns_MostRecentFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.WriteRun(ctx, Run{ID: "run-a", Suite: "s", StartedAt: "2026-08-29T10:00:00Z"}))
	require.NoError(t, st.WriteRun(ctx, Run{ID: "run-b", Suite: "s", StartedAt: "2026-08-30T10:00:00Z"}))

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].ID)
	assert.Equal(t, "run-a", runs[1].ID)
}

func TestListRuns_Limit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		require.NoError(t, st.WriteRun(ctx, Run{ID: id, Suite: "s", StartedAt: "2026-08-30T10:00:00Z"}))
	}

	runs, err := st.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListRuns_EmptyIsNotNil(t *testing.T) {
	st := openTestStore(t)

	runs, err := st.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}
