package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/provider"
	"github.com/roach88/tabcheck/internal/store"
	"github.com/roach88/tabcheck/internal/testutil"
)

// CheckReport is the recorded outcome of one check.
//
// Exactly one of Reason and Error is set on failure: Reason for a
// result that arrived but fell short (empty, too few rows, missing
// column), Error for a provider that failed outright.
type CheckReport struct {
	Source   string `json:"source"`
	Pass     bool   `json:"pass"`
	Reason   string `json:"reason,omitempty"`
	RowCount int    `json:"row_count"`
	Error    string `json:"error,omitempty"`
	Seq      int64  `json:"seq"`
}

// Report is the overall outcome of a suite run.
type Report struct {
	RunID     string        `json:"run_id"`
	Suite     string        `json:"suite"`
	StartedAt string        `json:"started_at"` // RFC 3339
	Checks    []CheckReport `json:"checks"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Errored   int           `json:"errored"`
}

// Pass reports whether every check passed.
func (r *Report) Pass() bool {
	return r.Failed == 0 && r.Errored == 0
}

// Runner executes suites sequentially.
//
// A zero-option Runner logs nowhere, persists nothing, and stamps runs
// with UUIDv7 identifiers and wall-clock start times. Options replace
// each of those for persistence and for deterministic tests.
type Runner struct {
	logger *slog.Logger
	store  *store.Store
	newID  func() string
	now    func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithStore makes the runner record runs and outcomes.
func WithStore(st *store.Store) Option {
	return func(r *Runner) { r.store = st }
}

// WithIDGenerator replaces the UUID run/outcome ID generator.
// Used with testutil.FixedIDGenerator for golden-file tests.
func WithIDGenerator(gen func() string) Option {
	return func(r *Runner) { r.newID = gen }
}

// WithNow replaces the wall clock for deterministic start times.
func WithNow(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  func() string { return uuid.Must(uuid.NewV7()).String() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every check in the suite, in order, and returns the
// report.
//
// All sources are bound before the first check runs, so configuration
// mistakes surface as a run error rather than a partial report. Check
// failures - including provider failures - never abort the run; each
// check is independent and the report carries all of them.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	providers := make(map[string]checker.Provider, len(s.Sources))
	for _, src := range s.Sources {
		p, err := provider.Bind(src)
		if err != nil {
			return nil, fmt.Errorf("bind source %q: %w", src.Name, err)
		}
		providers[src.Name] = p
	}

	report := &Report{
		RunID:     r.newID(),
		Suite:     s.Name,
		StartedAt: r.now().UTC().Format(time.RFC3339),
		Checks:    []CheckReport{},
	}

	clock := testutil.NewSeqClock()

	for _, check := range s.Checks {
		cr := r.runCheck(ctx, check, providers[check.Source])
		cr.Seq = clock.Next()
		report.Checks = append(report.Checks, cr)

		switch {
		case cr.Pass:
			report.Passed++
		case cr.Error != "":
			report.Errored++
		default:
			report.Failed++
		}

		r.logger.Info("check completed",
			"suite", s.Name,
			"source", cr.Source,
			"pass", cr.Pass,
			"row_count", cr.RowCount,
			"reason", cr.Reason,
			"error", cr.Error,
		)
	}

	if r.store != nil {
		if err := r.record(ctx, report); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
	}

	return report, nil
}

// columned is the optional capability a result needs for column checks.
// *tabular.Result satisfies it.
type columned interface {
	HasColumn(name string) bool
}

// runCheck executes a single check: one provider call, then the
// non-empty contract, then any tightened expectations.
func (r *Runner) runCheck(ctx context.Context, check Check, p checker.Provider) CheckReport {
	cr := CheckReport{Source: check.Source}

	// Capture the result so column expectations can inspect it without
	// a second provider call.
	var result checker.Tabular
	capture := checker.Provider(func(ctx context.Context) (checker.Tabular, error) {
		res, err := p(ctx)
		result = res
		return res, err
	})

	outcome, err := checker.CheckNonEmpty(ctx, capture)
	if err != nil {
		// Provider failure: no outcome, the error is the record.
		cr.Error = err.Error()
		return cr
	}

	cr.Pass = outcome.Pass
	cr.Reason = outcome.Reason
	cr.RowCount = outcome.RowCount
	if !cr.Pass {
		return cr
	}

	if check.MinRows > 0 && cr.RowCount < check.MinRows {
		cr.Pass = false
		cr.Reason = fmt.Sprintf("row count %d below minimum %d", cr.RowCount, check.MinRows)
		return cr
	}

	if len(check.Columns) > 0 {
		cols, ok := result.(columned)
		if !ok {
			cr.Pass = false
			cr.Reason = "result does not expose columns"
			return cr
		}
		for _, col := range check.Columns {
			if !cols.HasColumn(col) {
				cr.Pass = false
				cr.Reason = fmt.Sprintf("missing column %q", col)
				return cr
			}
		}
	}

	return cr
}

// record persists a report as a run with one outcome per check.
func (r *Runner) record(ctx context.Context, report *Report) error {
	run := store.Run{
		ID:        report.RunID,
		Suite:     report.Suite,
		StartedAt: report.StartedAt,
		Passed:    report.Passed,
		Failed:    report.Failed,
		Errored:   report.Errored,
	}
	if err := r.store.WriteRun(ctx, run); err != nil {
		return err
	}

	for _, cr := range report.Checks {
		rec := store.OutcomeRecord{
			ID:       r.newID(),
			RunID:    report.RunID,
			Source:   cr.Source,
			Pass:     cr.Pass,
			Reason:   cr.Reason,
			RowCount: cr.RowCount,
			Error:    cr.Error,
			Seq:      cr.Seq,
		}
		if err := r.store.WriteOutcome(ctx, rec); err != nil {
			return err
		}
	}

	return nil
}
