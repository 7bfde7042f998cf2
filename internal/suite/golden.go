package suite

import (
	"context"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/tabcheck/internal/tabular"
	"github.com/roach88/tabcheck/internal/testutil"
)

// toCanonicalMap converts a Report to a map[string]any for canonical
// JSON serialization.
func (r *Report) toCanonicalMap() map[string]any {
	checks := make([]any, len(r.Checks))
	for i, cr := range r.Checks {
		m := map[string]any{
			"source":    cr.Source,
			"pass":      cr.Pass,
			"row_count": cr.RowCount,
			"seq":       cr.Seq,
		}
		if cr.Reason != "" {
			m["reason"] = cr.Reason
		}
		if cr.Error != "" {
			m["error"] = cr.Error
		}
		checks[i] = m
	}

	return map[string]any{
		"run_id":     r.RunID,
		"suite":      r.Suite,
		"started_at": r.StartedAt,
		"checks":     checks,
		"passed":     r.Passed,
		"failed":     r.Failed,
		"errored":    r.Errored,
	}
}

// MarshalCanonical serializes the report as canonical JSON.
func (r *Report) MarshalCanonical() ([]byte, error) {
	return tabular.MarshalCanonical(r.toCanonicalMap())
}

// RunWithGolden executes a suite with deterministic IDs and clock and
// compares the report against a golden file in testdata/golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/suite -update
func RunWithGolden(t *testing.T, s *Suite) error {
	t.Helper()

	ids := testutil.NewFixedIDGenerator(s.Name)
	runner := NewRunner(
		WithIDGenerator(ids.NewID),
		WithNow(func() time.Time { return time.Unix(0, 0).UTC() }),
	)

	report, err := runner.Run(context.Background(), s)
	if err != nil {
		return err
	}

	return AssertGolden(t, s.Name, report)
}

// AssertGolden compares an existing report against a golden file.
// Useful when the caller has already run the suite.
func AssertGolden(t *testing.T, name string, report *Report) error {
	t.Helper()

	data, err := report.MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
