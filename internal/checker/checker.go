// Package checker implements the data availability check: invoke a
// provider and verify the returned tabular result is non-empty.
//
// The checker is stateless and single-shot. Each call invokes the
// provider exactly once, with no retries, caching, or shared state, so
// repeated checks against the same provider produce independent
// outcomes.
//
// Two failure modes are kept distinct:
//
//   - Provider failure: the provider call itself returns an error. The
//     checker propagates it unmodified and produces no Outcome. This
//     signals "provider unavailable".
//   - Empty result: the provider succeeds but returns zero rows. The
//     checker returns a failing Outcome with reason "empty result".
package checker

import "context"

// Tabular is the capability a check consumes from a provider's result.
// Any tabular container with a derivable row count satisfies it;
// *tabular.Result is the usual implementation.
type Tabular interface {
	RowCount() int
}

// Provider is a pre-configured, zero-argument data-producing operation.
// The context covers whatever blocking I/O the provider performs
// internally (network, file, database); the checker itself never
// suspends.
type Provider func(ctx context.Context) (Tabular, error)

// ReasonEmptyResult is the failure reason for a zero-row result.
const ReasonEmptyResult = "empty result"

// Outcome is the checker's verdict on a single provider call.
type Outcome struct {
	// Pass is true when the provider returned at least one row.
	Pass bool `json:"pass"`

	// Reason explains a failing outcome. Empty when Pass is true.
	Reason string `json:"reason,omitempty"`

	// RowCount is the number of rows the provider returned.
	RowCount int `json:"row_count"`
}

// CheckNonEmpty invokes the provider once and verifies the result is
// non-empty.
//
// A provider error is returned as-is with a zero Outcome - it is never
// masked as a failing Outcome. A nil result from a non-failing provider
// is treated as a contract violation and reported the same way as an
// empty result.
func CheckNonEmpty(ctx context.Context, p Provider) (Outcome, error) {
	res, err := p(ctx)
	if err != nil {
		return Outcome{}, err
	}

	if res == nil || res.RowCount() == 0 {
		return Outcome{Pass: false, Reason: ReasonEmptyResult}, nil
	}

	return Outcome{Pass: true, RowCount: res.RowCount()}, nil
}
