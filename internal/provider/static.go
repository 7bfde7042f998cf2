package provider

import (
	"context"
	"fmt"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/tabular"
)

// bindStatic returns a provider serving inline rows from the suite
// file. The dataset is converted once at bind time so malformed cells
// are caught before any check runs; the provider itself cannot fail.
func bindStatic(src Source) (checker.Provider, error) {
	result := tabular.NewResult(src.Columns...)

	for i, raw := range src.Rows {
		row := make(tabular.Row, len(src.Columns))
		for col, cell := range raw {
			v, err := tabular.FromAny(normalizeYAMLScalar(cell))
			if err != nil {
				return nil, fmt.Errorf("source %q: row %d, column %q: %w", src.Name, i, col, err)
			}
			row[col] = v
		}
		if err := result.AppendRow(row); err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
	}

	return func(ctx context.Context) (checker.Tabular, error) {
		return result, nil
	}, nil
}

// normalizeYAMLScalar maps YAML-decoded numeric types onto the forms
// FromAny accepts. yaml.v3 decodes integers as int and floats as
// float64, but uint64 can appear for very large literals.
func normalizeYAMLScalar(v any) any {
	if u, ok := v.(uint64); ok {
		return int64(u)
	}
	return v
}
