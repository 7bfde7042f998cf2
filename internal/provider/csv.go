package provider

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/tabular"
)

// bindCSV returns a provider that reads a CSV file with a header row.
// Cells are parsed leniently: integers, floats, and booleans are typed,
// everything else stays text, empty cells become Null.
func bindCSV(src Source) checker.Provider {
	return func(ctx context.Context) (checker.Tabular, error) {
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("source %q: open csv: %w", src.Name, err)
		}
		defer f.Close()

		reader := csv.NewReader(f)

		header, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("source %q: csv file has no header row", src.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("source %q: read csv header: %w", src.Name, err)
		}

		result := tabular.NewResult(header...)

		for {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}

			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("source %q: read csv record: %w", src.Name, err)
			}

			row := make(tabular.Row, len(header))
			for i, col := range header {
				if i < len(record) {
					row[col] = tabular.ParseCell(record[i])
				}
			}
			if err := result.AppendRow(row); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
			}
		}

		return result, nil
	}
}
