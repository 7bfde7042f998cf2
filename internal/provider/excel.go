package provider

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/tabular"
)

// bindExcel returns a provider that reads a worksheet from an xlsx
// file. The first row is the header; remaining rows become data rows
// with the same lenient cell parsing as CSV sources.
//
// If no sheet is configured, the first sheet in the workbook is used.
func bindExcel(src Source) checker.Provider {
	return func(ctx context.Context) (checker.Tabular, error) {
		f, err := excelize.OpenFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("source %q: open workbook: %w", src.Name, err)
		}
		defer f.Close()

		sheet, err := resolveSheet(f, src.Sheet)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("source %q: read sheet %q: %w", src.Name, sheet, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("source %q: sheet %q has no header row", src.Name, sheet)
		}

		header := rows[0]
		result := tabular.NewResult(header...)

		for _, record := range rows[1:] {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("source %q: %w", src.Name, err)
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

// resolveSheet picks the configured worksheet, or the first one when
// no sheet name was given.
func resolveSheet(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	if want == "" {
		return sheets[0], nil
	}

	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet not found: %s", want)
}
