package provider

import (
	"context"
	"database/sql"
	"fmt"

	// Database drivers registered for sql sources.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/tabular"
)

// Driver names accepted for sql sources.
var sqlDrivers = map[string]bool{
	"sqlite3":  true,
	"mysql":    true,
	"postgres": true,
}

func validDriver(driver string) error {
	if driver == "" {
		return fmt.Errorf("driver is required for sql sources")
	}
	if !sqlDrivers[driver] {
		return fmt.Errorf("unsupported sql driver %q (valid: sqlite3, mysql, postgres)", driver)
	}
	return nil
}

// bindSQL returns a provider that opens the database, runs the
// configured query, and converts the row set to a tabular.Result.
//
// The connection is opened and closed per invocation. Availability
// checks are infrequent and single-shot, so there is no pool to manage,
// and a fresh connection means the check also exercises connectivity.
func bindSQL(src Source) checker.Provider {
	return func(ctx context.Context) (checker.Tabular, error) {
		db, err := sql.Open(src.Driver, src.DSN)
		if err != nil {
			return nil, fmt.Errorf("source %q: open database: %w", src.Name, err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("source %q: connect: %w", src.Name, err)
		}

		rows, err := db.QueryContext(ctx, src.Query)
		if err != nil {
			return nil, fmt.Errorf("source %q: query: %w", src.Name, err)
		}
		defer rows.Close()

		return scanRows(src.Name, rows)
	}
}

// scanRows converts a database/sql row set into a tabular.Result.
func scanRows(name string, rows *sql.Rows) (*tabular.Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("source %q: columns: %w", name, err)
	}

	result := tabular.NewResult(columns...)

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("source %q: scan: %w", name, err)
		}

		row := make(tabular.Row, len(columns))
		for i, col := range columns {
			v, err := tabular.FromAny(values[i])
			if err != nil {
				return nil, fmt.Errorf("source %q: column %q: %w", name, col, err)
			}
			row[col] = v
		}
		if err := result.AppendRow(row); err != nil {
			return nil, fmt.Errorf("source %q: %w", name, err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source %q: iterate: %w", name, err)
	}

	return result, nil
}
