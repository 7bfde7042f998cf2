package tabular

import "fmt"

// Row maps column names to scalar cell values.
type Row map[string]Value

// Result is an ordered collection of rows with an explicit column list.
//
// Columns fixes both the set and the order of columns; rows may omit a
// column (treated as Null) but must not introduce columns outside the
// list. Results are immutable by convention once returned by a provider.
type Result struct {
	Columns []string
	Rows    []Row
}

// NewResult creates an empty result with the given column list.
func NewResult(columns ...string) *Result {
	return &Result{Columns: columns, Rows: []Row{}}
}

// RowCount returns the number of rows.
// This is the capability the availability checker consumes.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

// HasColumn reports whether the result declares the named column.
func (r *Result) HasColumn(name string) bool {
	for _, c := range r.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AppendRow adds a row after checking it against the column list.
// Cells for undeclared columns are an error; missing cells are filled
// with Null so every row carries every declared column.
func (r *Result) AppendRow(row Row) error {
	for col := range row {
		if !r.HasColumn(col) {
			return fmt.Errorf("row %d: undeclared column %q", len(r.Rows), col)
		}
	}
	filled := make(Row, len(r.Columns))
	for _, col := range r.Columns {
		if v, ok := row[col]; ok {
			filled[col] = v
		} else {
			filled[col] = Null{}
		}
	}
	r.Rows = append(r.Rows, filled)
	return nil
}

// Cell returns the value at the given row index and column.
// Returns Null for missing cells rather than panicking.
func (r *Result) Cell(i int, column string) Value {
	if i < 0 || i >= len(r.Rows) {
		return Null{}
	}
	if v, ok := r.Rows[i][column]; ok {
		return v
	}
	return Null{}
}

// ToMaps converts the result to plain Go maps in row order.
// Used for JSON output and canonical serialization.
func (r *Result) ToMaps() []map[string]any {
	out := make([]map[string]any, len(r.Rows))
	for i, row := range r.Rows {
		m := make(map[string]any, len(r.Columns))
		for _, col := range r.Columns {
			if v, ok := row[col]; ok {
				m[col] = GoValue(v)
			} else {
				m[col] = nil
			}
		}
		out[i] = m
	}
	return out
}
