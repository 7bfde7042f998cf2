package provider

import (
	"fmt"

	"github.com/roach88/tabcheck/internal/checker"
)

// Source kinds.
const (
	KindSQL    = "sql"
	KindCSV    = "csv"
	KindHTTP   = "http"
	KindExcel  = "excel"
	KindStatic = "static"
)

// ValidKinds lists the supported source kinds.
var ValidKinds = []string{KindSQL, KindCSV, KindHTTP, KindExcel, KindStatic}

// Source describes a named dataset and how to fetch it.
// Exactly the fields for its kind must be set; Validate enforces this.
type Source struct {
	// Name uniquely identifies the dataset within a suite
	// (e.g. "points", "playing", "forecast").
	Name string `yaml:"name"`

	// Kind selects the provider implementation: sql, csv, http, excel,
	// or static.
	Kind string `yaml:"kind"`

	// Driver is the database/sql driver name (sql kind only).
	// One of: sqlite3, mysql, postgres.
	Driver string `yaml:"driver,omitempty"`

	// DSN is the database connection string (sql kind only).
	DSN string `yaml:"dsn,omitempty"`

	// Query is the SQL statement producing the dataset (sql kind only).
	Query string `yaml:"query,omitempty"`

	// Path is the file location (csv and excel kinds).
	Path string `yaml:"path,omitempty"`

	// Sheet selects a worksheet by name (excel kind only).
	// Empty means the first sheet.
	Sheet string `yaml:"sheet,omitempty"`

	// URL is the endpoint returning a JSON array of flat objects
	// (http kind only).
	URL string `yaml:"url,omitempty"`

	// Columns and Rows define an inline dataset (static kind only).
	Columns []string         `yaml:"columns,omitempty"`
	Rows    []map[string]any `yaml:"rows,omitempty"`
}

// Validate checks that the source declares a name, a known kind, and
// the fields that kind requires.
func (s *Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("source: name is required")
	}

	switch s.Kind {
	case KindSQL:
		if err := validDriver(s.Driver); err != nil {
			return fmt.Errorf("source %q: %w", s.Name, err)
		}
		if s.DSN == "" {
			return fmt.Errorf("source %q: dsn is required for sql sources", s.Name)
		}
		if s.Query == "" {
			return fmt.Errorf("source %q: query is required for sql sources", s.Name)
		}
	case KindCSV:
		if s.Path == "" {
			return fmt.Errorf("source %q: path is required for csv sources", s.Name)
		}
	case KindHTTP:
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required for http sources", s.Name)
		}
	case KindExcel:
		if s.Path == "" {
			return fmt.Errorf("source %q: path is required for excel sources", s.Name)
		}
	case KindStatic:
		if len(s.Columns) == 0 {
			return fmt.Errorf("source %q: columns list is required for static sources", s.Name)
		}
	case "":
		return fmt.Errorf("source %q: kind is required", s.Name)
	default:
		return fmt.Errorf("source %q: unknown kind %q (valid: %v)", s.Name, s.Kind, ValidKinds)
	}

	return nil
}

// Bind turns a source into a checker.Provider.
// The source is validated first; binding performs no I/O - all fetching
// happens when the returned provider is invoked.
func Bind(src Source) (checker.Provider, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	switch src.Kind {
	case KindSQL:
		return bindSQL(src), nil
	case KindCSV:
		return bindCSV(src), nil
	case KindHTTP:
		return bindHTTP(src), nil
	case KindExcel:
		return bindExcel(src), nil
	case KindStatic:
		return bindStatic(src)
	default:
		return nil, fmt.Errorf("source %q: unknown kind %q", src.Name, src.Kind)
	}
}
