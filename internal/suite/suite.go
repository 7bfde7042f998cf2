package suite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tabcheck/internal/provider"
)

// Suite declares a set of named data sources and the availability
// checks to run against them.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what this suite verifies.
	Description string `yaml:"description"`

	// Sources lists the datasets and how to fetch them.
	Sources []provider.Source `yaml:"sources"`

	// Checks lists the availability checks, in execution order.
	Checks []Check `yaml:"checks"`
}

// Check is one availability check against a named source.
// The non-empty contract always applies; MinRows and Columns tighten it.
type Check struct {
	// Source names the dataset to check. Must match a source name.
	Source string `yaml:"source"`

	// MinRows requires at least this many rows. Zero means the default
	// contract: at least one row.
	MinRows int `yaml:"min_rows,omitempty"`

	// Columns requires these columns to be present in the result.
	Columns []string `yaml:"columns,omitempty"`
}

// Load reads, parses, and validates a suite YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), fails schema validation, or is internally
// inconsistent (duplicate sources, checks against unknown sources).
//
// Relative source paths are resolved against the suite file's
// directory, so a suite can sit next to its data files.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite, err := Parse(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i := range suite.Sources {
		if p := suite.Sources[i].Path; p != "" && !filepath.IsAbs(p) {
			suite.Sources[i].Path = filepath.Join(base, p)
		}
	}

	return suite, nil
}

// Parse parses and validates suite YAML from memory.
func Parse(data []byte) (*Suite, error) {
	// Schema check first: CUE reports structural problems (wrong types,
	// unknown kinds) with better positions than struct decoding.
	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	// Strict decode catches unknown fields the schema's open structs allow.
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &suite, nil
}

// validateSuite checks cross-field consistency the schema cannot see.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Sources) == 0 {
		return fmt.Errorf("sources list is required and must be non-empty")
	}

	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	names := make(map[string]bool, len(s.Sources))
	for i, src := range s.Sources {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("sources[%d]: %w", i, err)
		}
		if names[src.Name] {
			return fmt.Errorf("sources[%d]: duplicate source name %q", i, src.Name)
		}
		names[src.Name] = true
	}

	for i, check := range s.Checks {
		if check.Source == "" {
			return fmt.Errorf("checks[%d]: source is required", i)
		}
		if !names[check.Source] {
			return fmt.Errorf("checks[%d]: unknown source %q", i, check.Source)
		}
		if check.MinRows < 0 {
			return fmt.Errorf("checks[%d]: min_rows must be non-negative", i)
		}
	}

	return nil
}

// SourceByName returns the named source.
func (s *Suite) SourceByName(name string) (provider.Source, bool) {
	for _, src := range s.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return provider.Source{}, false
}
