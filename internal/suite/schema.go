package suite

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// schemaCUE is the structural schema every suite file must satisfy.
// Field-level constraints (enums, non-empty strings, minimum lengths)
// live here; cross-field rules (duplicate names, check references) are
// enforced in validateSuite.
const schemaCUE = `
#Source: {
	name:     string & !=""
	kind:     "sql" | "csv" | "http" | "excel" | "static"
	driver?:  "sqlite3" | "mysql" | "postgres"
	dsn?:     string & !=""
	query?:   string & !=""
	path?:    string & !=""
	sheet?:   string
	url?:     string & !=""
	columns?: [...string]
	rows?: [...{...}]
}

#Check: {
	source:    string & !=""
	min_rows?: int & >=1
	columns?: [...string & !=""]
}

#Suite: {
	name:        string & !=""
	description: string & !=""
	sources: [#Source, ...#Source]
	checks: [#Check, ...#Check]
}
`

// ValidateSchema checks raw suite YAML against the CUE schema.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
func ValidateSchema(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("suite file is empty")
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return formatCUEError(err)
	}

	def := schema.LookupPath(cue.ParsePath("#Suite"))
	if err := def.Err(); err != nil {
		return formatCUEError(err)
	}

	val := ctx.Encode(raw)
	if err := val.Err(); err != nil {
		return formatCUEError(err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}

	return nil
}

// SchemaError is a schema violation with source position when available.
type SchemaError struct {
	Message string
	Pos     string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Pos != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// formatCUEError converts a CUE error list into a single SchemaError.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 && positions[0].IsValid() {
		return &SchemaError{
			Message: firstErr.Error(),
			Pos:     positions[0].String(),
		}
	}

	return &SchemaError{Message: firstErr.Error()}
}
