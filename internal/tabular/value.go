package tabular

import (
	"fmt"
	"strconv"
	"time"
)

// Value is a sealed interface representing a scalar cell value.
// Only String, Int, Float, Bool, and Null implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents an absent or NULL cell.
// Using an explicit type keeps every cell a non-nil Value.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// String represents a text cell.
type String string

func (String) value() {}

// Int represents an integer cell. Always int64.
type Int int64

func (Int) value() {}

// Float represents a floating-point cell.
type Float float64

func (Float) value() {}

// Bool represents a boolean cell.
type Bool bool

func (Bool) value() {}

// FromAny converts a dynamically-typed value (from database/sql scanning,
// JSON decoding, or YAML parsing) into a Value.
//
// nil maps to Null. Integral float64 values stay Float - callers that
// decoded JSON and want integers should convert explicitly. Byte slices
// are treated as text, matching how SQLite and MySQL drivers return
// column data.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case []byte:
		return String(val), nil
	case int:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case bool:
		return Bool(val), nil
	case time.Time:
		return String(val.Format(time.RFC3339)), nil
	default:
		return nil, fmt.Errorf("unsupported cell type %T", v)
	}
}

// ParseCell converts a raw text cell (CSV, spreadsheet) into a Value.
// Empty text maps to Null. Integers are preferred over floats; anything
// that parses as neither a number nor a boolean stays a String.
func ParseCell(s string) Value {
	if s == "" {
		return Null{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	if s == "true" || s == "false" {
		return Bool(s == "true")
	}
	return String(s)
}

// GoValue returns the plain Go representation of a Value.
// Null maps to nil. Useful for JSON output and assertions.
func GoValue(v Value) any {
	switch val := v.(type) {
	case Null:
		return nil
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	default:
		return nil
	}
}
