// Package tabular defines the tabular result model shared by providers,
// the checker, and the suite runner.
//
// A Result is an ordered collection of rows with an explicit column list.
// Each row maps column names to scalar values. The model is deliberately
// small: results are produced once by a provider, consumed immediately by
// a check, and never mutated or persisted.
//
// # Value Types
//
// Cell values use a sealed Value interface with five implementations:
// String, Int, Float, Bool, and Null. Nested arrays and objects are not
// representable - providers flatten their sources into scalar cells.
//
// # Canonical Serialization
//
// MarshalCanonical produces deterministic JSON for golden-file comparison:
// object keys are sorted by UTF-16 code units, strings are NFC normalized,
// and HTML characters are not escaped. Floats are serialized with
// shortest round-trip formatting; NaN and infinities are rejected.
package tabular
