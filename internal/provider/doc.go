// Package provider supplies concrete data providers for availability
// checks.
//
// A Source describes where a named dataset lives - a SQL database, a
// CSV file, an HTTP endpoint, a spreadsheet, or inline static rows.
// Bind turns a validated Source into a checker.Provider: a
// pre-configured, zero-argument operation that fetches the dataset and
// returns it as a tabular.Result.
//
// Providers own all I/O. The checker never sees connection handles or
// file paths, only the bound closure and its result.
package provider
