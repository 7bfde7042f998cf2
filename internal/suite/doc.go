// Package suite runs availability checks over a declared set of
// tabular data sources.
//
// # Suite Format
//
// Suites are defined in YAML files with the following structure:
//
//	name: matchday
//	description: "Availability checks for the matchday datasets"
//	sources:
//	  - name: points
//	    kind: sql
//	    driver: sqlite3
//	    dsn: ./app.db
//	    query: SELECT * FROM points
//	  - name: playing
//	    kind: csv
//	    path: ./playing.csv
//	  - name: forecast
//	    kind: http
//	    url: https://example.com/forecast.json
//	checks:
//	  - source: points
//	  - source: playing
//	    min_rows: 11
//	  - source: forecast
//	    columns: [gw, xp]
//
// Every check enforces the core contract: the source must return a
// non-empty tabular result. min_rows and columns tighten that baseline;
// they never relax it.
//
// # Execution Model
//
// Checks run sequentially, one provider call per check, with no retries
// and no state shared between checks. A provider failure (the call
// itself errors) is recorded distinctly from an empty or short result,
// so "provider unavailable" never masquerades as "empty data".
//
// # Deterministic Reports
//
// Runs stamp each check with a monotonic sequence number. Golden-file
// tests swap the UUID run-ID generator and wall clock for fixed ones,
// which makes reports byte-identical across runs and comparable with
// goldie snapshots.
package suite
