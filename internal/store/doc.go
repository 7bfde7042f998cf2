// Package store persists availability-check run history.
//
// Each suite run produces one run record plus one outcome record per
// check. SQLite keeps the history local and queryable: the CLI's
// history command reads it, and nothing else depends on it - the
// checker itself never touches the store.
//
// Writes are idempotent (ON CONFLICT DO NOTHING on content-stable IDs)
// and reads use deterministic ordering (seq ASC, id COLLATE BINARY ASC)
// so replaying a recorded run always yields the same sequence.
package store
