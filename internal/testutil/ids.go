package testutil

import "fmt"

// FixedIDGenerator produces predictable run and outcome IDs.
//
// Production runs use UUIDv7 identifiers; golden-file tests swap in a
// FixedIDGenerator so two executions of the same suite produce
// byte-identical reports.
//
// IDs follow the pattern "<prefix>-0001", "<prefix>-0002", ...
type FixedIDGenerator struct {
	prefix string
	clock  *SeqClock
}

// NewFixedIDGenerator creates a generator with the given prefix.
// An empty prefix defaults to "test".
func NewFixedIDGenerator(prefix string) *FixedIDGenerator {
	if prefix == "" {
		prefix = "test"
	}
	return &FixedIDGenerator{prefix: prefix, clock: NewSeqClock()}
}

// NewID returns the next predictable identifier.
func (g *FixedIDGenerator) NewID() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.clock.Next())
}
