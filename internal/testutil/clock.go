// Package testutil provides deterministic helpers for reproducible
// suite runs and golden-file tests.
package testutil

import "sync"

// SeqClock is a thread-safe monotonic sequence counter.
//
// The suite runner stamps each check outcome with a sequence number;
// using a SeqClock instead of wall time keeps recorded runs and golden
// snapshots byte-identical across executions.
type SeqClock struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqClock creates a clock starting at 0.
// The first call to Next() returns 1.
func NewSeqClock() *SeqClock {
	return &SeqClock{}
}

// Next increments and returns the next sequence number.
// Monotonic: always returns seq+1, never decreases.
func (c *SeqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *SeqClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0 for test reuse.
// After Reset(), the next call to Next() returns 1.
func (c *SeqClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
