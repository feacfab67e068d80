package shown

import "context"

// Store defines the shown-progress store contract for dependency
// injection and testing.
type Store interface {
	// Load reads all records from durable storage. This is the
	// session-start read and the only read that can fail.
	Load(ctx context.Context) ([]Record, error)
	// Get returns the last loaded records from the in-memory cache.
	Get() []Record
	// Set upserts the given records. Each record is written atomically;
	// writes for different stories may interleave.
	Set(records ...Record) error
	// Observe returns a stream of record snapshots, emitted after every
	// successful Set. The channel is closed by Close.
	Observe() <-chan []Record
	// Actualize drops records for stories no longer offered.
	Actualize(keepIDs []string) error
	// DeleteAll removes every record.
	DeleteAll() error
	Close() error
}

// Verify Manager implements Store at compile time.
var _ Store = (*Manager)(nil)
