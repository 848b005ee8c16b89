package storage

import "errors"

// ErrNotFound is returned by Load when no state has been persisted yet.
var ErrNotFound = errors.New("no persisted state found")

// Persister reads and writes the serialized application state as a single
// opaque slot. Writes replace the previous value wholesale (last-writer-wins,
// no merge, no versioning).
type Persister interface {
	// Load returns the previously saved blob, or ErrNotFound if the slot is
	// empty.
	Load() ([]byte, error)

	// Save replaces the slot contents with data.
	Save(data []byte) error

	Close() error
}
