// Package migration moves the persisted state between storage backends, for
// example from the default JSON file into SQLite or Postgres.
package migration

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ShivamParikh1/HabitAppV11/internal/storage"
)

// ErrEmptySource is returned when the source slot holds no state.
var ErrEmptySource = errors.New("source has no persisted state")

// Migrate copies the state slot from src to dst. The source is left intact so
// the caller can keep it as a fallback. The blob is validated before writing;
// a corrupt source never overwrites the destination.
func Migrate(src, dst storage.Persister) error {
	data, err := src.Load()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEmptySource
		}
		return fmt.Errorf("failed to read source state: %w", err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("source state is not valid JSON")
	}

	if err := dst.Save(data); err != nil {
		return fmt.Errorf("failed to write destination state: %w", err)
	}

	return nil
}
