package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestSQLiteStoreLoadEmptyReturnsErrNotFound(t *testing.T) {
	store := setupTestSQLiteStore(t)

	_, err := store.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStoreSaveThenLoad(t *testing.T) {
	store := setupTestSQLiteStore(t)

	blob := []byte(`{"goals":[]}`)
	if err := store.Save(blob); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("expected %q, got %q", blob, got)
	}
}

func TestSQLiteStoreUpsertKeepsSingleRow(t *testing.T) {
	store := setupTestSQLiteStore(t)

	for _, blob := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		if err := store.Save([]byte(blob)); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if string(got) != `{"v":3}` {
		t.Errorf("expected %q, got %q", `{"v":3}`, got)
	}

	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store := NewSQLiteStore(path)
	if err := store.Save([]byte(`{"persisted":true}`)); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("failed to load after reopen: %v", err)
	}
	if string(got) != `{"persisted":true}` {
		t.Errorf("expected %q, got %q", `{"persisted":true}`, got)
	}
}
