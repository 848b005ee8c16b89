package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
)

func setupTestState(t *testing.T) string {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(statePath, []byte(`{"todos":[{"id":"t1"}]}`), 0600); err != nil {
		t.Fatalf("failed to write test state: %v", err)
	}
	return statePath
}

func TestCreateBackup(t *testing.T) {
	statePath := setupTestState(t)

	mgr := NewManager(statePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"todos":[{"id":"t1"}]}` {
		t.Errorf("backup content does not match the state file: %q", data)
	}
}

func TestCreateBackupMissingStateFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when the state file does not exist")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	// Write backups with explicit timestamps so ordering is deterministic.
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, ts := range []string{"20250101-0900", "20250103-0900", "20250102-0900"} {
		name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, ts, constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte(`{}`), 0600); err != nil {
			t.Fatalf("failed to write backup: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v before %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups, got %d", len(backups))
	}
}

func TestListBackupsEmptyWhenDirMissing(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "state.json"))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	// Seed MaxBackups+5 backups with distinct timestamps, then trigger
	// rotation with one real CreateBackup.
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < constants.MaxBackups+5; i++ {
		ts := base.Add(time.Duration(i) * time.Minute).Format("20060102-1504")
		name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, ts, constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte(`{}`), 0600); err != nil {
			t.Fatalf("failed to write backup: %v", err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("expected at most %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the state, then restore the earlier snapshot.
	if err := os.WriteFile(statePath, []byte(`{"todos":[]}`), 0600); err != nil {
		t.Fatalf("failed to overwrite state: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatalf("failed to read restored state: %v", err)
	}
	if string(data) != `{"todos":[{"id":"t1"}]}` {
		t.Errorf("restored state does not match backup: %q", data)
	}
}

func TestRestoreBackupRejectsCorruptBackup(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	corrupt := filepath.Join(mgr.GetBackupDir(), constants.BackupFilePrefix+"20250101-0900"+constants.BackupFileSuffix)
	if err := os.WriteFile(corrupt, []byte("not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt backup: %v", err)
	}

	if err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("expected error restoring corrupt backup")
	}

	// Original state must be untouched.
	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}
	if string(data) != `{"todos":[{"id":"t1"}]}` {
		t.Errorf("state was modified by failed restore: %q", data)
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	statePath := setupTestState(t)
	mgr := NewManager(statePath)

	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "nope.json")); err == nil {
		t.Error("expected error restoring nonexistent backup")
	}
}
