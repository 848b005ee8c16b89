package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetMasterKey(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	testKey := "a-strong-master-key"

	if err := SetMasterKey(testKey); err != nil {
		t.Fatalf("SetMasterKey() failed: %v", err)
	}

	retrieved, err := GetMasterKey()
	if err != nil {
		t.Fatalf("GetMasterKey() failed: %v", err)
	}
	if retrieved != testKey {
		t.Errorf("GetMasterKey() = %q, want %q", retrieved, testKey)
	}
}

func TestSetMasterKeyEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetMasterKey(""); err == nil {
		t.Error("SetMasterKey(\"\") should return an error")
	}
}

func TestGetMasterKeyNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteMasterKey()

	if _, err := GetMasterKey(); err != ErrNotFound {
		t.Errorf("GetMasterKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteMasterKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetMasterKey("to-be-deleted"); err != nil {
		t.Fatalf("SetMasterKey() failed: %v", err)
	}
	if err := DeleteMasterKey(); err != nil {
		t.Fatalf("DeleteMasterKey() failed: %v", err)
	}
	if _, err := GetMasterKey(); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestIsAvailableWithMock(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring, want true")
	}
}
