package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// AddVaultEntry stores a vault record. The caller supplies the password
// already obfuscated; the store never handles plaintext.
func (s *Store) AddVaultEntry(v models.VaultEntry) {
	v.ID = newID()
	s.state.VaultEntries = append(s.state.VaultEntries, v)
	s.sync()
}

func (s *Store) UpdateVaultEntry(id string, patch models.VaultEntryPatch) {
	for i := range s.state.VaultEntries {
		if s.state.VaultEntries[i].ID == id {
			patch.Apply(&s.state.VaultEntries[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteVaultEntry(id string) {
	for i := range s.state.VaultEntries {
		if s.state.VaultEntries[i].ID == id {
			s.state.VaultEntries = append(s.state.VaultEntries[:i], s.state.VaultEntries[i+1:]...)
			s.sync()
			return
		}
	}
}
