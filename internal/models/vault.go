package models

// VaultEntry stores credentials for a service. The password is held only in
// reversibly obfuscated form; the store never sees the plaintext.
type VaultEntry struct {
	ID                string `json:"id"`
	ServiceName       string `json:"service_name"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	URL               string `json:"url,omitempty"`
	Notes             string `json:"notes,omitempty"`
	UserID            string `json:"user_id"`
}

type VaultEntryPatch struct {
	ServiceName       *string `json:"service_name,omitempty"`
	Username          *string `json:"username,omitempty"`
	EncryptedPassword *string `json:"encrypted_password,omitempty"`
	URL               *string `json:"url,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

func (p VaultEntryPatch) Apply(v *VaultEntry) {
	if p.ServiceName != nil {
		v.ServiceName = *p.ServiceName
	}
	if p.Username != nil {
		v.Username = *p.Username
	}
	if p.EncryptedPassword != nil {
		v.EncryptedPassword = *p.EncryptedPassword
	}
	if p.URL != nil {
		v.URL = *p.URL
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
}
