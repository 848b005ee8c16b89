package models

// User is supplied by the authentication collaborator at startup. The store
// treats it as a fixed input, not owned data.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CreatedDate    string `json:"created_date"` // YYYY-MM-DD format
	Level          int    `json:"level"`
	XP             int    `json:"xp"`

	FinanceOnboardingCompleted bool `json:"finance_onboarding_completed"`
}
