package models

type SchoolAssignment struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	DueDate   string `json:"due_date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
	UserID    string `json:"user_id"`
}

type SchoolAssignmentPatch struct {
	Title     *string `json:"title,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	DueDate   *string `json:"due_date,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p SchoolAssignmentPatch) Apply(a *SchoolAssignment) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		a.Completed = *p.Completed
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

type BucketListItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TargetDate string `json:"target_date,omitempty"` // YYYY-MM-DD format
	Completed  bool   `json:"completed"`
	PhotoURL   string `json:"photo_url,omitempty"`
	UserID     string `json:"user_id"`
}

type BucketListItemPatch struct {
	Title      *string `json:"title,omitempty"`
	TargetDate *string `json:"target_date,omitempty"`
	Completed  *bool   `json:"completed,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

func (p BucketListItemPatch) Apply(b *BucketListItem) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.TargetDate != nil {
		b.TargetDate = *p.TargetDate
	}
	if p.Completed != nil {
		b.Completed = *p.Completed
	}
	if p.PhotoURL != nil {
		b.PhotoURL = *p.PhotoURL
	}
}

// FutureLetter is a message unlocked once the current date passes UnlockDate.
// Locked versus unlocked is a pure function of the clock, never stored.
type FutureLetter struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UnlockDate string `json:"unlock_date"` // YYYY-MM-DD format
	UserID     string `json:"user_id"`
}
