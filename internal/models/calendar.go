package models

type Recurring string

const (
	RecurringNone    Recurring = "none"
	RecurringDaily   Recurring = "daily"
	RecurringWeekly  Recurring = "weekly"
	RecurringMonthly Recurring = "monthly"
)

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD format
	StartTime   string    `json:"start_time,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	Recurring   Recurring `json:"recurring,omitempty"`
	Color       string    `json:"color,omitempty"`
	UserID      string    `json:"user_id"`
}

type CalendarEventPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *string    `json:"start_date,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndDate     *string    `json:"end_date,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Recurring   *Recurring `json:"recurring,omitempty"`
	Color       *string    `json:"color,omitempty"`
}

func (p CalendarEventPatch) Apply(e *CalendarEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
}
