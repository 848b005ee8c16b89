package models

type HabitType string

const (
	HabitTypeBuild HabitType = "build"
	HabitTypeBreak HabitType = "break"
)

type HabitStatus string

const (
	HabitStatusActive    HabitStatus = "active"
	HabitStatusPaused    HabitStatus = "paused"
	HabitStatusCompleted HabitStatus = "completed"
)

// Technique describes an evidence-backed approach attached to a catalog habit.
type Technique struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	ScientificBacking string `json:"scientific_backing,omitempty"`
}

// Question is an onboarding prompt answered when a user adopts a habit.
type Question struct {
	Question string   `json:"question"`
	Type     string   `json:"type"` // "number", "text", or "select"
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// Habit is a catalog entry. Catalog habits are shared templates; per-user
// tracking state lives on UserHabit.
type Habit struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
	Type        HabitType   `json:"type"`
	Techniques  []Technique `json:"techniques,omitempty"`
	Benefits    []string    `json:"benefits,omitempty"`
	Questions   []Question  `json:"questions,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Color       string      `json:"color,omitempty"`
}

// UserHabit links a user to a catalog habit and carries tracking counters.
// Invariants maintained by the store: StreakCurrent >= 0 and
// StreakLongest >= StreakCurrent.
type UserHabit struct {
	ID               string            `json:"id"`
	HabitID          string            `json:"habit_id"`
	UserID           string            `json:"user_id"`
	Status           HabitStatus       `json:"status"`
	StartDate        string            `json:"start_date"` // YYYY-MM-DD format
	TargetFrequency  string            `json:"target_frequency,omitempty"`
	UserAnswers      map[string]string `json:"user_answers,omitempty"`
	StreakCurrent    int               `json:"streak_current"`
	StreakLongest    int               `json:"streak_longest"`
	TotalCompletions int               `json:"total_completions"`
	ReminderEnabled  bool              `json:"reminder_enabled"`
	ReminderTime     string            `json:"reminder_time,omitempty"` // HH:MM format
}

// HabitLog records one day's outcome for a user habit. At most one log exists
// per (user_habit_id, date) pair.
type HabitLog struct {
	ID          string `json:"id"`
	UserHabitID string `json:"user_habit_id"`
	Date        string `json:"date"` // YYYY-MM-DD format
	Completed   bool   `json:"completed"`
	Notes       string `json:"notes,omitempty"`
}

// UserHabitPatch updates individual UserHabit fields. Nil fields are left
// untouched.
type UserHabitPatch struct {
	Status           *HabitStatus       `json:"status,omitempty"`
	TargetFrequency  *string            `json:"target_frequency,omitempty"`
	UserAnswers      *map[string]string `json:"user_answers,omitempty"`
	StreakCurrent    *int               `json:"streak_current,omitempty"`
	StreakLongest    *int               `json:"streak_longest,omitempty"`
	TotalCompletions *int               `json:"total_completions,omitempty"`
	ReminderEnabled  *bool              `json:"reminder_enabled,omitempty"`
	ReminderTime     *string            `json:"reminder_time,omitempty"`
}

func (p UserHabitPatch) Apply(h *UserHabit) {
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.TargetFrequency != nil {
		h.TargetFrequency = *p.TargetFrequency
	}
	if p.UserAnswers != nil {
		h.UserAnswers = *p.UserAnswers
	}
	if p.StreakCurrent != nil {
		h.StreakCurrent = *p.StreakCurrent
	}
	if p.StreakLongest != nil {
		h.StreakLongest = *p.StreakLongest
	}
	if p.TotalCompletions != nil {
		h.TotalCompletions = *p.TotalCompletions
	}
	if p.ReminderEnabled != nil {
		h.ReminderEnabled = *p.ReminderEnabled
	}
	if p.ReminderTime != nil {
		h.ReminderTime = *p.ReminderTime
	}
}

// HabitLogPatch updates individual HabitLog fields.
type HabitLogPatch struct {
	Completed *bool   `json:"completed,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p HabitLogPatch) Apply(l *HabitLog) {
	if p.Completed != nil {
		l.Completed = *p.Completed
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}
