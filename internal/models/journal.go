package models

type Mood string

const (
	MoodVeryHappy Mood = "very_happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very_sad"
)

// MoodScale orders moods from best to worst. Positions on this scale are the
// ordinal values used for mood averaging.
var MoodScale = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

type JournalEntry struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Date    string   `json:"date"` // YYYY-MM-DD format
	Mood    Mood     `json:"mood"`
	Tags    []string `json:"tags,omitempty"`
}

type JournalEntryPatch struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Date    *string   `json:"date,omitempty"`
	Mood    *Mood     `json:"mood,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

func (p JournalEntryPatch) Apply(e *JournalEntry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
}

// DailyReflection holds end-of-day answers keyed by question. At most one
// reflection exists per date.
type DailyReflection struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"` // YYYY-MM-DD format
	Answers map[string]string `json:"answers"`
}

// GratitudePost is a globally visible post on the gratitude wall.
type GratitudePost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"` // RFC3339 timestamp
	UserID    string `json:"user_id"`
}
