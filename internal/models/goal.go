package models

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
)

type Milestone struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Date      string `json:"date,omitempty"` // YYYY-MM-DD format
}

// Goal tracks a long-term objective. Progress is derived from milestone
// completion when milestones exist; otherwise it is set manually.
type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	TargetDate  string      `json:"target_date,omitempty"` // YYYY-MM-DD format
	Progress    int         `json:"progress"`              // 0-100
	Status      GoalStatus  `json:"status"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}

type GoalPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	TargetDate  *string      `json:"target_date,omitempty"`
	Progress    *int         `json:"progress,omitempty"`
	Status      *GoalStatus  `json:"status,omitempty"`
	Milestones  *[]Milestone `json:"milestones,omitempty"`
}

func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Milestones != nil {
		g.Milestones = *p.Milestones
	}
}
