package models

type ExerciseSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight,omitempty"`
}

type Exercise struct {
	Name string        `json:"name"`
	Sets []ExerciseSet `json:"sets,omitempty"`
}

// WorkoutTemplate is a reusable exercise plan.
type WorkoutTemplate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises,omitempty"`
	UserID    string     `json:"user_id"`
}

type WorkoutTemplatePatch struct {
	Name      *string     `json:"name,omitempty"`
	Exercises *[]Exercise `json:"exercises,omitempty"`
}

func (p WorkoutTemplatePatch) Apply(t *WorkoutTemplate) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Exercises != nil {
		t.Exercises = *p.Exercises
	}
}

// WorkoutSession records an actual workout, optionally based on a template.
type WorkoutSession struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"template_id,omitempty"`
	Date        string     `json:"date"` // YYYY-MM-DD format
	DurationMin int        `json:"duration_min,omitempty"`
	Exercises   []Exercise `json:"exercises,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	UserID      string     `json:"user_id"`
}
