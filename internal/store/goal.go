package store

import (
	"math"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddGoal(g models.Goal) {
	g.ID = newID()
	if len(g.Milestones) > 0 {
		g.Progress = milestoneProgress(g.Milestones)
	}
	s.state.Goals = append(s.state.Goals, g)
	s.sync()
}

// UpdateGoal shallow-merges patch. When the patch changes milestones,
// progress is recomputed from the completion ratio; a manually supplied
// progress only sticks for goals without milestones.
func (s *Store) UpdateGoal(id string, patch models.GoalPatch) {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			patch.Apply(&s.state.Goals[i])
			if patch.Milestones != nil && len(s.state.Goals[i].Milestones) > 0 {
				s.state.Goals[i].Progress = milestoneProgress(s.state.Goals[i].Milestones)
			}
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteGoal(id string) {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			s.state.Goals = append(s.state.Goals[:i], s.state.Goals[i+1:]...)
			s.sync()
			return
		}
	}
}

// ToggleGoalMilestone flips one milestone's completion and recomputes the
// goal's progress. Out-of-range indexes are a no-op.
func (s *Store) ToggleGoalMilestone(goalID string, index int) {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID != goalID {
			continue
		}
		g := &s.state.Goals[i]
		if index < 0 || index >= len(g.Milestones) {
			return
		}
		g.Milestones[index].Completed = !g.Milestones[index].Completed
		g.Progress = milestoneProgress(g.Milestones)
		s.sync()
		return
	}
}

func milestoneProgress(milestones []models.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(milestones))))
}
