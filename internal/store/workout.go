package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddWorkoutTemplate(t models.WorkoutTemplate) {
	t.ID = newID()
	s.state.WorkoutTemplates = append(s.state.WorkoutTemplates, t)
	s.sync()
}

func (s *Store) UpdateWorkoutTemplate(id string, patch models.WorkoutTemplatePatch) {
	for i := range s.state.WorkoutTemplates {
		if s.state.WorkoutTemplates[i].ID == id {
			patch.Apply(&s.state.WorkoutTemplates[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteWorkoutTemplate(id string) {
	for i := range s.state.WorkoutTemplates {
		if s.state.WorkoutTemplates[i].ID == id {
			s.state.WorkoutTemplates = append(s.state.WorkoutTemplates[:i], s.state.WorkoutTemplates[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddWorkoutSession(w models.WorkoutSession) {
	w.ID = newID()
	s.state.WorkoutSessions = append(s.state.WorkoutSessions, w)
	s.sync()
}

func (s *Store) DeleteWorkoutSession(id string) {
	for i := range s.state.WorkoutSessions {
		if s.state.WorkoutSessions[i].ID == id {
			s.state.WorkoutSessions = append(s.state.WorkoutSessions[:i], s.state.WorkoutSessions[i+1:]...)
			s.sync()
			return
		}
	}
}
