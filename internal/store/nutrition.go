package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddMealEntry(m models.MealEntry) {
	m.ID = newID()
	s.state.MealEntries = append(s.state.MealEntries, m)
	s.sync()
}

func (s *Store) UpdateMealEntry(id string, patch models.MealEntryPatch) {
	for i := range s.state.MealEntries {
		if s.state.MealEntries[i].ID == id {
			patch.Apply(&s.state.MealEntries[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteMealEntry(id string) {
	for i := range s.state.MealEntries {
		if s.state.MealEntries[i].ID == id {
			s.state.MealEntries = append(s.state.MealEntries[:i], s.state.MealEntries[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddWaterEntry(w models.WaterEntry) {
	w.ID = newID()
	s.state.WaterEntries = append(s.state.WaterEntries, w)
	s.sync()
}

func (s *Store) DeleteWaterEntry(id string) {
	for i := range s.state.WaterEntries {
		if s.state.WaterEntries[i].ID == id {
			s.state.WaterEntries = append(s.state.WaterEntries[:i], s.state.WaterEntries[i+1:]...)
			s.sync()
			return
		}
	}
}

// UpdateNutritionGoals shallow-merges patch into the singleton.
func (s *Store) UpdateNutritionGoals(patch models.NutritionGoalsPatch) {
	patch.Apply(&s.state.NutritionGoals)
	s.sync()
}
