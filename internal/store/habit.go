package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// AddUserHabit adopts a catalog habit for the user. The payload's ID is
// replaced with a fresh one.
func (s *Store) AddUserHabit(h models.UserHabit) {
	h.ID = newID()
	s.state.UserHabits = append(s.state.UserHabits, h)
	s.sync()
}

func (s *Store) UpdateUserHabit(id string, patch models.UserHabitPatch) {
	for i := range s.state.UserHabits {
		if s.state.UserHabits[i].ID == id {
			patch.Apply(&s.state.UserHabits[i])
			s.sync()
			return
		}
	}
}

// DeleteUserHabit removes the habit. Its logs are left in place; they are
// unreachable informal relations, matching the store's no-foreign-key model.
func (s *Store) DeleteUserHabit(id string) {
	for i := range s.state.UserHabits {
		if s.state.UserHabits[i].ID == id {
			s.state.UserHabits = append(s.state.UserHabits[:i], s.state.UserHabits[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddHabitLog(l models.HabitLog) {
	l.ID = newID()
	s.state.HabitLogs = append(s.state.HabitLogs, l)
	s.sync()
}

func (s *Store) UpdateHabitLog(id string, patch models.HabitLogPatch) {
	for i := range s.state.HabitLogs {
		if s.state.HabitLogs[i].ID == id {
			patch.Apply(&s.state.HabitLogs[i])
			s.sync()
			return
		}
	}
}

// CompleteHabit marks the habit done for date and bumps its counters as one
// command, keeping the log and the counters consistent. Completing an
// already-completed date is a no-op, so at most one completed log exists per
// habit per day.
func (s *Store) CompleteHabit(userHabitID, date string) {
	h := s.findUserHabit(userHabitID)
	if h == nil {
		return
	}

	l := s.findHabitLog(userHabitID, date)
	if l != nil && l.Completed {
		return
	}

	if l == nil {
		s.state.HabitLogs = append(s.state.HabitLogs, models.HabitLog{
			ID:          newID(),
			UserHabitID: userHabitID,
			Date:        date,
			Completed:   true,
		})
	} else {
		l.Completed = true
	}

	h.StreakCurrent++
	if h.StreakCurrent > h.StreakLongest {
		h.StreakLongest = h.StreakCurrent
	}
	h.TotalCompletions++
	s.sync()
}

// UndoHabit reverses CompleteHabit for date. Counters never go below zero.
func (s *Store) UndoHabit(userHabitID, date string) {
	h := s.findUserHabit(userHabitID)
	if h == nil {
		return
	}

	l := s.findHabitLog(userHabitID, date)
	if l == nil || !l.Completed {
		return
	}

	l.Completed = false
	if h.StreakCurrent > 0 {
		h.StreakCurrent--
	}
	if h.TotalCompletions > 0 {
		h.TotalCompletions--
	}
	s.sync()
}

func (s *Store) findUserHabit(id string) *models.UserHabit {
	for i := range s.state.UserHabits {
		if s.state.UserHabits[i].ID == id {
			return &s.state.UserHabits[i]
		}
	}
	return nil
}

func (s *Store) findHabitLog(userHabitID, date string) *models.HabitLog {
	for i := range s.state.HabitLogs {
		if s.state.HabitLogs[i].UserHabitID == userHabitID && s.state.HabitLogs[i].Date == date {
			return &s.state.HabitLogs[i]
		}
	}
	return nil
}
