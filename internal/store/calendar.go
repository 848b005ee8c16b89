package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddCalendarEvent(e models.CalendarEvent) {
	e.ID = newID()
	s.state.CalendarEvents = append(s.state.CalendarEvents, e)
	s.sync()
}

func (s *Store) UpdateCalendarEvent(id string, patch models.CalendarEventPatch) {
	for i := range s.state.CalendarEvents {
		if s.state.CalendarEvents[i].ID == id {
			patch.Apply(&s.state.CalendarEvents[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteCalendarEvent(id string) {
	for i := range s.state.CalendarEvents {
		if s.state.CalendarEvents[i].ID == id {
			s.state.CalendarEvents = append(s.state.CalendarEvents[:i], s.state.CalendarEvents[i+1:]...)
			s.sync()
			return
		}
	}
}
