package store

import (
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddJournalEntry(e models.JournalEntry) {
	e.ID = newID()
	s.state.JournalEntries = append(s.state.JournalEntries, e)
	s.sync()
}

func (s *Store) UpdateJournalEntry(id string, patch models.JournalEntryPatch) {
	for i := range s.state.JournalEntries {
		if s.state.JournalEntries[i].ID == id {
			patch.Apply(&s.state.JournalEntries[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteJournalEntry(id string) {
	for i := range s.state.JournalEntries {
		if s.state.JournalEntries[i].ID == id {
			s.state.JournalEntries = append(s.state.JournalEntries[:i], s.state.JournalEntries[i+1:]...)
			s.sync()
			return
		}
	}
}

// AddDailyReflection saves the reflection for its date. A reflection already
// recorded for that date is replaced, keeping at most one per day.
func (s *Store) AddDailyReflection(r models.DailyReflection) {
	for i := range s.state.DailyReflections {
		if s.state.DailyReflections[i].Date == r.Date {
			r.ID = s.state.DailyReflections[i].ID
			s.state.DailyReflections[i] = r
			s.sync()
			return
		}
	}
	r.ID = newID()
	s.state.DailyReflections = append(s.state.DailyReflections, r)
	s.sync()
}

// AddGratitudePost appends a post stamped with the current time.
func (s *Store) AddGratitudePost(p models.GratitudePost) {
	p.ID = newID()
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.state.GratitudePosts = append(s.state.GratitudePosts, p)
	s.sync()
}

func (s *Store) DeleteGratitudePost(id string) {
	for i := range s.state.GratitudePosts {
		if s.state.GratitudePosts[i].ID == id {
			s.state.GratitudePosts = append(s.state.GratitudePosts[:i], s.state.GratitudePosts[i+1:]...)
			s.sync()
			return
		}
	}
}
