package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func (s *Store) AddSchoolAssignment(a models.SchoolAssignment) {
	a.ID = newID()
	s.state.SchoolAssignments = append(s.state.SchoolAssignments, a)
	s.sync()
}

func (s *Store) UpdateSchoolAssignment(id string, patch models.SchoolAssignmentPatch) {
	for i := range s.state.SchoolAssignments {
		if s.state.SchoolAssignments[i].ID == id {
			patch.Apply(&s.state.SchoolAssignments[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteSchoolAssignment(id string) {
	for i := range s.state.SchoolAssignments {
		if s.state.SchoolAssignments[i].ID == id {
			s.state.SchoolAssignments = append(s.state.SchoolAssignments[:i], s.state.SchoolAssignments[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddBucketListItem(b models.BucketListItem) {
	b.ID = newID()
	s.state.BucketListItems = append(s.state.BucketListItems, b)
	s.sync()
}

func (s *Store) UpdateBucketListItem(id string, patch models.BucketListItemPatch) {
	for i := range s.state.BucketListItems {
		if s.state.BucketListItems[i].ID == id {
			patch.Apply(&s.state.BucketListItems[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteBucketListItem(id string) {
	for i := range s.state.BucketListItems {
		if s.state.BucketListItems[i].ID == id {
			s.state.BucketListItems = append(s.state.BucketListItems[:i], s.state.BucketListItems[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddFutureLetter(l models.FutureLetter) {
	l.ID = newID()
	s.state.FutureLetters = append(s.state.FutureLetters, l)
	s.sync()
}

func (s *Store) DeleteFutureLetter(id string) {
	for i := range s.state.FutureLetters {
		if s.state.FutureLetters[i].ID == id {
			s.state.FutureLetters = append(s.state.FutureLetters[:i], s.state.FutureLetters[i+1:]...)
			s.sync()
			return
		}
	}
}
