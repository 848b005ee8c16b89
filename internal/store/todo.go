package store

import (
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// AddTodo appends the todo with a fresh id and creation/update dates.
func (s *Store) AddTodo(t models.Todo) {
	now := time.Now().Format(constants.DateFormat)
	t.ID = newID()
	t.CreatedDate = now
	t.UpdatedDate = now
	s.state.Todos = append(s.state.Todos, t)
	s.sync()
}

func (s *Store) UpdateTodo(id string, patch models.TodoPatch) {
	for i := range s.state.Todos {
		if s.state.Todos[i].ID == id {
			patch.Apply(&s.state.Todos[i])
			s.state.Todos[i].UpdatedDate = time.Now().Format(constants.DateFormat)
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteTodo(id string) {
	for i := range s.state.Todos {
		if s.state.Todos[i].ID == id {
			s.state.Todos = append(s.state.Todos[:i], s.state.Todos[i+1:]...)
			s.sync()
			return
		}
	}
}
