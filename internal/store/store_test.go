package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/storage"
)

// memPersister keeps the blob in memory and counts writes.
type memPersister struct {
	data  []byte
	saves int
	fail  bool
}

func (m *memPersister) Load() ([]byte, error) {
	if m.data == nil {
		return nil, storage.ErrNotFound
	}
	return m.data, nil
}

func (m *memPersister) Save(data []byte) error {
	m.saves++
	if m.fail {
		return assert.AnError
	}
	m.data = data
	return nil
}

func (m *memPersister) Close() error { return nil }

var testUser = models.User{
	ID:          "user-1",
	Email:       "user@example.com",
	FullName:    "Test User",
	CreatedDate: "2024-01-01",
}

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	return New(testUser, p), p
}

func TestNewStartsFromDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	state := s.State()

	assert.Equal(t, testUser.ID, state.User.ID)
	assert.Len(t, state.Habits, 3)
	assert.Len(t, state.UserHabits, 2)
	assert.NotEmpty(t, state.Todos)
	assert.Equal(t, models.WaterUnitOz, state.NutritionGoals.WaterUnit)
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 50; i++ {
		s.AddTodo(models.Todo{Title: "x"})
	}

	seen := make(map[string]bool)
	for _, todo := range s.State().Todos {
		require.NotEmpty(t, todo.ID)
		require.False(t, seen[todo.ID], "duplicate id %s", todo.ID)
		seen[todo.ID] = true
	}
}

func TestUpdatePatchesOnlySuppliedFields(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTodo(models.Todo{Title: "write report", Priority: models.PriorityLow, Category: "Work"})

	todos := s.State().Todos
	id := todos[len(todos)-1].ID

	done := true
	s.UpdateTodo(id, models.TodoPatch{Completed: &done})

	var got models.Todo
	for _, todo := range s.State().Todos {
		if todo.ID == id {
			got = todo
		}
	}
	assert.True(t, got.Completed)
	assert.Equal(t, "write report", got.Title)
	assert.Equal(t, models.PriorityLow, got.Priority)
	assert.Equal(t, "Work", got.Category)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.State().Todos

	title := "nope"
	s.UpdateTodo("missing-id", models.TodoPatch{Title: &title})

	assert.Equal(t, before, s.State().Todos)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.State().Todos

	s.DeleteTodo("missing-id")

	assert.Equal(t, before, s.State().Todos)
}

func TestDeleteRemovesRecord(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTodo(models.Todo{Title: "temp"})

	todos := s.State().Todos
	id := todos[len(todos)-1].ID
	s.DeleteTodo(id)

	for _, todo := range s.State().Todos {
		assert.NotEqual(t, id, todo.ID)
	}
}

func TestSubscribeNotifiesOnEveryMutation(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	cancel := s.Subscribe(func() { calls++ })

	s.AddTodo(models.Todo{Title: "a"})
	s.DeleteTodo("missing") // no-op, no notification
	s.AddWaterEntry(models.WaterEntry{Date: "2025-01-01", Amount: 8, Unit: models.WaterUnitOz})
	assert.Equal(t, 2, calls)

	cancel()
	s.AddTodo(models.Todo{Title: "b"})
	assert.Equal(t, 2, calls)
}

func TestEveryMutationPersists(t *testing.T) {
	s, p := newTestStore(t)

	s.AddTodo(models.Todo{Title: "a"})
	s.AddJournalEntry(models.JournalEntry{Title: "day", Date: "2025-01-01", Mood: models.MoodHappy})
	assert.Equal(t, 2, p.saves)
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	p := &memPersister{fail: true}
	s := New(testUser, p)

	assert.NotPanics(t, func() {
		s.AddTodo(models.Todo{Title: "still works"})
	})
	assert.Len(t, s.State().Todos, len(DefaultState(testUser).Todos)+1)
}

func TestRoundTrip(t *testing.T) {
	s, p := newTestStore(t)
	s.AddTodo(models.Todo{Title: "persist me", Priority: models.PriorityHigh})
	s.AddFutureLetter(models.FutureLetter{Title: "hi", Content: "future", UnlockDate: "2030-01-01"})

	restored := New(testUser, p)

	assert.Equal(t, s.State().Todos, restored.State().Todos)
	assert.Equal(t, s.State().FutureLetters, restored.State().FutureLetters)
	assert.Equal(t, s.State().UserHabits, restored.State().UserHabits)
	assert.Equal(t, s.State().NutritionGoals, restored.State().NutritionGoals)
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	p := &memPersister{data: []byte("{not json")}
	s := New(testUser, p)

	assert.Equal(t, DefaultState(testUser).Todos, s.State().Todos)
}

func TestLoadMissingCollectionKeepsDefault(t *testing.T) {
	// Simulate a blob written before gratitudePosts existed: the persisted
	// todos load, the missing collection keeps its default.
	blob, err := json.Marshal(map[string]any{
		"todos": []models.Todo{{ID: "todo-x", Title: "from disk"}},
	})
	require.NoError(t, err)

	s := New(testUser, &memPersister{data: blob})

	require.Len(t, s.State().Todos, 1)
	assert.Equal(t, "from disk", s.State().Todos[0].Title)
	assert.Empty(t, s.State().GratitudePosts)
	// Untouched collections keep their defaults too.
	assert.Len(t, s.State().UserHabits, 2)
}

func TestUpdateSingletonMergesPatch(t *testing.T) {
	s, _ := newTestStore(t)

	water := 80.0
	s.UpdateNutritionGoals(models.NutritionGoalsPatch{DailyWater: &water})

	goals := s.State().NutritionGoals
	assert.Equal(t, 80.0, goals.DailyWater)
	assert.Equal(t, 2000, goals.DailyCalories)

	rate := 25.0
	s.UpdateFinanceProfile(models.FinanceProfilePatch{TaxRate: &rate})
	profile := s.State().FinanceProfile
	assert.Equal(t, 25.0, profile.TaxRate)
	assert.Equal(t, 5000.0, profile.MonthlyIncome)
}

func TestAddDailyReflectionUpsertsByDate(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddDailyReflection(models.DailyReflection{Date: "2025-01-01", Answers: map[string]string{"win": "shipped"}})
	s.AddDailyReflection(models.DailyReflection{Date: "2025-01-01", Answers: map[string]string{"win": "rested"}})
	s.AddDailyReflection(models.DailyReflection{Date: "2025-01-02", Answers: map[string]string{"win": "ran"}})

	reflections := s.State().DailyReflections
	require.Len(t, reflections, 2)
	assert.Equal(t, "rested", reflections[0].Answers["win"])
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTodo(models.Todo{Title: "gone after reset"})

	s.Reset()

	assert.Equal(t, DefaultState(testUser).Todos, s.State().Todos)
}
