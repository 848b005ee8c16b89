package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func addGoalWithMilestones(t *testing.T, s *Store, n int) models.Goal {
	t.Helper()
	ms := make([]models.Milestone, n)
	for i := range ms {
		ms[i] = models.Milestone{Title: "step"}
	}
	s.AddGoal(models.Goal{
		Title:      "Run a marathon",
		Status:     models.GoalStatusActive,
		Milestones: ms,
	})
	goals := s.State().Goals
	return goals[len(goals)-1]
}

func findGoal(t *testing.T, s *Store, id string) models.Goal {
	t.Helper()
	for _, g := range s.State().Goals {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("goal %s not found", id)
	return models.Goal{}
}

func TestAddGoalDerivesProgressFromMilestones(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddGoal(models.Goal{
		Title:  "Read more",
		Status: models.GoalStatusActive,
		Milestones: []models.Milestone{
			{Title: "one", Completed: true},
			{Title: "two"},
			{Title: "three"},
		},
	})

	goals := s.State().Goals
	assert.Equal(t, 33, goals[len(goals)-1].Progress)
}

func TestToggleMilestoneRecomputesProgress(t *testing.T) {
	s, _ := newTestStore(t)
	g := addGoalWithMilestones(t, s, 3)
	require.Equal(t, 0, g.Progress)

	s.ToggleGoalMilestone(g.ID, 0)
	assert.Equal(t, 33, findGoal(t, s, g.ID).Progress)

	s.ToggleGoalMilestone(g.ID, 1)
	assert.Equal(t, 67, findGoal(t, s, g.ID).Progress)

	s.ToggleGoalMilestone(g.ID, 2)
	assert.Equal(t, 100, findGoal(t, s, g.ID).Progress)

	// Toggling back off recomputes downward too.
	s.ToggleGoalMilestone(g.ID, 1)
	assert.Equal(t, 67, findGoal(t, s, g.ID).Progress)
}

func TestToggleMilestoneOutOfRangeIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	g := addGoalWithMilestones(t, s, 2)

	s.ToggleGoalMilestone(g.ID, -1)
	s.ToggleGoalMilestone(g.ID, 2)

	got := findGoal(t, s, g.ID)
	assert.Equal(t, 0, got.Progress)
	assert.False(t, got.Milestones[0].Completed)
	assert.False(t, got.Milestones[1].Completed)
}

func TestUpdateGoalMilestonesRecomputesProgress(t *testing.T) {
	s, _ := newTestStore(t)
	g := addGoalWithMilestones(t, s, 4)

	ms := []models.Milestone{
		{Title: "a", Completed: true},
		{Title: "b", Completed: true},
	}
	s.UpdateGoal(g.ID, models.GoalPatch{Milestones: &ms})

	assert.Equal(t, 100, findGoal(t, s, g.ID).Progress)
}

func TestUpdateGoalManualProgressWithoutMilestones(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddGoal(models.Goal{Title: "Save money", Status: models.GoalStatusActive})
	goals := s.State().Goals
	g := goals[len(goals)-1]

	p := 40
	s.UpdateGoal(g.ID, models.GoalPatch{Progress: &p})

	assert.Equal(t, 40, findGoal(t, s, g.ID).Progress)
}
