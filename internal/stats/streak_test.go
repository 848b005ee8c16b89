package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func logFor(habitID, date string, completed bool) models.HabitLog {
	return models.HabitLog{UserHabitID: habitID, Date: date, Completed: completed}
}

func TestStreakFromLogsConsecutiveDays(t *testing.T) {
	logs := []models.HabitLog{
		logFor("h1", "2025-03-01", true),
		logFor("h1", "2025-03-02", true),
		logFor("h1", "2025-03-03", true),
	}

	assert.Equal(t, 3, StreakFromLogs(logs, "h1", "2025-03-03"))
}

func TestStreakFromLogsGapBreaksStreak(t *testing.T) {
	logs := []models.HabitLog{
		logFor("h1", "2025-03-01", true),
		// 2025-03-02 missing
		logFor("h1", "2025-03-03", true),
		logFor("h1", "2025-03-04", true),
	}

	assert.Equal(t, 2, StreakFromLogs(logs, "h1", "2025-03-04"))
}

func TestStreakFromLogsAsOfNotYetCompleted(t *testing.T) {
	logs := []models.HabitLog{
		logFor("h1", "2025-03-02", true),
		logFor("h1", "2025-03-03", true),
	}

	// Today not done yet: the streak ending yesterday still counts.
	assert.Equal(t, 2, StreakFromLogs(logs, "h1", "2025-03-04"))
}

func TestStreakFromLogsIgnoresOtherHabitsAndUndone(t *testing.T) {
	logs := []models.HabitLog{
		logFor("h1", "2025-03-03", true),
		logFor("h1", "2025-03-02", false),
		logFor("h2", "2025-03-02", true),
	}

	assert.Equal(t, 1, StreakFromLogs(logs, "h1", "2025-03-03"))
}

func TestStreakFromLogsBadDate(t *testing.T) {
	assert.Equal(t, 0, StreakFromLogs(nil, "h1", "not-a-date"))
}

func TestCompletionCount(t *testing.T) {
	logs := []models.HabitLog{
		logFor("h1", "2025-03-01", true),
		logFor("h1", "2025-03-02", false),
		logFor("h1", "2025-03-03", true),
		logFor("h2", "2025-03-03", true),
	}

	assert.Equal(t, 2, CompletionCount(logs, "h1"))
}

func TestLongestStreaksAcrossHabits(t *testing.T) {
	habits := []models.UserHabit{
		{StreakCurrent: 3, StreakLongest: 10},
		{StreakCurrent: 7, StreakLongest: 7},
	}

	assert.Equal(t, 7, LongestCurrentStreak(habits))
	assert.Equal(t, 10, LongestEverStreak(habits))
	assert.Equal(t, 0, LongestCurrentStreak(nil))
}
