package stats

import (
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// CompletedOn reports whether the habit has a completed log for date.
func CompletedOn(logs []models.HabitLog, userHabitID, date string) bool {
	for _, l := range logs {
		if l.UserHabitID == userHabitID && l.Date == date && l.Completed {
			return true
		}
	}
	return false
}

// CompletionCount counts the habit's completed logs.
func CompletionCount(logs []models.HabitLog, userHabitID string) int {
	n := 0
	for _, l := range logs {
		if l.UserHabitID == userHabitID && l.Completed {
			n++
		}
	}
	return n
}

// StreakFromLogs recomputes the habit's current streak from its logs: the
// number of consecutive completed days ending on asOf, or on the day before
// asOf when asOf itself is not yet completed.
func StreakFromLogs(logs []models.HabitLog, userHabitID, asOf string) int {
	day, err := time.Parse(constants.DateFormat, asOf)
	if err != nil {
		return 0
	}

	if !CompletedOn(logs, userHabitID, asOf) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for CompletedOn(logs, userHabitID, day.Format(constants.DateFormat)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestCurrentStreak returns the best streak_current across habits, the
// headline number on the home view.
func LongestCurrentStreak(habits []models.UserHabit) int {
	best := 0
	for _, h := range habits {
		if h.StreakCurrent > best {
			best = h.StreakCurrent
		}
	}
	return best
}

// LongestEverStreak returns the best streak_longest across habits.
func LongestEverStreak(habits []models.UserHabit) int {
	best := 0
	for _, h := range habits {
		if h.StreakLongest > best {
			best = h.StreakLongest
		}
	}
	return best
}
