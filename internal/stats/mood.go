package stats

import (
	"math"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// AverageMood averages entries over the ordinal mood scale and rounds to the
// nearest mood. Entries with unknown moods count as neutral. Returns neutral
// for an empty slice.
func AverageMood(entries []models.JournalEntry) models.Mood {
	if len(entries) == 0 {
		return models.MoodNeutral
	}

	sum := 0
	for _, e := range entries {
		sum += moodIndex(e.Mood)
	}

	avg := int(math.Round(float64(sum) / float64(len(entries))))
	if avg < 0 || avg >= len(models.MoodScale) {
		return models.MoodNeutral
	}
	return models.MoodScale[avg]
}

func moodIndex(m models.Mood) int {
	for i, v := range models.MoodScale {
		if v == m {
			return i
		}
	}
	// Unknown moods sit in the middle of the scale.
	return len(models.MoodScale) / 2
}
