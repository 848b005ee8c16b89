package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func entriesWithMoods(moods ...models.Mood) []models.JournalEntry {
	out := make([]models.JournalEntry, len(moods))
	for i, m := range moods {
		out[i] = models.JournalEntry{Mood: m}
	}
	return out
}

func TestAverageMoodEmptyIsNeutral(t *testing.T) {
	assert.Equal(t, models.MoodNeutral, AverageMood(nil))
}

func TestAverageMoodSingleEntry(t *testing.T) {
	got := AverageMood(entriesWithMoods(models.MoodVeryHappy))
	assert.Equal(t, models.MoodVeryHappy, got)
}

func TestAverageMoodRoundsToNearest(t *testing.T) {
	// very_happy (0) and neutral (2) average to happy (1).
	got := AverageMood(entriesWithMoods(models.MoodVeryHappy, models.MoodNeutral))
	assert.Equal(t, models.MoodHappy, got)

	// happy (1), sad (3), very_sad (4) average to 8/3 ~= 2.67 -> sad (3).
	got = AverageMood(entriesWithMoods(models.MoodHappy, models.MoodSad, models.MoodVerySad))
	assert.Equal(t, models.MoodSad, got)
}

func TestAverageMoodUnknownCountsAsNeutral(t *testing.T) {
	got := AverageMood(entriesWithMoods(models.Mood("ecstatic"), models.Mood("ecstatic")))
	assert.Equal(t, models.MoodNeutral, got)
}
