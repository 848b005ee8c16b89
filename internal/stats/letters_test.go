package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func TestPartitionLetters(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	letters := []models.FutureLetter{
		{ID: "past", UnlockDate: "2025-01-01"},
		{ID: "today", UnlockDate: "2025-06-15"},
		{ID: "future", UnlockDate: "2026-06-15"},
		{ID: "garbage", UnlockDate: "someday"},
	}

	locked, unlocked := PartitionLetters(letters, now)

	require.Len(t, unlocked, 2)
	assert.Equal(t, "past", unlocked[0].ID)
	assert.Equal(t, "today", unlocked[1].ID)

	require.Len(t, locked, 2)
	assert.Equal(t, "future", locked[0].ID)
	assert.Equal(t, "garbage", locked[1].ID)
}

func TestPartitionLettersEmpty(t *testing.T) {
	locked, unlocked := PartitionLetters(nil, time.Now())
	assert.Empty(t, locked)
	assert.Empty(t, unlocked)
}
