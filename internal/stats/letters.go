package stats

import (
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// PartitionLetters splits letters into locked and unlocked sets as of now. A
// letter unlocks once its unlock date is reached; letters with unparseable
// dates stay locked.
func PartitionLetters(letters []models.FutureLetter, now time.Time) (locked, unlocked []models.FutureLetter) {
	today := now.Format(constants.DateFormat)
	for _, l := range letters {
		if _, err := time.Parse(constants.DateFormat, l.UnlockDate); err != nil {
			locked = append(locked, l)
			continue
		}
		if l.UnlockDate <= today {
			unlocked = append(unlocked, l)
		} else {
			locked = append(locked, l)
		}
	}
	return locked, unlocked
}
