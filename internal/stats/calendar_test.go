package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

func TestEventOccursOn(t *testing.T) {
	cases := []struct {
		name      string
		recurring models.Recurring
		start     string
		date      string
		want      bool
	}{
		{"one-off on its date", models.RecurringNone, "2025-05-10", "2025-05-10", true},
		{"one-off other date", models.RecurringNone, "2025-05-10", "2025-05-11", false},
		{"daily after start", models.RecurringDaily, "2025-05-10", "2025-07-01", true},
		{"daily before start", models.RecurringDaily, "2025-05-10", "2025-05-09", false},
		{"weekly same weekday", models.RecurringWeekly, "2025-05-05", "2025-05-12", true}, // both Mondays
		{"weekly other weekday", models.RecurringWeekly, "2025-05-05", "2025-05-13", false},
		{"monthly same day", models.RecurringMonthly, "2025-01-15", "2025-06-15", true},
		{"monthly other day", models.RecurringMonthly, "2025-01-15", "2025-06-16", false},
		{"bad start date", models.RecurringDaily, "someday", "2025-06-15", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := models.CalendarEvent{StartDate: tc.start, Recurring: tc.recurring}
			assert.Equal(t, tc.want, EventOccursOn(e, tc.date))
		})
	}
}

func TestEventsOn(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "standup", StartDate: "2025-05-05", Recurring: models.RecurringDaily},
		{ID: "dentist", StartDate: "2025-05-12", Recurring: models.RecurringNone},
		{ID: "rent", StartDate: "2025-01-01", Recurring: models.RecurringMonthly},
	}

	got := EventsOn(events, "2025-05-12")

	assert.Len(t, got, 2)
	assert.Equal(t, "standup", got[0].ID)
	assert.Equal(t, "dentist", got[1].ID)
}
