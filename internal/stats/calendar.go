package stats

import (
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// EventOccursOn reports whether an event falls on date, expanding its
// recurrence rule from the start date. Events with unparseable dates never
// occur.
func EventOccursOn(event models.CalendarEvent, date string) bool {
	start, err := time.Parse(constants.DateFormat, event.StartDate)
	if err != nil {
		return false
	}
	day, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return false
	}
	if day.Before(start) {
		return false
	}

	switch event.Recurring {
	case models.RecurringDaily:
		return true
	case models.RecurringWeekly:
		return day.Weekday() == start.Weekday()
	case models.RecurringMonthly:
		return day.Day() == start.Day()
	default:
		// One-off events occur on their start date only.
		return event.StartDate == date
	}
}

// EventsOn filters events to those occurring on date, recurrence included.
func EventsOn(events []models.CalendarEvent, date string) []models.CalendarEvent {
	var out []models.CalendarEvent
	for _, e := range events {
		if EventOccursOn(e, date) {
			out = append(out, e)
		}
	}
	return out
}
