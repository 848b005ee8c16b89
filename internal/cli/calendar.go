package cli

import (
	"fmt"
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type CalendarAddCmd struct {
	Title     string `arg:"" help:"Event title."`
	Date      string `short:"d" help:"Start date (YYYY-MM-DD), defaults to today."`
	Time      string `short:"t" help:"Start time (HH:MM)."`
	Recurring string `short:"r" help:"Recurrence (none|daily|weekly|monthly)." default:"none"`
	Location  string `short:"l" help:"Location."`
}

func (c *CalendarAddCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
	}
	if c.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, c.Time); err != nil {
			return fmt.Errorf("time must be HH:MM")
		}
	}
	switch models.Recurring(c.Recurring) {
	case models.RecurringNone, models.RecurringDaily, models.RecurringWeekly, models.RecurringMonthly:
		return nil
	}
	return fmt.Errorf("recurring must be none, daily, weekly, or monthly")
}

func (c *CalendarAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	date := c.Date
	if date == "" {
		date = Today()
	}
	ctx.Store.AddCalendarEvent(models.CalendarEvent{
		Title:     c.Title,
		StartDate: date,
		StartTime: c.Time,
		Recurring: models.Recurring(c.Recurring),
		Location:  c.Location,
		UserID:    ctx.Store.State().User.ID,
	})
	fmt.Printf("Added event: %s on %s\n", c.Title, date)
	return nil
}

type CalendarTodayCmd struct {
	Date string `short:"d" help:"Show another day instead of today (YYYY-MM-DD)."`
}

func (c *CalendarTodayCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}

	events := stats.EventsOn(ctx.Store.State().CalendarEvents, date)
	if len(events) == 0 {
		fmt.Printf("No events on %s.\n", date)
		return nil
	}

	fmt.Println(headerStyle.Render("Events on " + date))
	for _, e := range events {
		line := e.Title
		if e.StartTime != "" {
			line = e.StartTime + "  " + line
		}
		if e.Location != "" {
			line += faintStyle.Render(" @ " + e.Location)
		}
		if e.Recurring != "" && e.Recurring != models.RecurringNone {
			line += faintStyle.Render(" (" + string(e.Recurring) + ")")
		}
		fmt.Println("  " + line)
	}
	return nil
}

type CalendarRmCmd struct {
	ID string `arg:"" help:"Event id."`
}

func (c *CalendarRmCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.DeleteCalendarEvent(c.ID)
	fmt.Println("Removed event (if it existed).")
	return nil
}
