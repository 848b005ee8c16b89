package cli

import (
	"fmt"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	today := Today()

	if len(state.UserHabits) == 0 {
		fmt.Println("No habits adopted yet. Run 'habitapp habit adopt' to start one.")
		return nil
	}

	fmt.Println(titleStyle.Render("Your habits"))
	for _, uh := range state.UserHabits {
		title := uh.HabitID
		for _, h := range state.Habits {
			if h.ID == uh.HabitID {
				title = fmt.Sprintf("%s %s", h.Icon, h.Title)
				break
			}
		}

		mark := " "
		if stats.CompletedOn(state.HabitLogs, uh.ID, today) {
			mark = doneStyle.Render("✓")
		}
		fmt.Printf("[%s] %s  %s\n", mark, title,
			faintStyle.Render(fmt.Sprintf("(%s, %d day streak, best %d, %d total)",
				uh.ID, uh.StreakCurrent, uh.StreakLongest, uh.TotalCompletions)))
	}
	return nil
}

type HabitAdoptCmd struct {
	HabitID   string `arg:"" help:"Catalog habit id to adopt."`
	Frequency string `short:"f" help:"Target frequency." default:"daily"`
	Reminder  string `short:"r" help:"Reminder time (HH:MM)."`
}

func (c *HabitAdoptCmd) Run(ctx *Context) error {
	state := ctx.Store.State()

	found := false
	for _, h := range state.Habits {
		if h.ID == c.HabitID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown catalog habit: %s", c.HabitID)
	}

	ctx.PerformAutomaticBackup()
	ctx.Store.AddUserHabit(models.UserHabit{
		HabitID:         c.HabitID,
		UserID:          state.User.ID,
		Status:          models.HabitStatusActive,
		StartDate:       Today(),
		TargetFrequency: c.Frequency,
		ReminderEnabled: c.Reminder != "",
		ReminderTime:    c.Reminder,
	})
	fmt.Printf("Adopted habit %s\n", c.HabitID)
	return nil
}

type HabitCompleteCmd struct {
	ID   string `arg:"" help:"User habit id."`
	Date string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitCompleteCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}
	ctx.PerformAutomaticBackup()
	ctx.Store.CompleteHabit(c.ID, date)
	fmt.Printf("Marked %s complete for %s\n", c.ID, date)
	return nil
}

type HabitUndoCmd struct {
	ID   string `arg:"" help:"User habit id."`
	Date string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *HabitUndoCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}
	ctx.PerformAutomaticBackup()
	ctx.Store.UndoHabit(c.ID, date)
	fmt.Printf("Undid completion of %s for %s\n", c.ID, date)
	return nil
}

type HabitRmCmd struct {
	ID string `arg:"" help:"User habit id."`
}

func (c *HabitRmCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.DeleteUserHabit(c.ID)
	fmt.Printf("Removed habit %s\n", c.ID)
	return nil
}
