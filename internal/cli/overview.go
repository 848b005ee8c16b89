package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type OverviewCmd struct{}

func (c *OverviewCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	today := Today()

	completedToday := 0
	for _, uh := range state.UserHabits {
		if stats.CompletedOn(state.HabitLogs, uh.ID, today) {
			completedToday++
		}
	}

	openTodos := 0
	for _, t := range state.Todos {
		if !t.Completed {
			openTodos++
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	body := fmt.Sprintf(
		"%s\n\nHabits:  %d/%d done today, best streak %d\nTodos:   %d open\nEvents:  %d today\nJournal: %d entries, average mood %s\nGoals:   %d tracked\nLevel:   %d (%d XP)",
		titleStyle.Render("Hello, "+state.User.FullName),
		completedToday, len(state.UserHabits),
		stats.LongestEverStreak(state.UserHabits),
		openTodos,
		len(stats.EventsOn(state.CalendarEvents, today)),
		len(state.JournalEntries), stats.AverageMood(state.JournalEntries),
		len(state.Goals),
		state.User.Level, state.User.XP,
	)

	fmt.Println(box.Render(body))
	return nil
}
