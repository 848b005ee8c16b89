package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ShivamParikh1/HabitAppV11/internal/cli"
	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	apperrors "github.com/ShivamParikh1/HabitAppV11/internal/errors"
	"github.com/ShivamParikh1/HabitAppV11/internal/logger"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path, SQLite path (.db), or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." default:"~/.config/habitapp/state.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd    `cmd:"" help:"Initialize storage with the default dataset."`
	Doctor   cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Overview cli.OverviewCmd `cmd:"" help:"Show a summary of your day." default:"1"`
	Habit    struct {
		List     cli.HabitListCmd     `cmd:"" help:"List adopted habits." default:"1"`
		Adopt    cli.HabitAdoptCmd    `cmd:"" help:"Adopt a habit from the catalog."`
		Complete cli.HabitCompleteCmd `cmd:"" help:"Mark a habit complete for a day."`
		Undo     cli.HabitUndoCmd     `cmd:"" help:"Undo a habit completion."`
		Rm       cli.HabitRmCmd       `cmd:"" help:"Remove an adopted habit."`
	} `cmd:"" help:"Manage habits and habit tracking."`
	Todo struct {
		Add  cli.TodoAddCmd  `cmd:"" help:"Add a todo."`
		List cli.TodoListCmd `cmd:"" help:"List todos." default:"1"`
		Done cli.TodoDoneCmd `cmd:"" help:"Complete a todo."`
		Rm   cli.TodoRmCmd   `cmd:"" help:"Remove a todo."`
	} `cmd:"" help:"Manage todos."`
	Journal struct {
		Add  cli.JournalAddCmd  `cmd:"" help:"Add a journal entry."`
		List cli.JournalListCmd `cmd:"" help:"List journal entries." default:"1"`
	} `cmd:"" help:"Manage journal entries."`
	Goal struct {
		List   cli.GoalListCmd   `cmd:"" help:"List goals." default:"1"`
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a goal."`
		Toggle cli.GoalToggleCmd `cmd:"" help:"Toggle a goal milestone."`
	} `cmd:"" help:"Manage goals and milestones."`
	Calendar struct {
		Add   cli.CalendarAddCmd   `cmd:"" help:"Add a calendar event."`
		Today cli.CalendarTodayCmd `cmd:"" help:"Show a day's events, recurrence included." default:"1"`
		Rm    cli.CalendarRmCmd    `cmd:"" help:"Remove a calendar event."`
	} `cmd:"" help:"Manage calendar events."`
	Water     cli.WaterAddCmd      `cmd:"" help:"Log water intake."`
	Meal      cli.MealAddCmd       `cmd:"" help:"Log a meal."`
	Nutrition cli.NutritionTodayCmd `cmd:"" help:"Show today's nutrition totals."`
	Finance   struct {
		Add     cli.FinanceAddCmd     `cmd:"" help:"Record a transaction."`
		Summary cli.FinanceSummaryCmd `cmd:"" help:"Show the month's summary and budget split." default:"1"`
	} `cmd:"" help:"Manage finances."`
	Vault struct {
		Add  cli.VaultAddCmd  `cmd:"" help:"Store a password (obfuscated)."`
		Show cli.VaultShowCmd `cmd:"" help:"Show vault entries or reveal one password." default:"1"`
		Rm   cli.VaultRmCmd   `cmd:"" help:"Remove a vault entry."`
	} `cmd:"" help:"Manage the password vault."`
	Letter struct {
		Add  cli.LetterAddCmd  `cmd:"" help:"Write a letter to your future self."`
		List cli.LetterListCmd `cmd:"" help:"List locked and unlocked letters." default:"1"`
	} `cmd:"" help:"Manage letters to your future self."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Migrate cli.MigrateCmd `cmd:"" help:"Copy the state to another storage backend."`
}

// mockUser stands in for the authentication collaborator: it supplies a fixed
// user record at startup.
var mockUser = models.User{
	ID:                         "user-1",
	Email:                      "user@example.com",
	FullName:                   "John Doe",
	CreatedDate:                "2024-01-01",
	Level:                      5,
	XP:                         1250,
	FinanceOnboardingCompleted: true,
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity hub: habits, todos, journal, finance, and more"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	persister, statePath, err := cli.NewPersister(expandPath(CLI.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer persister.Close()

	configDir := ""
	if statePath != "" || strings.HasSuffix(CLI.Config, ".db") {
		configDir = filepath.Dir(expandPath(CLI.Config))
	} else {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config", constants.AppName)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:     store.New(mockUser, persister),
		Persister: persister,
		StatePath: statePath,
	}

	if err := ctx.Run(appCtx); err != nil {
		persister.Close()
		apperrors.Fatal(err)
	}
}
