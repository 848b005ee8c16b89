package cli

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShivamParikh1/HabitAppV11/internal/backup"
	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/logger"
	"github.com/ShivamParikh1/HabitAppV11/internal/storage"
	"github.com/ShivamParikh1/HabitAppV11/internal/store"
)

// Context carries the store and paths into every command's Run method.
type Context struct {
	Store *store.Store

	// Persister is the active storage backend, used by migrate.
	Persister storage.Persister

	// StatePath is the JSON state file path, empty when state lives in a
	// database.
	StatePath string
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.StatePath == "" {
		return
	}
	mgr := backup.NewManager(c.StatePath)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current date in the application's date format.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// CurrentMonth returns the current month as YYYY-MM.
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// Shared output styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)
