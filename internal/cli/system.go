package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShivamParikh1/HabitAppV11/internal/keyring"
)

type InitCmd struct {
	Force bool `help:"Overwrite existing state with the default dataset."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if !c.Force && ctx.StatePath != "" {
		if _, err := os.Stat(ctx.StatePath); err == nil {
			return fmt.Errorf("storage already initialized at %s (use --force to reset)", ctx.StatePath)
		}
	}

	if c.Force {
		ctx.Store.Reset()
	} else {
		ctx.Store.Flush()
	}
	fmt.Println("Initialized storage with the default dataset.")
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println(titleStyle.Render("Health checks"))

	if ctx.StatePath != "" {
		if data, err := os.ReadFile(ctx.StatePath); err != nil {
			fmt.Println(warnStyle.Render("state file: ") + "missing (defaults in use)")
		} else if !json.Valid(data) {
			fmt.Println(warnStyle.Render("state file: ") + "unparseable (defaults in use)")
		} else {
			fmt.Println(doneStyle.Render("state file: ") + "ok")
		}
	} else {
		fmt.Println("state file: database-backed")
	}

	if keyring.IsAvailable() {
		fmt.Println(doneStyle.Render("os keyring: ") + "available")
	} else {
		fmt.Println(warnStyle.Render("os keyring: ") + "unavailable (vault commands will fail)")
	}

	state := ctx.Store.State()
	fmt.Printf("collections: %d habits, %d todos, %d journal entries\n",
		len(state.UserHabits), len(state.Todos), len(state.JournalEntries))
	return nil
}
