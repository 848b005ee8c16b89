package cli

import (
	"fmt"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

type TodoAddCmd struct {
	Title    string `arg:"" help:"Todo title."`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Priority string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Category string `short:"c" help:"Category label."`
}

func (c *TodoAddCmd) Validate() error {
	switch models.Priority(c.Priority) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	}
	return fmt.Errorf("priority must be low, medium, or high")
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.AddTodo(models.Todo{
		Title:    c.Title,
		DueDate:  c.Due,
		Priority: models.Priority(c.Priority),
		Category: c.Category,
	})
	fmt.Printf("Added todo: %s\n", c.Title)
	return nil
}

type TodoListCmd struct {
	All bool `short:"a" help:"Include completed todos."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	todos := ctx.Store.State().Todos

	shown := 0
	fmt.Println(titleStyle.Render("Todos"))
	for _, t := range todos {
		if t.Completed && !c.All {
			continue
		}
		shown++

		mark := " "
		if t.Completed {
			mark = doneStyle.Render("✓")
		}
		due := ""
		if t.DueDate != "" {
			due = " due " + t.DueDate
		}
		fmt.Printf("[%s] %s%s  %s\n", mark, t.Title, due,
			faintStyle.Render(fmt.Sprintf("(%s, %s)", t.ID, t.Priority)))
	}
	if shown == 0 {
		fmt.Println(faintStyle.Render("nothing to do"))
	}
	return nil
}

type TodoDoneCmd struct {
	ID string `arg:"" help:"Todo id."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	done := true
	ctx.PerformAutomaticBackup()
	ctx.Store.UpdateTodo(c.ID, models.TodoPatch{Completed: &done})
	fmt.Printf("Completed todo %s\n", c.ID)
	return nil
}

type TodoRmCmd struct {
	ID string `arg:"" help:"Todo id."`
}

func (c *TodoRmCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.DeleteTodo(c.ID)
	fmt.Printf("Removed todo %s\n", c.ID)
	return nil
}
