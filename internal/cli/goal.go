package cli

import (
	"fmt"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals := ctx.Store.State().Goals
	if len(goals) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Goals"))
	for _, g := range goals {
		fmt.Printf("%s  %d%% %s %s\n", g.Title, g.Progress,
			faintStyle.Render("("+string(g.Status)+")"), faintStyle.Render(g.ID))
		for i, m := range g.Milestones {
			mark := " "
			if m.Completed {
				mark = doneStyle.Render("✓")
			}
			fmt.Printf("  [%s] %d. %s\n", mark, i, m.Title)
		}
	}
	return nil
}

type GoalAddCmd struct {
	Title      string `arg:"" help:"Goal title."`
	Category   string `short:"c" help:"Category label."`
	TargetDate string `short:"d" help:"Target date (YYYY-MM-DD)."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.AddGoal(models.Goal{
		Title:      c.Title,
		Category:   c.Category,
		TargetDate: c.TargetDate,
		Status:     models.GoalStatusActive,
	})
	fmt.Printf("Added goal: %s\n", c.Title)
	return nil
}

type GoalToggleCmd struct {
	ID    string `arg:"" help:"Goal id."`
	Index int    `arg:"" help:"Milestone index."`
}

func (c *GoalToggleCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.ToggleGoalMilestone(c.ID, c.Index)
	fmt.Printf("Toggled milestone %d of goal %s\n", c.Index, c.ID)
	return nil
}
