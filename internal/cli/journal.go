package cli

import (
	"fmt"
	"strings"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Content string `arg:"" help:"Entry body."`
	Mood    string `short:"m" help:"Mood (very_happy|happy|neutral|sad|very_sad)." default:"neutral"`
	Tags    string `short:"t" help:"Comma-separated tags."`
}

func (c *JournalAddCmd) Validate() error {
	for _, m := range models.MoodScale {
		if models.Mood(c.Mood) == m {
			return nil
		}
	}
	return fmt.Errorf("unknown mood: %s", c.Mood)
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	var tags []string
	if c.Tags != "" {
		for _, t := range strings.Split(c.Tags, ",") {
			tags = append(tags, strings.TrimSpace(t))
		}
	}

	ctx.PerformAutomaticBackup()
	ctx.Store.AddJournalEntry(models.JournalEntry{
		Title:   c.Title,
		Content: c.Content,
		Date:    Today(),
		Mood:    models.Mood(c.Mood),
		Tags:    tags,
	})
	fmt.Printf("Added journal entry: %s\n", c.Title)
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Store.State().JournalEntries
	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Journal"))
	for _, e := range entries {
		fmt.Printf("%s  %s %s\n", e.Date, e.Title, faintStyle.Render("("+string(e.Mood)+")"))
	}
	fmt.Printf("\nAverage mood: %s\n", stats.AverageMood(entries))
	return nil
}
