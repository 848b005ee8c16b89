package cli

import (
	"fmt"
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type LetterAddCmd struct {
	Title      string `arg:"" help:"Letter title."`
	Content    string `arg:"" help:"Letter body."`
	UnlockDate string `arg:"" help:"Unlock date (YYYY-MM-DD)."`
}

func (c *LetterAddCmd) Validate() error {
	if _, err := time.Parse(constants.DateFormat, c.UnlockDate); err != nil {
		return fmt.Errorf("invalid unlock date: %s", c.UnlockDate)
	}
	return nil
}

func (c *LetterAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.AddFutureLetter(models.FutureLetter{
		Title:      c.Title,
		Content:    c.Content,
		UnlockDate: c.UnlockDate,
		UserID:     ctx.Store.State().User.ID,
	})
	fmt.Printf("Sealed letter %q until %s\n", c.Title, c.UnlockDate)
	return nil
}

type LetterListCmd struct{}

func (c *LetterListCmd) Run(ctx *Context) error {
	letters := ctx.Store.State().FutureLetters
	locked, unlocked := stats.PartitionLetters(letters, time.Now())

	fmt.Println(titleStyle.Render("Unlocked letters"))
	if len(unlocked) == 0 {
		fmt.Println(faintStyle.Render("none yet"))
	}
	for _, l := range unlocked {
		fmt.Printf("%s (%s)\n%s\n\n", l.Title, l.UnlockDate, l.Content)
	}

	fmt.Println(titleStyle.Render("Locked letters"))
	if len(locked) == 0 {
		fmt.Println(faintStyle.Render("none"))
	}
	for _, l := range locked {
		fmt.Printf("%s %s\n", l.Title, faintStyle.Render("unlocks "+l.UnlockDate))
	}
	return nil
}
