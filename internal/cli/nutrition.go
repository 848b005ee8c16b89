package cli

import (
	"fmt"
	"math"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type WaterAddCmd struct {
	Amount float64 `arg:"" help:"Amount of water."`
	Unit   string  `short:"u" help:"Unit (oz|ml)." default:"oz"`
}

func (c *WaterAddCmd) Validate() error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	switch models.WaterUnit(c.Unit) {
	case models.WaterUnitOz, models.WaterUnitMl:
		return nil
	}
	return fmt.Errorf("unit must be oz or ml")
}

func (c *WaterAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.AddWaterEntry(models.WaterEntry{
		Date:   Today(),
		Amount: c.Amount,
		Unit:   models.WaterUnit(c.Unit),
		UserID: ctx.Store.State().User.ID,
	})
	fmt.Printf("Logged %.0f %s of water\n", c.Amount, c.Unit)
	return nil
}

type MealAddCmd struct {
	Name     string `arg:"" help:"Meal name."`
	Type     string `short:"t" help:"Meal type (breakfast|lunch|dinner|snack)." default:"snack"`
	Calories int    `short:"k" help:"Calories."`
	Protein  int    `short:"p" help:"Protein (g)."`
	Carbs    int    `short:"c" help:"Carbs (g)."`
	Fat      int    `short:"f" help:"Fat (g)."`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.AddMealEntry(models.MealEntry{
		Name:     c.Name,
		MealType: models.MealType(c.Type),
		Date:     Today(),
		Calories: c.Calories,
		Protein:  c.Protein,
		Carbs:    c.Carbs,
		Fat:      c.Fat,
		UserID:   ctx.Store.State().User.ID,
	})
	fmt.Printf("Logged %s (%d kcal)\n", c.Name, c.Calories)
	return nil
}

type NutritionTodayCmd struct{}

func (c *NutritionTodayCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	today := Today()
	goals := state.NutritionGoals

	totals := stats.NutritionTotals(state.MealEntries, today)
	water := stats.WaterTotal(state.WaterEntries, today, goals.WaterUnit)

	fmt.Println(titleStyle.Render("Nutrition for " + today))
	fmt.Printf("Calories: %d / %d\n", totals.Calories, goals.DailyCalories)
	fmt.Printf("Protein:  %dg / %dg\n", totals.Protein, goals.DailyProtein)
	fmt.Printf("Carbs:    %dg / %dg\n", totals.Carbs, goals.DailyCarbs)
	fmt.Printf("Fat:      %dg / %dg\n", totals.Fat, goals.DailyFat)
	fmt.Printf("Water:    %d / %.0f %s\n", int(math.Round(water)), goals.DailyWater, goals.WaterUnit)
	return nil
}
