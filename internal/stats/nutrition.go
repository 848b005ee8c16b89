// Package stats holds read-side projections over a state snapshot. Every
// function is pure: it takes data, returns a view-ready result, and never
// mutates or persists anything.
package stats

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// DayTotals aggregates one day's meal entries.
type DayTotals struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// NutritionTotals sums the nutrient quantities of all meals logged on date.
func NutritionTotals(meals []models.MealEntry, date string) DayTotals {
	var t DayTotals
	for _, m := range meals {
		if m.Date != date {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// WaterTotal sums the day's water entries expressed in goalUnit, converting
// between ounces and milliliters where an entry's unit differs.
func WaterTotal(entries []models.WaterEntry, date string, goalUnit models.WaterUnit) float64 {
	var total float64
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		amount := e.Amount
		if e.Unit == models.WaterUnitMl && goalUnit == models.WaterUnitOz {
			amount *= constants.OzPerMl
		} else if e.Unit == models.WaterUnitOz && goalUnit == models.WaterUnitMl {
			amount *= constants.MlPerOz
		}
		total += amount
	}
	return total
}
