package models

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

type WaterUnit string

const (
	WaterUnitOz WaterUnit = "oz"
	WaterUnitMl WaterUnit = "ml"
)

type MealEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MealType MealType `json:"meal_type"`
	Date     string   `json:"date"` // YYYY-MM-DD format
	Time     string   `json:"time,omitempty"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"` // grams
	Carbs    int      `json:"carbs"`   // grams
	Fat      int      `json:"fat"`     // grams
	UserID   string   `json:"user_id"`
}

type MealEntryPatch struct {
	Name     *string   `json:"name,omitempty"`
	MealType *MealType `json:"meal_type,omitempty"`
	Date     *string   `json:"date,omitempty"`
	Time     *string   `json:"time,omitempty"`
	Calories *int      `json:"calories,omitempty"`
	Protein  *int      `json:"protein,omitempty"`
	Carbs    *int      `json:"carbs,omitempty"`
	Fat      *int      `json:"fat,omitempty"`
}

func (p MealEntryPatch) Apply(m *MealEntry) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.MealType != nil {
		m.MealType = *p.MealType
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.Calories != nil {
		m.Calories = *p.Calories
	}
	if p.Protein != nil {
		m.Protein = *p.Protein
	}
	if p.Carbs != nil {
		m.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		m.Fat = *p.Fat
	}
}

type WaterEntry struct {
	ID     string    `json:"id"`
	Date   string    `json:"date"` // YYYY-MM-DD format
	Time   string    `json:"time,omitempty"`
	Amount float64   `json:"amount"`
	Unit   WaterUnit `json:"unit"`
	UserID string    `json:"user_id"`
}

// NutritionGoals is a per-user singleton holding daily targets.
type NutritionGoals struct {
	ID            string    `json:"id"`
	DailyCalories int       `json:"daily_calories"`
	DailyProtein  int       `json:"daily_protein"`
	DailyCarbs    int       `json:"daily_carbs"`
	DailyFat      int       `json:"daily_fat"`
	DailyWater    float64   `json:"daily_water"`
	WaterUnit     WaterUnit `json:"water_unit"`
	UserID        string    `json:"user_id"`
}

type NutritionGoalsPatch struct {
	DailyCalories *int       `json:"daily_calories,omitempty"`
	DailyProtein  *int       `json:"daily_protein,omitempty"`
	DailyCarbs    *int       `json:"daily_carbs,omitempty"`
	DailyFat      *int       `json:"daily_fat,omitempty"`
	DailyWater    *float64   `json:"daily_water,omitempty"`
	WaterUnit     *WaterUnit `json:"water_unit,omitempty"`
}

func (p NutritionGoalsPatch) Apply(g *NutritionGoals) {
	if p.DailyCalories != nil {
		g.DailyCalories = *p.DailyCalories
	}
	if p.DailyProtein != nil {
		g.DailyProtein = *p.DailyProtein
	}
	if p.DailyCarbs != nil {
		g.DailyCarbs = *p.DailyCarbs
	}
	if p.DailyFat != nil {
		g.DailyFat = *p.DailyFat
	}
	if p.DailyWater != nil {
		g.DailyWater = *p.DailyWater
	}
	if p.WaterUnit != nil {
		g.WaterUnit = *p.WaterUnit
	}
}
