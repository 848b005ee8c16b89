package store

import (
	"encoding/json"
	"time"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// State is the aggregate record holding every collection and singleton. The
// JSON field names are the persisted top-level keys; the whole struct is
// serialized into the durable slot on every change.
type State struct {
	User                models.User                 `json:"user"`
	Habits              []models.Habit              `json:"habits"`
	UserHabits          []models.UserHabit          `json:"userHabits"`
	HabitLogs           []models.HabitLog           `json:"habitLogs"`
	Todos               []models.Todo               `json:"todos"`
	JournalEntries      []models.JournalEntry       `json:"journalEntries"`
	Goals               []models.Goal               `json:"goals"`
	CalendarEvents      []models.CalendarEvent      `json:"calendarEvents"`
	MealEntries         []models.MealEntry          `json:"mealEntries"`
	WaterEntries        []models.WaterEntry         `json:"waterEntries"`
	NutritionGoals      models.NutritionGoals       `json:"nutritionGoals"`
	FinanceProfile      models.FinanceProfile       `json:"financeProfile"`
	Liabilities         []models.Liability          `json:"liabilities"`
	FinanceTransactions []models.FinanceTransaction `json:"financeTransactions"`
	FinancialGoals      []models.FinancialGoal      `json:"financialGoals"`
	SchoolAssignments   []models.SchoolAssignment   `json:"schoolAssignments"`
	BucketListItems     []models.BucketListItem     `json:"bucketListItems"`
	FutureLetters       []models.FutureLetter       `json:"futureLetters"`
	DailyReflections    []models.DailyReflection    `json:"dailyReflections"`
	VaultEntries        []models.VaultEntry         `json:"vaultEntries"`
	WorkoutTemplates    []models.WorkoutTemplate    `json:"workoutTemplates"`
	WorkoutSessions     []models.WorkoutSession     `json:"workoutSessions"`
	GratitudePosts      []models.GratitudePost      `json:"gratitudePosts"`
}

// DefaultState returns the fixed first-run dataset for a user: the habit
// catalog, two adopted habits, sample entries, and singleton defaults.
func DefaultState(user models.User) State {
	today := time.Now().Format(constants.DateFormat)

	return State{
		User: user,
		Habits: []models.Habit{
			{
				ID:          "habit-1",
				Title:       "Morning Meditation",
				Description: "Start your day with mindfulness and clarity",
				Category:    "mindfulness",
				Type:        models.HabitTypeBuild,
				Techniques: []models.Technique{
					{
						Name:              "Breathing Focus",
						Description:       "Focus on your breath to center your mind",
						ScientificBacking: "Studies show breathing exercises reduce stress and improve focus",
					},
				},
				Benefits: []string{"Reduced stress", "Better focus", "Improved emotional regulation"},
				Questions: []models.Question{
					{Question: "How many minutes would you like to meditate?", Type: "number", Required: true},
				},
				Icon:  "🧘",
				Color: "purple",
			},
			{
				ID:          "habit-2",
				Title:       "Daily Exercise",
				Description: "Move your body for better health",
				Category:    "fitness",
				Type:        models.HabitTypeBuild,
				Techniques: []models.Technique{
					{
						Name:              "Progressive Overload",
						Description:       "Gradually increase intensity over time",
						ScientificBacking: "Research shows progressive overload builds strength effectively",
					},
				},
				Benefits: []string{"Better cardiovascular health", "Increased strength", "Improved mood"},
				Questions: []models.Question{
					{
						Question: "What type of exercise do you prefer?",
						Type:     "select",
						Options:  []string{"Cardio", "Strength Training", "Yoga", "Walking"},
						Required: true,
					},
				},
				Icon:  "💪",
				Color: "red",
			},
			{
				ID:          "habit-3",
				Title:       "Read Daily",
				Description: "Expand your knowledge through reading",
				Category:    "learning",
				Type:        models.HabitTypeBuild,
				Techniques: []models.Technique{
					{
						Name:              "Active Reading",
						Description:       "Take notes and summarize what you read",
						ScientificBacking: "Active reading improves comprehension and retention",
					},
				},
				Benefits: []string{"Increased knowledge", "Better vocabulary", "Improved focus"},
				Questions: []models.Question{
					{Question: "How many pages would you like to read daily?", Type: "number", Required: true},
				},
				Icon:  "📚",
				Color: "blue",
			},
		},
		UserHabits: []models.UserHabit{
			{
				ID:               "user-habit-1",
				HabitID:          "habit-1",
				UserID:           user.ID,
				Status:           models.HabitStatusActive,
				StartDate:        user.CreatedDate,
				TargetFrequency:  "daily",
				UserAnswers:      map[string]string{"How many minutes would you like to meditate?": "10"},
				StreakCurrent:    7,
				StreakLongest:    15,
				TotalCompletions: 45,
				ReminderEnabled:  true,
				ReminderTime:     "07:00",
			},
			{
				ID:               "user-habit-2",
				HabitID:          "habit-2",
				UserID:           user.ID,
				Status:           models.HabitStatusActive,
				StartDate:        user.CreatedDate,
				TargetFrequency:  "daily",
				UserAnswers:      map[string]string{"What type of exercise do you prefer?": "Cardio"},
				StreakCurrent:    3,
				StreakLongest:    12,
				TotalCompletions: 32,
				ReminderEnabled:  true,
				ReminderTime:     "18:00",
			},
		},
		HabitLogs: []models.HabitLog{
			{ID: "log-1", UserHabitID: "user-habit-1", Date: today, Completed: true, Notes: "Great session today"},
			{ID: "log-2", UserHabitID: "user-habit-2", Date: today, Completed: false},
		},
		Todos: []models.Todo{
			{
				ID:          "todo-1",
				Title:       "Complete project proposal",
				Description: "Finish the quarterly project proposal for review",
				Completed:   false,
				DueDate:     "2024-12-31",
				Priority:    models.PriorityHigh,
				Category:    "Work",
				CreatedDate: "2024-12-01",
				UpdatedDate: "2024-12-01",
			},
			{
				ID:          "todo-2",
				Title:       "Buy groceries",
				Description: "Get ingredients for this week's meals",
				Completed:   true,
				Priority:    models.PriorityMedium,
				Category:    "Personal",
				CreatedDate: "2024-12-01",
				UpdatedDate: "2024-12-01",
			},
		},
		JournalEntries: []models.JournalEntry{
			{
				ID:      "journal-1",
				Title:   "A Great Day",
				Content: "Today was amazing! I accomplished so much and felt really productive.",
				Date:    today,
				Mood:    models.MoodVeryHappy,
				Tags:    []string{"productivity", "exercise", "weather"},
			},
		},
		Goals: []models.Goal{
			{
				ID:          "goal-1",
				Title:       "Learn React",
				Description: "Master React development for better career prospects",
				Category:    "career",
				TargetDate:  "2024-12-31",
				Progress:    65,
				Status:      models.GoalStatusActive,
				Milestones: []models.Milestone{
					{Title: "Complete React basics course", Completed: true, Date: "2024-11-01"},
					{Title: "Build first React app", Completed: true, Date: "2024-11-15"},
					{Title: "Learn React hooks", Completed: false},
				},
			},
		},
		CalendarEvents: []models.CalendarEvent{
			{
				ID:          "event-1",
				Title:       "Team Meeting",
				Description: "Weekly team sync",
				StartDate:   today,
				StartTime:   "10:00",
				EndDate:     today,
				EndTime:     "11:00",
				Category:    "Meeting",
				Location:    "Conference Room A",
				Color:       "blue",
				UserID:      user.ID,
			},
		},
		MealEntries:  []models.MealEntry{},
		WaterEntries: []models.WaterEntry{},
		NutritionGoals: models.NutritionGoals{
			ID:            "nutrition-1",
			DailyCalories: 2000,
			DailyProtein:  150,
			DailyCarbs:    250,
			DailyFat:      65,
			DailyWater:    64,
			WaterUnit:     models.WaterUnitOz,
			UserID:        user.ID,
		},
		FinanceProfile: models.FinanceProfile{
			ID:                  "finance-1",
			UserID:              user.ID,
			MonthlyIncome:       5000,
			TaxRate:             22,
			K401Contribution:    500,
			K401EmployerMatch:   4,
			RothIRAContribution: 500,
			SavingsGoalType:     models.SavingsGoalPercentage,
			SavingsGoalValue:    20,
		},
		Liabilities: []models.Liability{
			{
				ID:             "liability-1",
				UserID:         user.ID,
				Name:           "Student Loan",
				Type:           "student",
				TotalAmount:    25000,
				MonthlyPayment: 300,
				InterestRate:   4.5,
			},
		},
		FinanceTransactions: []models.FinanceTransaction{},
		FinancialGoals:      []models.FinancialGoal{},
		SchoolAssignments:   []models.SchoolAssignment{},
		BucketListItems:     []models.BucketListItem{},
		FutureLetters:       []models.FutureLetter{},
		DailyReflections:    []models.DailyReflection{},
		VaultEntries:        []models.VaultEntry{},
		WorkoutTemplates:    []models.WorkoutTemplate{},
		WorkoutSessions:     []models.WorkoutSession{},
		GratitudePosts:      []models.GratitudePost{},
	}
}

// merge overlays the persisted blob onto the state, key by key. Only keys
// present in the blob overwrite the defaults, so collections added after a
// blob was written keep their default values. Unknown keys are ignored.
func (s *State) merge(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	targets := map[string]any{
		"user":                &s.User,
		"habits":              &s.Habits,
		"userHabits":          &s.UserHabits,
		"habitLogs":           &s.HabitLogs,
		"todos":               &s.Todos,
		"journalEntries":      &s.JournalEntries,
		"goals":               &s.Goals,
		"calendarEvents":      &s.CalendarEvents,
		"mealEntries":         &s.MealEntries,
		"waterEntries":        &s.WaterEntries,
		"nutritionGoals":      &s.NutritionGoals,
		"financeProfile":      &s.FinanceProfile,
		"liabilities":         &s.Liabilities,
		"financeTransactions": &s.FinanceTransactions,
		"financialGoals":      &s.FinancialGoals,
		"schoolAssignments":   &s.SchoolAssignments,
		"bucketListItems":     &s.BucketListItems,
		"futureLetters":       &s.FutureLetters,
		"dailyReflections":    &s.DailyReflections,
		"vaultEntries":        &s.VaultEntries,
		"workoutTemplates":    &s.WorkoutTemplates,
		"workoutSessions":     &s.WorkoutSessions,
		"gratitudePosts":      &s.GratitudePosts,
	}

	for key, target := range targets {
		blob, ok := raw[key]
		if !ok {
			continue
		}
		// A key that fails to parse keeps its default; the rest still load.
		_ = json.Unmarshal(blob, target)
	}

	return nil
}
