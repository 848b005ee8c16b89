package models

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type SpendingCategory string

const (
	SpendingFixedCosts  SpendingCategory = "Fixed Costs"
	SpendingInvestments SpendingCategory = "Investments"
	SpendingSavings     SpendingCategory = "Savings"
	SpendingGuiltFree   SpendingCategory = "Guilt-Free Spending"
)

type SavingsGoalType string

const (
	SavingsGoalPercentage SavingsGoalType = "percentage"
	SavingsGoalAbsolute   SavingsGoalType = "absolute"
)

// FinanceProfile is a per-user singleton describing income and contribution
// settings. Budget categories are derived from it at read time, never stored.
type FinanceProfile struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	MonthlyIncome       float64         `json:"monthly_income"`
	TaxRate             float64         `json:"tax_rate"` // percent
	K401Contribution    float64         `json:"k401_contribution"`
	K401EmployerMatch   float64         `json:"k401_employer_match"` // percent
	RothIRAContribution float64         `json:"roth_ira_contribution"`
	SavingsGoalType     SavingsGoalType `json:"savings_goal_type"`
	SavingsGoalValue    float64         `json:"savings_goal_value"`
}

type FinanceProfilePatch struct {
	MonthlyIncome       *float64         `json:"monthly_income,omitempty"`
	TaxRate             *float64         `json:"tax_rate,omitempty"`
	K401Contribution    *float64         `json:"k401_contribution,omitempty"`
	K401EmployerMatch   *float64         `json:"k401_employer_match,omitempty"`
	RothIRAContribution *float64         `json:"roth_ira_contribution,omitempty"`
	SavingsGoalType     *SavingsGoalType `json:"savings_goal_type,omitempty"`
	SavingsGoalValue    *float64         `json:"savings_goal_value,omitempty"`
}

func (p FinanceProfilePatch) Apply(f *FinanceProfile) {
	if p.MonthlyIncome != nil {
		f.MonthlyIncome = *p.MonthlyIncome
	}
	if p.TaxRate != nil {
		f.TaxRate = *p.TaxRate
	}
	if p.K401Contribution != nil {
		f.K401Contribution = *p.K401Contribution
	}
	if p.K401EmployerMatch != nil {
		f.K401EmployerMatch = *p.K401EmployerMatch
	}
	if p.RothIRAContribution != nil {
		f.RothIRAContribution = *p.RothIRAContribution
	}
	if p.SavingsGoalType != nil {
		f.SavingsGoalType = *p.SavingsGoalType
	}
	if p.SavingsGoalValue != nil {
		f.SavingsGoalValue = *p.SavingsGoalValue
	}
}

type FinanceTransaction struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Type             TransactionType  `json:"type"`
	Amount           float64          `json:"amount"`
	Description      string           `json:"description,omitempty"`
	Date             string           `json:"date"` // YYYY-MM-DD format
	SpendingCategory SpendingCategory `json:"spending_category,omitempty"`
	CustomCategory   string           `json:"custom_category,omitempty"`
}

type Liability struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"` // e.g. "student", "auto", "credit_card"
	TotalAmount    float64 `json:"total_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	InterestRate   float64 `json:"interest_rate"` // percent
}

type LiabilityPatch struct {
	Name           *string  `json:"name,omitempty"`
	Type           *string  `json:"type,omitempty"`
	TotalAmount    *float64 `json:"total_amount,omitempty"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
}

func (p LiabilityPatch) Apply(l *Liability) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.TotalAmount != nil {
		l.TotalAmount = *p.TotalAmount
	}
	if p.MonthlyPayment != nil {
		l.MonthlyPayment = *p.MonthlyPayment
	}
	if p.InterestRate != nil {
		l.InterestRate = *p.InterestRate
	}
}

type FinancialGoal struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date,omitempty"` // YYYY-MM-DD format
}

type FinancialGoalPatch struct {
	Title         *string  `json:"title,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	TargetDate    *string  `json:"target_date,omitempty"`
}

func (p FinancialGoalPatch) Apply(g *FinancialGoal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
}
