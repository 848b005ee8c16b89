package stats

import (
	"strings"

	"github.com/ShivamParikh1/HabitAppV11/internal/constants"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// MonthSummary aggregates one month's transactions.
type MonthSummary struct {
	TotalIncome   float64
	TotalExpenses float64
	Net           float64
}

// BudgetLine is one category of the conscious-spending split with its actual
// value and its target share of post-tax income.
type BudgetLine struct {
	Name   string
	Value  float64
	Target float64
}

// monthOf reports whether a YYYY-MM-DD date falls in the YYYY-MM month.
func monthOf(date, month string) bool {
	return strings.HasPrefix(date, month+"-")
}

// TransactionsForMonth filters transactions to a YYYY-MM month.
func TransactionsForMonth(transactions []models.FinanceTransaction, month string) []models.FinanceTransaction {
	var out []models.FinanceTransaction
	for _, t := range transactions {
		if monthOf(t.Date, month) {
			out = append(out, t)
		}
	}
	return out
}

// SummarizeMonth totals the month's income and expenses.
func SummarizeMonth(transactions []models.FinanceTransaction, month string) MonthSummary {
	var s MonthSummary
	for _, t := range TransactionsForMonth(transactions, month) {
		switch t.Type {
		case models.TransactionIncome:
			s.TotalIncome += t.Amount
		case models.TransactionExpense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Net = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryTotal sums the month's expenses in one spending category.
func CategoryTotal(transactions []models.FinanceTransaction, month string, category models.SpendingCategory) float64 {
	var total float64
	for _, t := range TransactionsForMonth(transactions, month) {
		if t.Type == models.TransactionExpense && t.SpendingCategory == category {
			total += t.Amount
		}
	}
	return total
}

// PostTaxIncome derives monthly take-home income from the profile.
func PostTaxIncome(profile models.FinanceProfile) float64 {
	return profile.MonthlyIncome * (1 - profile.TaxRate/100)
}

// SavingsAmount derives the monthly savings figure from the profile's goal,
// either as a percentage of post-tax income or an absolute amount.
func SavingsAmount(profile models.FinanceProfile) float64 {
	if profile.SavingsGoalType == models.SavingsGoalPercentage {
		return PostTaxIncome(profile) * profile.SavingsGoalValue / 100
	}
	return profile.SavingsGoalValue
}

// BudgetSplit computes the four conscious-spending lines for a month: fixed
// costs and guilt-free spending from actual expenses, investments and savings
// from the profile's contribution settings. Targets follow the 50/10/10/30
// shares of post-tax income.
func BudgetSplit(profile models.FinanceProfile, transactions []models.FinanceTransaction, month string) []BudgetLine {
	postTax := PostTaxIncome(profile)
	investments := profile.K401Contribution + profile.RothIRAContribution

	return []BudgetLine{
		{
			Name:   string(models.SpendingFixedCosts),
			Value:  CategoryTotal(transactions, month, models.SpendingFixedCosts),
			Target: postTax * constants.BudgetTargetFixedCosts,
		},
		{
			Name:   string(models.SpendingInvestments),
			Value:  investments,
			Target: postTax * constants.BudgetTargetInvestments,
		},
		{
			Name:   string(models.SpendingSavings),
			Value:  SavingsAmount(profile),
			Target: postTax * constants.BudgetTargetSavings,
		},
		{
			Name:   "Guilt-Free",
			Value:  CategoryTotal(transactions, month, models.SpendingGuiltFree),
			Target: postTax * constants.BudgetTargetGuiltFree,
		},
	}
}
