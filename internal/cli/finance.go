package cli

import (
	"fmt"

	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/stats"
)

type FinanceAddCmd struct {
	Amount      float64 `arg:"" help:"Transaction amount."`
	Description string  `arg:"" optional:"" help:"What the money was for."`
	Type        string  `short:"t" help:"Transaction type (income|expense)." default:"expense"`
	Category    string  `short:"c" help:"Spending category (fixed|guilt-free)." default:"fixed"`
	Date        string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FinanceAddCmd) Validate() error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if c.Type != string(models.TransactionIncome) && c.Type != string(models.TransactionExpense) {
		return fmt.Errorf("type must be income or expense")
	}
	if c.Category != "fixed" && c.Category != "guilt-free" {
		return fmt.Errorf("category must be fixed or guilt-free")
	}
	return nil
}

func (c *FinanceAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}

	category := models.SpendingFixedCosts
	if c.Category == "guilt-free" {
		category = models.SpendingGuiltFree
	}

	ctx.PerformAutomaticBackup()
	ctx.Store.AddFinanceTransaction(models.FinanceTransaction{
		UserID:           ctx.Store.State().User.ID,
		Type:             models.TransactionType(c.Type),
		Amount:           c.Amount,
		Description:      c.Description,
		Date:             date,
		SpendingCategory: category,
	})
	fmt.Printf("Recorded %s of $%.2f\n", c.Type, c.Amount)
	return nil
}

type FinanceSummaryCmd struct {
	Month string `short:"m" help:"Month (YYYY-MM), defaults to the current month."`
}

func (c *FinanceSummaryCmd) Run(ctx *Context) error {
	month := c.Month
	if month == "" {
		month = CurrentMonth()
	}

	state := ctx.Store.State()
	summary := stats.SummarizeMonth(state.FinanceTransactions, month)
	split := stats.BudgetSplit(state.FinanceProfile, state.FinanceTransactions, month)

	fmt.Println(titleStyle.Render("Finance summary for " + month))
	fmt.Printf("Income:   $%.2f\n", summary.TotalIncome)
	fmt.Printf("Expenses: $%.2f\n", summary.TotalExpenses)
	fmt.Printf("Net:      $%.2f\n\n", summary.Net)

	fmt.Println(headerStyle.Render("Conscious spending plan"))
	for _, line := range split {
		status := doneStyle.Render("on target")
		if line.Value > line.Target {
			status = warnStyle.Render("over target")
		}
		fmt.Printf("%-20s $%9.2f of $%9.2f  %s\n", line.Name, line.Value, line.Target, status)
	}
	return nil
}
