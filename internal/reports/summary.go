package reports

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthSummary is the dashboard overview for one month.
type MonthSummary struct {
	TotalExpenses    decimal.Decimal      `json:"totalExpenses" example:"110"`  // Sum of all transaction amounts
	TotalBudget      decimal.Decimal      `json:"totalBudget" example:"100"`    // Sum of all budget ceilings
	BudgetProgress   float64              `json:"budgetProgress" example:"100"` // Expenses as percentage of the total budget, capped at 100
	OverBudget       bool                 `json:"overBudget" example:"true"`    // Whether expenses exceed the total budget
	TransactionCount int                  `json:"transactionCount" example:"2"` // Number of transactions
	TopCategories    []CategoryAmount     `json:"topCategories"`                // The three highest-spending categories
	Recent           []models.Transaction `json:"recentTransactions"`           // The three most recent transactions by date
}

// Summarize computes the dashboard overview for one month of transactions
// and budgets.
func Summarize(transactions []models.Transaction, budgets []models.Budget) MonthSummary {
	spending := CategorySpending(transactions)
	totalExpenses := Total(spending)

	var totalBudget decimal.Decimal
	for _, budget := range budgets {
		totalBudget = totalBudget.Add(budget.Amount)
	}

	var progress float64
	if totalBudget.IsPositive() {
		progress = totalExpenses.Div(totalBudget).InexactFloat64() * 100
		if progress > 100 {
			progress = 100
		}
	}

	topCategories := SortedBySpending(spending)
	if len(topCategories) > 3 {
		topCategories = topCategories[:3]
	}

	recent := slices.Clone(transactions)
	slices.SortFunc(recent, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}

	return MonthSummary{
		TotalExpenses:    totalExpenses,
		TotalBudget:      totalBudget,
		BudgetProgress:   progress,
		OverBudget:       totalBudget.IsPositive() && totalExpenses.GreaterThan(totalBudget),
		TransactionCount: len(transactions),
		TopCategories:    topCategories,
		Recent:           recent,
	}
}
