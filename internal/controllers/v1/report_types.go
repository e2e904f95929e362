package v1

import (
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryListResponse is the envelope for the category list.
type CategoryListResponse struct {
	Success bool             `json:"success" example:"true"`                           // Whether the request succeeded
	Message string           `json:"message" example:"Categories fetched successfully"` // Human readable description of the result
	Body    []types.Category `json:"body"`                                             // The supported categories
}

// MonthSummary is the API representation of a monthly summary. It mirrors
// reports.MonthSummary, with the recent transactions rendered the same way
// the transaction endpoints render them.
type MonthSummary struct {
	TotalExpenses    decimal.Decimal          `json:"totalExpenses" example:"110"`  // Sum of all transaction amounts of the month
	TotalBudget      decimal.Decimal          `json:"totalBudget" example:"100"`    // Sum of all budget ceilings of the month
	BudgetProgress   float64                  `json:"budgetProgress" example:"100"` // Expenses as percentage of the total budget, capped at 100
	OverBudget       bool                     `json:"overBudget" example:"true"`    // Whether expenses exceed the total budget
	TransactionCount int                      `json:"transactionCount" example:"2"` // Number of transactions in the month
	TopCategories    []reports.CategoryAmount `json:"topCategories"`                // The three highest-spending categories
	Recent           []Transaction            `json:"recentTransactions"`           // The three most recent transactions by date
}

func newMonthSummary(summary reports.MonthSummary) MonthSummary {
	recent := make([]Transaction, 0, len(summary.Recent))
	for _, transaction := range summary.Recent {
		recent = append(recent, newTransaction(transaction))
	}

	return MonthSummary{
		TotalExpenses:    summary.TotalExpenses,
		TotalBudget:      summary.TotalBudget,
		BudgetProgress:   summary.BudgetProgress,
		OverBudget:       summary.OverBudget,
		TransactionCount: summary.TransactionCount,
		TopCategories:    summary.TopCategories,
		Recent:           recent,
	}
}

// SummaryResponse is the envelope for a monthly summary.
type SummaryResponse struct {
	Success bool          `json:"success" example:"true"`                        // Whether the request succeeded
	Message string        `json:"message" example:"Summary fetched successfully"` // Human readable description of the result
	Body    *MonthSummary `json:"body,omitempty"`                                // The summary
}

// InsightListResponse is the envelope for a list of insights.
type InsightListResponse struct {
	Success bool              `json:"success" example:"true"`                         // Whether the request succeeded
	Message string            `json:"message" example:"Insights fetched successfully"` // Human readable description of the result
	Body    []reports.Insight `json:"body"`                                           // The insights, in priority order
}

// ComparisonListResponse is the envelope for budget-versus-actual chart data.
type ComparisonListResponse struct {
	Success bool                       `json:"success" example:"true"`                           // Whether the request succeeded
	Message string                     `json:"message" example:"Comparison fetched successfully"` // Human readable description of the result
	Body    []reports.BudgetComparison `json:"body"`                                             // One entry per budget of the month
}
