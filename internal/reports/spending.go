package reports

import (
	"strings"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategorySpending sums the transaction amounts per category. Transactions
// without a valid category count towards "Other".
//
// Addition over decimals is commutative, the result does not depend on the
// order of the transactions.
func CategorySpending(transactions []models.Transaction) map[types.Category]decimal.Decimal {
	spending := make(map[types.Category]decimal.Decimal)

	for _, transaction := range transactions {
		category := transaction.Category
		if !category.Valid() {
			category = types.CategoryOther
		}

		spending[category] = spending[category].Add(transaction.Amount)
	}

	return spending
}

// Total sums all amounts of a category spending map.
func Total(spending map[types.Category]decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, amount := range spending {
		total = total.Add(amount)
	}

	return total
}

// CategoryAmount is one category with its summed spending.
type CategoryAmount struct {
	Category types.Category  `json:"category" example:"Food & Dining"` // The category
	Spent    decimal.Decimal `json:"spent" example:"110"`              // Sum of transaction amounts for the category
}

// SortedBySpending flattens a category spending map into a slice ordered by
// spending, highest first. Ties are broken by category name so that the
// order is deterministic.
func SortedBySpending(spending map[types.Category]decimal.Decimal) []CategoryAmount {
	amounts := make([]CategoryAmount, 0, len(spending))
	for category, spent := range spending {
		amounts = append(amounts, CategoryAmount{Category: category, Spent: spent})
	}

	slices.SortFunc(amounts, func(a, b CategoryAmount) int {
		if cmp := b.Spent.Cmp(a.Spent); cmp != 0 {
			return cmp
		}
		return strings.Compare(string(a.Category), string(b.Category))
	})

	return amounts
}

// BudgetComparison holds the budget-vs-actual numbers for one budget.
type BudgetComparison struct {
	Category    types.Category  `json:"category" example:"Food & Dining"` // Category of the budget
	Budgeted    decimal.Decimal `json:"budgeted" example:"100"`           // The spending ceiling
	Spent       decimal.Decimal `json:"spent" example:"110"`              // Sum of transaction amounts for the category
	Remaining   decimal.Decimal `json:"remaining" example:"0"`            // Ceiling minus spending, floored at 0
	PercentUsed float64         `json:"percentUsed" example:"100"`        // Spending as percentage of the ceiling, capped at 100
	OverBudget  bool            `json:"overBudget" example:"true"`        // Whether spending exceeds the ceiling
}

// CompareBudgets computes the budget-vs-actual numbers for each budget.
// Categories without spending count as zero spent.
func CompareBudgets(budgets []models.Budget, spending map[types.Category]decimal.Decimal) []BudgetComparison {
	comparisons := make([]BudgetComparison, 0, len(budgets))

	for _, budget := range budgets {
		spent := spending[budget.Category]

		remaining := budget.Amount.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		var percentUsed float64
		if budget.Amount.IsPositive() {
			percentUsed = spent.Div(budget.Amount).InexactFloat64() * 100
			if percentUsed > 100 {
				percentUsed = 100
			}
		}

		comparisons = append(comparisons, BudgetComparison{
			Category:    budget.Category,
			Budgeted:    budget.Amount,
			Spent:       spent,
			Remaining:   remaining,
			PercentUsed: percentUsed,
			OverBudget:  spent.GreaterThan(budget.Amount),
		})
	}

	return comparisons
}
