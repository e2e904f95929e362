package reports

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// InsightType is the severity of an insight.
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightDanger  InsightType = "danger"
	InsightInfo    InsightType = "info"
)

// Insight is a generated textual observation about spending versus budgets.
// Insights are never persisted, they are computed fresh per request.
type Insight struct {
	Type     InsightType    `json:"type" example:"danger"`                                    // Severity of the insight
	Category types.Category `json:"category,omitempty" example:"Food & Dining"`               // Category the insight is about, if any
	Message  string         `json:"message" example:"You've exceeded your Food & Dining budget by 10.00$."` // Human readable message
}

// GenerateInsights produces the insight list for one month of transactions
// and budgets. The caller is responsible for restricting both slices to the
// month under inspection.
//
// Insights are appended in a fixed priority order, they are not sorted by
// severity: missing budgets first, then the total budget status, then the
// per-budget status, then unbudgeted spending, then the dominant category.
func GenerateInsights(transactions []models.Transaction, budgets []models.Budget) []Insight {
	insights := make([]Insight, 0)

	spending := CategorySpending(transactions)
	totalSpending := Total(spending)

	var totalBudget decimal.Decimal
	for _, budget := range budgets {
		totalBudget = totalBudget.Add(budget.Amount)
	}

	if len(budgets) == 0 && len(transactions) > 0 {
		insights = append(insights, Insight{
			Type:    InsightInfo,
			Message: "You haven't set any budgets yet. Setting budgets can help you manage your spending better.",
		})
	}

	if totalBudget.IsPositive() {
		percentage := totalSpending.Div(totalBudget).InexactFloat64() * 100

		switch {
		case percentage > 100:
			insights = append(insights, Insight{
				Type:    InsightDanger,
				Message: fmt.Sprintf("You've exceeded your total monthly budget by %s.", formatAmount(totalSpending.Sub(totalBudget))),
			})
		case percentage >= 90:
			insights = append(insights, Insight{
				Type:    InsightWarning,
				Message: fmt.Sprintf("You're close to your total monthly budget (%s used).", formatPercent(percentage)),
			})
		case percentage <= 20 && len(transactions) > 0:
			insights = append(insights, Insight{
				Type:    InsightSuccess,
				Message: fmt.Sprintf("Great job! You've only used %s of your total monthly budget.", formatPercent(percentage)),
			})
		}
	}

	// Per-budget status. Only danger and warning are emitted here, a
	// budget that is on track does not produce an insight.
	for _, budget := range budgets {
		spent := spending[budget.Category]
		if !budget.Amount.IsPositive() {
			continue
		}

		percentage := spent.Div(budget.Amount).InexactFloat64() * 100

		if percentage > 100 {
			insights = append(insights, Insight{
				Type:     InsightDanger,
				Category: budget.Category,
				Message:  fmt.Sprintf("You've exceeded your %s budget by %s.", budget.Category, formatAmount(spent.Sub(budget.Amount))),
			})
		} else if percentage >= 90 {
			insights = append(insights, Insight{
				Type:     InsightWarning,
				Category: budget.Category,
				Message:  fmt.Sprintf("You're close to your %s budget (%s used).", budget.Category, formatPercent(percentage)),
			})
		}
	}

	// Without any budget, the single "no budgets" insight above already
	// covers everything the remaining rules would advise.
	if len(budgets) == 0 {
		return insights
	}

	// The two highest-spending categories without a budget
	unbudgeted := make([]CategoryAmount, 0)
	for _, amount := range SortedBySpending(spending) {
		if !amount.Spent.IsPositive() {
			continue
		}

		budgeted := false
		for _, budget := range budgets {
			if budget.Category == amount.Category {
				budgeted = true
				break
			}
		}

		if !budgeted {
			unbudgeted = append(unbudgeted, amount)
		}
	}

	if len(unbudgeted) > 2 {
		unbudgeted = unbudgeted[:2]
	}

	for _, amount := range unbudgeted {
		insights = append(insights, Insight{
			Type:     InsightInfo,
			Category: amount.Category,
			Message:  fmt.Sprintf("You spent %s on %s without a budget. Consider setting a budget for this category.", formatAmount(amount.Spent), amount.Category),
		})
	}

	// Dominant category
	if len(transactions) > 0 && totalSpending.IsPositive() {
		top := SortedBySpending(spending)[0]
		percentOfTotal := top.Spent.Div(totalSpending).InexactFloat64() * 100

		if percentOfTotal > 50 {
			insights = append(insights, Insight{
				Type:     InsightInfo,
				Category: top.Category,
				Message:  fmt.Sprintf("%s makes up %s of your total spending this month.", top.Category, formatPercent(percentOfTotal)),
			})
		}
	}

	return insights
}
