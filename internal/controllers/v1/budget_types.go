package v1

import (
	"regexp"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Amount   decimal.Decimal `json:"amount" example:"300"`             // Spending ceiling in currency units, must be positive
	Category types.Category  `json:"category" example:"Food & Dining"` // One of the supported categories
	Month    string          `json:"month" example:"2024-01"`          // Month in YYYY-MM format
}

// validate checks all field constraints at the API boundary, before a write
// is attempted.
func (editable BudgetEditable) validate() error {
	if !editable.Amount.IsPositive() {
		return models.ErrBudgetAmountNotPositive
	}

	if !editable.Category.Valid() {
		return models.ErrCategoryInvalid
	}

	if !monthPattern.MatchString(editable.Month) {
		return errMonthInvalid
	}

	if _, err := types.ParseMonth(editable.Month); err != nil {
		return errMonthInvalid
	}

	return nil
}

func (editable BudgetEditable) model() models.Budget {
	// validate has already checked the month
	month, _ := types.ParseMonth(editable.Month)

	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
		Month:    month,
	}
}

// Budget is the API representation of a budget.
type Budget struct {
	ID        uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the budget
	CreatedAt time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`   // Time the budget was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"`   // Last time the budget was updated
	Amount    decimal.Decimal `json:"amount" example:"300"`                              // Spending ceiling in currency units
	Category  types.Category  `json:"category" example:"Food & Dining"`                  // Category the ceiling applies to
	Month     string          `json:"month" example:"2024-01"`                           // Month in YYYY-MM format
}

func newBudget(model models.Budget) Budget {
	return Budget{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Amount:    model.Amount,
		Category:  model.Category,
		Month:     model.Month.String(),
	}
}

// BudgetResponse is the envelope for a single budget.
type BudgetResponse struct {
	Success bool    `json:"success" example:"true"`                      // Whether the request succeeded
	Message string  `json:"message" example:"Budget added successfully"` // Human readable description of the result
	Body    *Budget `json:"body,omitempty"`                              // The budget
}

// BudgetListResponse is the envelope for a list of budgets.
type BudgetListResponse struct {
	Success bool     `json:"success" example:"true"`                         // Whether the request succeeded
	Message string   `json:"message" example:"Budgets fetched successfully"` // Human readable description of the result
	Body    []Budget `json:"body"`                                           // List of budgets
}

// BudgetUpdate is the request body for updating a budget. It is the editable
// fields plus the ID of the budget to update.
type BudgetUpdate struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the budget to update
	BudgetEditable
}
