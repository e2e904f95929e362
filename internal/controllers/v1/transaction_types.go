package v1

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a
// transaction.
type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.50"`                          // Amount in currency units, must be positive
	Date        string          `json:"date" example:"2024-01-05"`                       // Calendar date in YYYY-MM-DD format
	Description string          `json:"description" example:"Lunch at the corner place"` // Free text description, must not be empty
	Category    types.Category  `json:"category" example:"Food & Dining"`                // One of the supported categories
}

// validate checks all field constraints at the API boundary, before a write
// is attempted.
func (editable TransactionEditable) validate() error {
	if !editable.Amount.IsPositive() {
		return models.ErrTransactionAmountNotPositive
	}

	if _, err := time.Parse("2006-01-02", editable.Date); err != nil {
		return errDateInvalid
	}

	if strings.TrimSpace(editable.Description) == "" {
		return models.ErrTransactionDescriptionEmpty
	}

	if !editable.Category.Valid() {
		return models.ErrCategoryInvalid
	}

	return nil
}

func (editable TransactionEditable) model() models.Transaction {
	// validate has already checked the date
	date, _ := time.Parse("2006-01-02", editable.Date)

	return models.Transaction{
		Date:        date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Category:    editable.Category,
	}
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	ID          uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the transaction
	CreatedAt   time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`   // Time the transaction was created
	UpdatedAt   time.Time       `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"`   // Last time the transaction was updated
	Amount      decimal.Decimal `json:"amount" example:"14.50"`                            // Amount in currency units
	Date        string          `json:"date" example:"2024-01-05"`                         // Calendar date in YYYY-MM-DD format
	Description string          `json:"description" example:"Lunch at the corner place"`   // Free text description
	Category    types.Category  `json:"category" example:"Food & Dining"`                  // Spending category
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		ID:          model.ID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Amount:      model.Amount,
		Date:        model.Date.Format("2006-01-02"),
		Description: model.Description,
		Category:    model.Category,
	}
}

// TransactionResponse is the envelope for a single transaction.
type TransactionResponse struct {
	Success bool         `json:"success" example:"true"`                    // Whether the request succeeded
	Message string       `json:"message" example:"Transaction added successfully"` // Human readable description of the result
	Body    *Transaction `json:"body,omitempty"`                            // The transaction
}

// TransactionListResponse is the envelope for a list of transactions.
type TransactionListResponse struct {
	Success bool          `json:"success" example:"true"`                         // Whether the request succeeded
	Message string        `json:"message" example:"Transactions fetched successfully"` // Human readable description of the result
	Body    []Transaction `json:"body"`                                           // List of transactions
}

// TransactionUpdate is the request body for updating a transaction. It is
// the editable fields plus the ID of the transaction to update.
type TransactionUpdate struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the transaction to update
	TransactionEditable
}
