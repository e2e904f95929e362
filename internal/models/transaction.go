package models

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
//
// There is no foreign key to Budget. Transactions and Budgets are associated
// at query time by matching the category and the month of the date.
type Transaction struct {
	DefaultModel
	Date        time.Time       `json:"date" example:"2024-01-05T00:00:00Z"`                    // Calendar date of the transaction
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.50"`       // Amount in currency units
	Description string          `json:"description" example:"Lunch at the corner place"`        // Free text description
	Category    types.Category  `json:"category" example:"Food & Dining"`                       // Spending category
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionDescriptionEmpty  = errors.New("transaction descriptions must not be empty")
	ErrCategoryInvalid              = errors.New("the category must be one of the supported categories")
)

// AfterFind updates the date to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store dates in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave normalizes the description and sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Description == "" {
		return ErrTransactionDescriptionEmpty
	}

	if !t.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}
