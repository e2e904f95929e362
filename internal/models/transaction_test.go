package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := suite.createTestTransaction(models.Transaction{
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(14.5),
		Description: "Lunch",
		Category:    types.CategoryFoodDining,
	})

	assert.NotZero(suite.T(), transaction.ID)

	var reloaded models.Transaction
	require.Nil(suite.T(), models.DB.First(&reloaded, transaction.ID).Error)

	assert.True(suite.T(), reloaded.Amount.Equal(decimal.NewFromFloat(14.5)))
	assert.Equal(suite.T(), "Lunch", reloaded.Description)
	assert.Equal(suite.T(), types.CategoryFoodDining, reloaded.Category)
	assert.True(suite.T(), reloaded.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromFloat(5),
		Description: "Coffee",
		Category:    types.CategoryFoodDining,
	})

	assert.WithinDuration(suite.T(), time.Now().In(time.UTC), transaction.Date, time.Minute)
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromFloat(5),
		Description: "  Might be whitespace here \t",
		Category:    types.CategoryShopping,
	})

	assert.Equal(suite.T(), "Might be whitespace here", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionAfterSave() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"negative amount",
			models.Transaction{Amount: decimal.NewFromFloat(-1), Description: "x", Category: types.CategoryOther},
			models.ErrTransactionAmountNotPositive,
		},
		{
			"zero amount",
			models.Transaction{Amount: decimal.Zero, Description: "x", Category: types.CategoryOther},
			models.ErrTransactionAmountNotPositive,
		},
		{
			"empty description",
			models.Transaction{Amount: decimal.NewFromFloat(1), Category: types.CategoryOther},
			models.ErrTransactionDescriptionEmpty,
		},
		{
			"invalid category",
			models.Transaction{Amount: decimal.NewFromFloat(1), Description: "x", Category: "Bribes"},
			models.ErrCategoryInvalid,
		},
		{
			"valid",
			models.Transaction{Amount: decimal.NewFromFloat(1), Description: "x", Category: types.CategoryOther},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromFloat(10),
		Description: "Bus ticket",
		Category:    types.CategoryTransportation,
	})

	require.Nil(suite.T(), models.DB.Delete(&models.Transaction{}, transaction.ID).Error)

	err := models.DB.First(&models.Transaction{}, transaction.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
