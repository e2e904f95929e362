package models_test

import (
	"testing"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := suite.createTestBudget(models.Budget{
		Category: types.CategoryFoodDining,
		Amount:   decimal.NewFromFloat(300),
		Month:    types.NewMonth(2024, 1),
	})

	assert.NotZero(suite.T(), budget.ID)
	assert.Equal(suite.T(), types.CategoryFoodDining, budget.Category)
	assert.True(suite.T(), budget.Amount.Equal(decimal.NewFromFloat(300)))
	assert.Equal(suite.T(), "2024-01", budget.Month.String())
}

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"negative amount",
			models.Budget{Category: types.CategoryHousing, Amount: decimal.NewFromFloat(-10), Month: types.NewMonth(2024, 1)},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"zero amount",
			models.Budget{Category: types.CategoryHousing, Amount: decimal.Zero, Month: types.NewMonth(2024, 1)},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"invalid category",
			models.Budget{Category: "Gambling", Amount: decimal.NewFromFloat(10), Month: types.NewMonth(2024, 1)},
			models.ErrCategoryInvalid,
		},
		{
			"month not set",
			models.Budget{Category: types.CategoryHousing, Amount: decimal.NewFromFloat(10)},
			models.ErrBudgetMonthNotSet,
		},
		{
			"valid",
			models.Budget{Category: types.CategoryHousing, Amount: decimal.NewFromFloat(10), Month: types.NewMonth(2024, 1)},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.budget.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetMonthUnique() {
	_ = suite.createTestBudget(models.Budget{
		Category: types.CategoryFoodDining,
		Amount:   decimal.NewFromFloat(100),
		Month:    types.NewMonth(2024, 1),
	})

	// A second budget for the same category and month is rejected,
	// regardless of the amount
	err := models.DB.Create(&models.Budget{
		Category: types.CategoryFoodDining,
		Amount:   decimal.NewFromFloat(9000),
		Month:    types.NewMonth(2024, 1),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)

	// The same category for another month is fine
	err = models.DB.Create(&models.Budget{
		Category: types.CategoryFoodDining,
		Amount:   decimal.NewFromFloat(100),
		Month:    types.NewMonth(2024, 2),
	}).Error
	assert.Nil(suite.T(), err)

	// Another category for the same month is fine
	err = models.DB.Create(&models.Budget{
		Category: types.CategoryTravel,
		Amount:   decimal.NewFromFloat(100),
		Month:    types.NewMonth(2024, 1),
	}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetUpdateExcludesSelf() {
	budget := suite.createTestBudget(models.Budget{
		Category: types.CategoryShopping,
		Amount:   decimal.NewFromFloat(50),
		Month:    types.NewMonth(2024, 3),
	})

	// Updating the amount while keeping category and month must not
	// conflict with the budget itself
	budget.Amount = decimal.NewFromFloat(75)
	err := models.DB.Save(&budget).Error
	require.Nil(suite.T(), err)

	var reloaded models.Budget
	require.Nil(suite.T(), models.DB.First(&reloaded, budget.ID).Error)
	assert.True(suite.T(), reloaded.Amount.Equal(decimal.NewFromFloat(75)))
}

func (suite *TestSuiteStandard) TestBudgetUpdateConflict() {
	_ = suite.createTestBudget(models.Budget{
		Category: types.CategoryUtilities,
		Amount:   decimal.NewFromFloat(80),
		Month:    types.NewMonth(2024, 4),
	})

	other := suite.createTestBudget(models.Budget{
		Category: types.CategoryUtilities,
		Amount:   decimal.NewFromFloat(80),
		Month:    types.NewMonth(2024, 5),
	})

	// Moving the second budget onto the occupied month conflicts
	other.Month = types.NewMonth(2024, 4)
	err := models.DB.Save(&other).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)
}
