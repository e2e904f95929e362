package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets/edit", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, PATCH", r.Header().Get("allow"))
}

// TestBudgetsCreate verifies that a created budget is returned with all
// fields as submitted.
func (suite *TestSuiteStandard) TestBudgetsCreate() {
	response := createTestBudget(suite.T(), v1.BudgetEditable{
		Amount:   decimal.NewFromFloat(300),
		Category: "Food & Dining",
		Month:    "2024-01",
	})

	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "Budget added successfully", response.Message)

	require.NotNil(suite.T(), response.Body)
	assert.True(suite.T(), response.Body.Amount.Equal(decimal.NewFromFloat(300)))
	assert.Equal(suite.T(), "Food & Dining", string(response.Body.Category))
	assert.Equal(suite.T(), "2024-01", response.Body.Month)
	assert.NotEqual(suite.T(), uuid.Nil, response.Body.ID)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "amount": 10`},
		{"Empty body", ""},
		{"Zero amount", v1.BudgetEditable{Amount: decimal.Zero, Category: "Other", Month: "2024-01"}},
		{"Negative amount", v1.BudgetEditable{Amount: decimal.NewFromFloat(-100), Category: "Other", Month: "2024-01"}},
		{"Unknown category", v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Gambling", Month: "2024-01"}},
		{"Month with day", v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Other", Month: "2024-01-01"}},
		{"Month out of range", v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Other", Month: "2024-13"}},
		{"Month empty", v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Other", Month: ""}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			assert.Nil(t, response.Body)
		})
	}
}

// TestBudgetsCreateDuplicate verifies that only one budget can exist per
// category and month.
func (suite *TestSuiteStandard) TestBudgetsCreateDuplicate() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Food & Dining", Month: "2024-01"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:   decimal.NewFromFloat(200),
		Category: "Food & Dining",
		Month:    "2024-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "a budget already exists for this category and month", response.Message)

	// The same category in another month and another category in the same
	// month are fine
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Food & Dining", Month: "2024-02"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})
}

// TestBudgetsGetOrder verifies that budgets are sorted by month descending,
// then category ascending.
func (suite *TestSuiteStandard) TestBudgetsGetOrder() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Food & Dining", Month: "2024-02"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Entertainment", Month: "2024-01"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Budgets fetched successfully", response.Message)
	require.Len(suite.T(), response.Body, 3)
	assert.Equal(suite.T(), "2024-02", response.Body[0].Month)
	assert.Equal(suite.T(), "Entertainment", string(response.Body[1].Category))
	assert.Equal(suite.T(), "Travel", string(response.Body[2].Category))
}

func (suite *TestSuiteStandard) TestBudgetsGetFilterMonth() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-02"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Body, 1)
	assert.Equal(suite.T(), "2024-01", response.Body[0].Month)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=NotAMonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/edit", v1.BudgetUpdate{
		ID: budget.Body.ID,
		BudgetEditable: v1.BudgetEditable{
			Amount:   decimal.NewFromFloat(250),
			Category: "Travel",
			Month:    "2024-01",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Budget updated successfully", response.Message)
	require.NotNil(suite.T(), response.Body)
	assert.True(suite.T(), response.Body.Amount.Equal(decimal.NewFromFloat(250)))
	assert.Equal(suite.T(), budget.Body.ID, response.Body.ID)
}

// TestBudgetsUpdateConflict verifies that moving a budget onto an occupied
// category and month is rejected, while keeping its own slot is allowed.
func (suite *TestSuiteStandard) TestBudgetsUpdateConflict() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Food & Dining", Month: "2024-01"})
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/edit", v1.BudgetUpdate{
		ID: budget.Body.ID,
		BudgetEditable: v1.BudgetEditable{
			Amount:   decimal.NewFromFloat(100),
			Category: "Food & Dining",
			Month:    "2024-01",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Unknown ID", v1.BudgetUpdate{ID: uuid.New(), BudgetEditable: v1.BudgetEditable{Amount: decimal.NewFromFloat(1), Category: "Other", Month: "2024-01"}}, http.StatusNotFound},
		{"Missing ID", v1.BudgetUpdate{BudgetEditable: v1.BudgetEditable{Amount: decimal.NewFromFloat(1), Category: "Other", Month: "2024-01"}}, http.StatusBadRequest},
		{"Invalid month", v1.BudgetUpdate{ID: uuid.New(), BudgetEditable: v1.BudgetEditable{Amount: decimal.NewFromFloat(1), Category: "Other", Month: "01/2024"}}, http.StatusBadRequest},
		{"Broken JSON", `{ "id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/budgets/edit", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromFloat(100), Category: "Travel", Month: "2024-01"})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets?id=%s", budget.Body.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Budget deleted successfully", response.Message)

	// Deleting twice is a 404, the budget is gone
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets?id=%s", budget.Body.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteInvalid() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Missing ID", "", http.StatusBadRequest},
		{"Invalid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Unknown ID", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets?id=%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestBudgetsDatabaseError verifies that the endpoints return a 500 when
// the database is disconnected.
func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
		body   any
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"POST Collection", "", http.MethodPost, v1.BudgetEditable{Amount: decimal.NewFromFloat(1), Category: "Other", Month: "2024-01"}},
		{"DELETE Collection", fmt.Sprintf("?id=%s", uuid.New().String()), http.MethodDelete, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
