package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for the read-only report
// endpoints with the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", OptionsCategories)
	r.GET("/categories", GetCategories)

	r.OPTIONS("/summary", OptionsSummary)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/insights", OptionsInsights)
	r.GET("/insights", GetInsights)

	r.OPTIONS("/comparison", OptionsComparison)
	r.GET("/comparison", GetComparison)
}

// OptionsCategories returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsSummary returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsInsights returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Router			/v1/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsComparison returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Router			/v1/comparison [options]
func OptionsComparison(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetCategories returns the closed set of transaction categories
//
//	@Summary		List categories
//	@Description	Returns the categories transactions and budgets can use
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Success: true,
		Message: "Categories fetched successfully",
		Body:    types.Categories(),
	})
}

// GetSummary returns a spending summary for one month
//
//	@Summary		Monthly summary
//	@Description	Returns aggregated expenses, budget progress and recent transactions for a month. Defaults to the current month
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{object}	SummaryResponse
//	@Failure		400		{object}	SummaryResponse
//	@Failure		500		{object}	SummaryResponse
//	@Param			month	query		string	false	"The month (YYYY-MM)"
//	@Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	transactions, budgets, ok := monthData(c)
	if !ok {
		return
	}

	body := newMonthSummary(reports.Summarize(transactions, budgets))
	c.JSON(http.StatusOK, SummaryResponse{
		Success: true,
		Message: "Summary fetched successfully",
		Body:    &body,
	})
}

// GetInsights returns spending insights for one month
//
//	@Summary		Monthly insights
//	@Description	Returns generated observations about spending versus budgets for a month. Defaults to the current month
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{object}	InsightListResponse
//	@Failure		400		{object}	InsightListResponse
//	@Failure		500		{object}	InsightListResponse
//	@Param			month	query		string	false	"The month (YYYY-MM)"
//	@Router			/v1/insights [get]
func GetInsights(c *gin.Context) {
	transactions, budgets, ok := monthData(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{
		Success: true,
		Message: "Insights fetched successfully",
		Body:    reports.GenerateInsights(transactions, budgets),
	})
}

// GetComparison returns budget-versus-actual data for one month
//
//	@Summary		Budget comparison
//	@Description	Returns spending against the ceiling for every budget of a month. Defaults to the current month
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{object}	ComparisonListResponse
//	@Failure		400		{object}	ComparisonListResponse
//	@Failure		500		{object}	ComparisonListResponse
//	@Param			month	query		string	false	"The month (YYYY-MM)"
//	@Router			/v1/comparison [get]
func GetComparison(c *gin.Context) {
	transactions, budgets, ok := monthData(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ComparisonListResponse{
		Success: true,
		Message: "Comparison fetched successfully",
		Body:    reports.CompareBudgets(budgets, reports.CategorySpending(transactions)),
	})
}

// monthData loads the transactions and budgets of the requested month. When
// the month query parameter is not set, the current month is used. On error
// the response has already been written and ok is false.
func monthData(c *gin.Context) (transactions []models.Transaction, budgets []models.Budget, ok bool) {
	month, monthSet, err := parseMonth(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err)
		return transactions, budgets, false
	}

	if !monthSet {
		month = types.MonthOf(time.Now().UTC())
	}

	start := time.Time(month)
	end := time.Time(month.AddDate(0, 1))
	err = models.DB.Where("date >= ? AND date < ?", start, end).Find(&transactions).Error
	if err != nil {
		renderError(c, status(err), err)
		return transactions, budgets, false
	}

	err = models.DB.Where("month = ?", month).Find(&budgets).Error
	if err != nil {
		renderError(c, status(err), err)
		return transactions, budgets, false
	}

	return transactions, budgets, true
}
