package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterBudgetRoutes registers the routes for budgets with the RouterGroup
// that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.GET("", GetBudgets)
	r.POST("", CreateBudget)
	r.DELETE("", DeleteBudget)

	r.OPTIONS("/edit", OptionsBudgetEdit)
	r.PATCH("/edit", UpdateBudget)
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// OptionsBudgetEdit returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets/edit [options]
func OptionsBudgetEdit(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// CreateBudget creates a new budget
//
//	@Summary		Create budget
//	@Description	Creates a new budget for a category and month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	if err := editable.validate(); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	budget := editable.model()
	if err := models.DB.Create(&budget).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	body := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{
		Success: true,
		Message: "Budget added successfully",
		Body:    &body,
	})
}

// GetBudgets returns all budgets, optionally filtered to a single month
//
//	@Summary		List budgets
//	@Description	Returns a list of budgets, most recent month first
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetListResponse
//	@Failure		400		{object}	BudgetListResponse
//	@Failure		500		{object}	BudgetListResponse
//	@Param			month	query		string	false	"Only return budgets for this month (YYYY-MM)"
//	@Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	month, monthSet, err := parseMonth(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	query := models.DB.Order("month DESC, category ASC")
	if monthSet {
		query = query.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := query.Find(&budgets).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	body := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		body = append(body, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Success: true,
		Message: "Budgets fetched successfully",
		Body:    body,
	})
}

// UpdateBudget updates a budget
//
//	@Summary		Update budget
//	@Description	Updates an existing budget. All fields are replaced with the submitted values
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			budget	body		BudgetUpdate	true	"Budget"
//	@Router			/v1/budgets/edit [patch]
func UpdateBudget(c *gin.Context) {
	var update BudgetUpdate
	if err := httputil.BindData(c, &update); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	if update.ID == uuid.Nil {
		renderError(c, http.StatusBadRequest, errIDFieldRequired)
		return
	}

	if err := update.validate(); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	var budget models.Budget
	if err := models.DB.First(&budget, update.ID).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	budget.Amount = update.Amount
	budget.Category = update.Category
	budget.Month, _ = types.ParseMonth(update.Month)

	if err := models.DB.Save(&budget).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	body := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{
		Success: true,
		Message: "Budget updated successfully",
		Body:    &body,
	})
}

// DeleteBudget deletes a budget
//
//	@Summary		Delete budget
//	@Description	Deletes the budget with the specified id
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	BudgetResponse
//	@Failure		404	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Param			id	query		string	true	"ID of the budget"
//	@Router			/v1/budgets [delete]
func DeleteBudget(c *gin.Context) {
	var query URIQueryID
	_ = c.Bind(&query)

	if query.ID == "" {
		renderError(c, http.StatusBadRequest, errIDParameterRequired)
		return
	}

	id, err := uuid.Parse(query.ID)
	if err != nil {
		renderError(c, http.StatusBadRequest, errInvalidUUID)
		return
	}

	var budget models.Budget
	if err := models.DB.First(&budget, id).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	if err := models.DB.Delete(&budget).Error; err != nil {
		renderError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "Budget deleted successfully",
	})
}
