package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
		r.DELETE("", DeleteTransaction)
	}

	// Edit endpoint
	{
		r.OPTIONS("/edit", OptionsTransactionEdit)
		r.PATCH("/edit", UpdateTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/edit [options]
func OptionsTransactionEdit(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	apiResponse
// @Failure		500			{object}	apiResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	if err := editable.validate(); err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	transaction := editable.model()
	err = models.DB.Create(&transaction).Error
	if err != nil {
		renderError(c, status(err), err)
		return
	}

	body := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{
		Success: true,
		Message: "Transaction added successfully",
		Body:    &body,
	})
}

// @Summary		List transactions
// @Description	Returns all transactions, most recently created first
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	apiResponse
// @Failure		500		{object}	apiResponse
// @Param			month	query		string	false	"Only transactions in this YYYY-MM month"
// @Param			search	query		string	false	"Search for this text in the description"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	month, monthSet, err := parseMonth(c)
	if err != nil {
		renderError(c, http.StatusBadRequest, err)
		return
	}

	// Ordering contract: most recently created first
	q := models.DB.Order("created_at DESC")

	if monthSet {
		start := time.Time(month)
		end := time.Time(month.AddDate(0, 1))
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		renderError(c, status(err), err)
		return
	}

	var search struct {
		Search string `form:"search"`
	}
	_ = c.Bind(&search)

	body := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if search.Search != "" {
			pattern := "*" + strings.ToLower(search.Search) + "*"
			if !glob.Glob(pattern, strings.ToLower(transaction.Description)) {
				continue
			}
		}

		body = append(body, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Success: true,
		Message: "Transactions fetched successfully",
		Body:    body,
	})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. All fields must be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	apiResponse
// @Failure		500			{object}	apiResponse
// @Param			transaction	body		TransactionUpdate	true	"Transaction with ID"
// @Router			/v1/transactions/edit [patch]
func UpdateTransaction(c *gin.Context) {
	var update TransactionUpdate

	err := httputil.BindData(c, &update)
	if err != nil {
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

	var transaction models.Transaction
	err = models.DB.First(&transaction, update.ID).Error
	if err != nil {
		// Unknown transaction IDs are a client error on this endpoint
		if errors.Is(err, models.ErrResourceNotFound) {
			renderError(c, http.StatusBadRequest, err)
			return
		}

		renderError(c, status(err), err)
		return
	}

	patch := update.model()
	transaction.Date = patch.Date
	transaction.Amount = patch.Amount
	transaction.Description = patch.Description
	transaction.Category = patch.Category

	err = models.DB.Save(&transaction).Error
	if err != nil {
		renderError(c, status(err), err)
		return
	}

	body := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{
		Success: true,
		Message: "Transaction updated successfully",
		Body:    &body,
	})
}

// @Summary		Delete transaction
// @Description	Deletes the transaction with the ID in the id query parameter
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	apiResponse
// @Failure		400	{object}	apiResponse
// @Failure		500	{object}	apiResponse
// @Param			id	query		string	true	"ID of the transaction to delete"
// @Router			/v1/transactions [delete]
func DeleteTransaction(c *gin.Context) {
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

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		// Unknown transaction IDs are a client error on this endpoint
		if errors.Is(err, models.ErrResourceNotFound) {
			renderError(c, http.StatusBadRequest, err)
			return
		}

		renderError(c, status(err), err)
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		renderError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "Transaction deleted successfully",
	})
}
