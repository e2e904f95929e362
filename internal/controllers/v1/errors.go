// Package v1 implements the v1 API of the finance tracker.
package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var (
	errIDParameterRequired = errors.New("the id query parameter must be set")
	errIDFieldRequired     = errors.New("the id field must be set")
	errInvalidUUID         = errors.New("the specified resource ID is not a valid UUID")
	errMonthInvalid        = errors.New("the month must be in YYYY-MM format")
	errDateInvalid         = errors.New("the date must be a valid YYYY-MM-DD calendar date")
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// renderError writes the uniform error envelope.
func renderError(c *gin.Context, status int, err error) {
	c.JSON(status, apiResponse{
		Success: false,
		Message: err.Error(),
	})
}
