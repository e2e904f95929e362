package v1

import (
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// apiResponse is the uniform envelope for responses without a body.
type apiResponse struct {
	Success bool   `json:"success" example:"false"`                            // Whether the request succeeded
	Message string `json:"message" example:"the id query parameter must be set"` // Human readable description of the result
}

// URIQueryID is the id query parameter used by the delete endpoints.
type URIQueryID struct {
	ID string `form:"id"` // ID of the resource
}

// QueryMonth is the month query parameter used by the report endpoints and
// list filters.
type QueryMonth struct {
	Month string `form:"month" example:"2024-01"` // Year and month in YYYY-MM format
}

// parseMonth returns the month from the query. The second return value
// reports whether the parameter was set at all.
func parseMonth(c *gin.Context) (types.Month, bool, error) {
	var query QueryMonth
	_ = c.Bind(&query)

	if query.Month == "" {
		return types.Month{}, false, nil
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return types.Month{}, true, errMonthInvalid
	}

	return month, true, nil
}
