package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookingnest-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error envelope used across all endpoints.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Raw sends a payload received from an upstream service verbatim.
func Raw(c *gin.Context, status int, payload json.RawMessage) {
	c.Data(status, "application/json", payload)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{Error: appErr.Message})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
