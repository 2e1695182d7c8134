package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate/internal/shared/errors"
)

// ErrorBody is the wire shape for every error response: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// SearchResponse is the wire shape of a paginated search result.
type SearchResponse struct {
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Pages int         `json:"pages"`
	Items interface{} `json:"items"`
}

// OKResponse sends a 200 with the given payload.
func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse sends an error response with custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError maps an error to its HTTP status and wire body.
// AppError carries its own status; anything else becomes a generic 500 so
// internal details never reach the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}
