package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/logger"
)

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into the JSON
// error envelope, mapping the error classification to an HTTP status.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := statusOf(err)
		if status >= 500 {
			log.Errorw("request failed", "error", err, "path", c.Request.URL.Path)
		}

		c.JSON(status, ErrorResponse{
			Error: ErrorBody{
				Message: ierr.HintOf(err),
				Details: ierr.DetailsOf(err),
			},
		})
	}
}

func statusOf(err error) int {
	switch {
	case ierr.IsValidation(err):
		return http.StatusBadRequest
	case ierr.IsNotFound(err):
		return http.StatusNotFound
	case ierr.IsAlreadyExists(err):
		return http.StatusConflict
	case ierr.IsInvalidOperation(err):
		return http.StatusUnprocessableEntity
	case ierr.IsPermissionDenied(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
