package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/password-feedback/internal/domain/error"
	"github.com/finance-tracker/password-feedback/internal/integration/entrypoint/dto"
)

// ErrorHandler renders errors attached to the context with c.Error.
// A *FeedbackError becomes an ErrorResponse carrying its code; anything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var feedbackErr *domainerror.FeedbackError
		if errors.As(err, &feedbackErr) {
			c.JSON(statusForCode(feedbackErr.Code), dto.ErrorResponse{
				Error: feedbackErr.Message,
				Code:  string(feedbackErr.Code),
			})
			return
		}

		slog.Error("Unhandled request error",
			"error", err,
			"request_id", GetRequestID(c),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}

// statusForCode maps feedback error codes to HTTP status codes.
func statusForCode(code domainerror.FeedbackErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeLimiterUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
