package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Error     string    `json:"error"`
	Details   any       `json:"details,omitempty"`
}

// JSON writes data as the bare response body.
func JSON[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// NewError builds an error body without writing it.
func NewError(ctx *gin.Context, status int, message string, details any) ErrorResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return ErrorResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Error:     message,
		Details:   details,
	}
}

// Error writes an error body and aborts the handler chain.
func Error(ctx *gin.Context, status int, message string, details any) {
	resp := NewError(ctx, status, message, details)
	ctx.AbortWithStatusJSON(resp.Status, resp)
}

// InternalError hides the cause behind a generic message.
func InternalError(ctx *gin.Context) {
	Error(ctx, http.StatusInternalServerError, "internal server error", nil)
}
