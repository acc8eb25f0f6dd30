package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is where the request id middleware stores the id echoed in every envelope.
const RequestIDKey = "request_id"

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func envelope[T any](ctx *gin.Context, status int, ok bool, message string) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(RequestIDKey),
		Success:   ok,
		Message:   message,
	}
}

// Success writes a success envelope (200 when status is 0) and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	res := envelope[T](ctx, status, true, message)
	res.Data = data
	res.Meta = meta
	ctx.JSON(status, res)
	return res
}

// Error writes an error envelope (400 when status is 0) and returns it.
// err carries field details only; never pass a raw cause here.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	res := envelope[T](ctx, status, false, message)
	res.Error = err
	ctx.JSON(status, res)
	return res
}

// Abort writes an error envelope and stops the handler chain. For middleware.
func Abort(ctx *gin.Context, status int, message string) {
	Error[any](ctx, status, message, nil)
	ctx.Abort()
}
