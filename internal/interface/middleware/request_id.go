package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with a UUID, echoed in the envelope and the X-Request-ID header.
// A well-formed inbound id is kept so traces can span the proxy.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
