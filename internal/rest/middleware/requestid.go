package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/types"
)

// RequestIDMiddleware attaches a request id to the context and echoes it
// in the response headers. An inbound X-Request-ID is honored.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
