package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campusos/internal/ai"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID echoes a caller supplied X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// ClientIdentity keys the chat quota on the client IP. Forwarding headers
// only count when the engine trusts the proxy that sent them.
func ClientIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.ClientIP()
		c.Request = c.Request.WithContext(ai.WithClientID(c.Request.Context(), id))
		c.Next()
	}
}
