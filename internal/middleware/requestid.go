package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID is a Gin middleware that attaches a unique identifier to each
// incoming HTTP request.
//
// Behavior:
//   - Reuses an inbound X-Request-ID header when the caller supplies one,
//     otherwise generates a new UUID (v4).
//   - Stores the id in the Gin context under the key "request_id".
//   - Echoes it back in the X-Request-ID response header so clients and
//     logs can be correlated.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
