package middleware

import (
	"net/http" // MaxBytesReader

	"github.com/gin-gonic/gin" // Gin web framework
)

// BodySizeLimitMiddleware caps the request body size. Reads past the limit
// fail inside the handler's body parsing.
func BodySizeLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
