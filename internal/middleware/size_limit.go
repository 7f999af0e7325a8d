package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes bounds JSON request bodies.
const DefaultMaxBodyBytes int64 = 1 << 20

// SizeLimit caps the request body at maxBodyBytes. Reading past it makes
// binding fail, which handlers answer with 400. Requests announcing a larger
// body are rejected upfront with 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Request body too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
