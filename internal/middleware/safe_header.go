package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SafeHeader adds security related headers to each response. Paths under
// one of relaxed (the swagger UI) keep working scripts and caching.
func SafeHeader(relaxed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		if !hasAnyPrefix(c.Request.URL.Path, relaxed) {
			c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
