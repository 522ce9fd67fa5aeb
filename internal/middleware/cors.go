package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists the origins permitted to call the API.
	// A single "*" entry allows any origin.
	AllowedOrigins []string
}

// CORS returns middleware that answers preflight requests and sets the
// response headers browsers need for cross-origin access.
func CORS(config CORSConfig) gin.HandlerFunc {
	allowAny := false
	allowedSet := make(map[string]bool)
	for _, origin := range config.AllowedOrigins {
		normalized := strings.TrimSuffix(strings.ToLower(origin), "/")
		if normalized == "*" {
			allowAny = true
			continue
		}
		allowedSet[normalized] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowAny {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if allowedSet[strings.TrimSuffix(strings.ToLower(origin), "/")] {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
