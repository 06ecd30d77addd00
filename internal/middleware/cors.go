package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins are allowed to call the API from a browser.
type CORSConfig struct {
	Environment    string
	AllowedOrigins []string
}

// DefaultCORSConfig returns the CORS configuration for the given environment.
// Production only allows the known frontend origins; everything else is
// permissive so local development and preview deployments work.
func DefaultCORSConfig(environment string) CORSConfig {
	cfg := CORSConfig{Environment: environment}
	if environment == "production" {
		cfg.AllowedOrigins = []string{
			"https://app.repruv.com",
			"https://repruv.com",
		}
	}
	return cfg
}

// CORS returns a middleware that sets CORS headers and answers preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(cfg, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept-Language")
			c.Header("Access-Control-Max-Age", "3600")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg CORSConfig, origin string) bool {
	if cfg.Environment != "production" {
		// Permissive outside production: localhost and private-subnet origins.
		return strings.HasPrefix(origin, "http://localhost") ||
			strings.HasPrefix(origin, "http://127.0.0.1") ||
			strings.HasPrefix(origin, "http://192.168.") ||
			strings.HasPrefix(origin, "http://10.") ||
			strings.HasSuffix(origin, ".repruv.com")
	}

	for _, allowed := range cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
