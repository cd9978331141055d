package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request id in both directions
const RequestIDHeader = "X-Request-ID"

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Content-Type", RequestIDHeader}
)

// CORS allows browser clients from any origin, or only from origins when
// the list is non-empty and contains no "*". Preflights are answered with
// 200 and no body.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:              corsMethods,
		AllowHeaders:              corsHeaders,
		ExposeHeaders:             []string{RequestIDHeader},
		AllowCredentials:          false,
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if allowAll(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// Preflight answers OPTIONS requests that carry no Origin header and so
// are not handled by the CORS middleware. The policy headers are set
// anyway so plain clients see what a browser would.
func Preflight(origins []string) gin.HandlerFunc {
	wildcard := allowAll(origins)
	methods := strings.Join(corsMethods, ", ")
	headers := strings.Join(corsHeaders, ", ")

	return func(c *gin.Context) {
		if wildcard {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Status(http.StatusOK)
	}
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
