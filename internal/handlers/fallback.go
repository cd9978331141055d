package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AllowedMethods maps a route to its Allow header value
type AllowedMethods map[string][]string

// MethodNotAllowed builds the gin NoMethod handler. Known routes get a
// message naming the accepted verb.
func MethodNotAllowed(allowed AllowedMethods) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimRight(c.Request.URL.Path, "/")
		if methods, ok := allowed[path]; ok {
			c.Header("Allow", strings.Join(methods, ", "))
		}
		respondError(c, http.StatusMethodNotAllowed, methodNotAllowedMessage(allowed[path]))
	}
}

// NotFound is the gin NoRoute handler
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, MsgNotFound)
}

func methodNotAllowedMessage(methods []string) string {
	var primary []string
	for _, m := range methods {
		if m != http.MethodOptions {
			primary = append(primary, m)
		}
	}
	if len(primary) != 1 {
		return MsgMethodNotAllowed
	}

	switch primary[0] {
	case http.MethodGet:
		return MsgOnlyGetAccepted
	case http.MethodPost:
		return MsgOnlyPostAccepted
	default:
		return MsgMethodNotAllowed
	}
}
