package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsverify/api-backend/internal/models"
)

// MsgInternalError is the body of every unexpected 500
const MsgInternalError = "Internal server error"

// Recovery turns a panic into the structured 500 body.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse(MsgInternalError))
	})
}
