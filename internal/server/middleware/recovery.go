package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/logger"
)

// Recovery returns middleware that recovers from panics, logs the stack, and
// answers a generic 500. Raw panic text never reaches the client.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	recLog := log.WithComponent("recovery")
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				recLog.Error("panic recovered", logger.Fields(
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apperrors.Internal(fmt.Errorf("%v", err)).ToResponse())
			}
		}()
		c.Next()
	}
}
