package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/authctx"
	"github.com/ashishshah/live-attendance/internal/user"
)

// RequireRole returns middleware that allows the request through only when
// the authenticated principal holds exactly the expected role. It must run
// after Authenticate; a missing principal is treated as unauthenticated, not
// as a server bug. A role mismatch answers 403: the caller is authenticated,
// just not allowed.
func RequireRole(expected user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authctx.Get(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.Unauthorized("").ToResponse())
			return
		}
		if principal.Role != expected {
			reason := fmt.Sprintf("Forbidden, %s access required", expected)
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.Forbidden(reason).ToResponse())
			return
		}
		c.Next()
	}
}

// RequireTeacher gates an operation to teachers.
func RequireTeacher() gin.HandlerFunc { return RequireRole(user.RoleTeacher) }

// RequireStudent gates an operation to students.
func RequireStudent() gin.HandlerFunc { return RequireRole(user.RoleStudent) }
