// Package middleware provides the Gin middleware chain: panic recovery,
// request IDs, request logging, CORS, token authentication, and role
// enforcement.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/authctx"
	"github.com/ashishshah/live-attendance/internal/logger"
	"github.com/ashishshah/live-attendance/internal/token"
)

// AuthCookieName is the cookie carrying the access token.
const AuthCookieName = "access_token"

// Authenticate returns middleware that extracts the bearer token from the
// auth cookie or the Authorization header, verifies it as an access token,
// and attaches the resolved principal to the request context.
//
// Every failure produces the same generic 401; the specific verification
// failure is logged server-side only, so clients learn nothing about why a
// token was rejected.
func Authenticate(codec *token.Codec, log *logger.Logger) gin.HandlerFunc {
	authLog := log.WithComponent("auth-middleware")
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			abortUnauthenticated(c, authLog, "no token presented")
			return
		}

		claims, err := codec.Verify(raw, token.AudienceAccess)
		if err != nil {
			abortUnauthenticated(c, authLog, err.Error())
			return
		}

		principal := authctx.Principal{UserID: claims.UserID(), Role: claims.Role}
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), principal))
		c.Next()
	}
}

// extractToken pulls the raw token from the cookie, falling back to a
// "Bearer" Authorization header. Absence is not an error here; the caller
// decides what missing means.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthenticated(c *gin.Context, log *logger.Logger, reason string) {
	// The reason stays server-side. Clients get the generic 401.
	log.Debug("request rejected", logger.Fields(
		"path", c.Request.URL.Path,
		"reason", reason,
	))
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.Unauthorized("").ToResponse())
}
