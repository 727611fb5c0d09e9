// Package handler exposes the HTTP surface over the auth and classes
// services and wires the route table.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/auth"
	"github.com/ashishshah/live-attendance/internal/authctx"
	"github.com/ashishshah/live-attendance/internal/server"
	srvmw "github.com/ashishshah/live-attendance/internal/server/middleware"
	"github.com/ashishshah/live-attendance/internal/user"
	"github.com/ashishshah/live-attendance/internal/validation"
)

// accessCookieMaxAge matches the access token TTL.
const accessCookieMaxAge = 24 * 60 * 60

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	svc           *auth.Service
	secureCookies bool
}

// NewAuthHandler creates the authentication handler.
func NewAuthHandler(svc *auth.Service, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookies: secureCookies}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles POST /api/v1/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	res, err := h.svc.Signup(c.Request.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h.setAuthCookie(c, res.AccessToken)
	server.RespondCreated(c, res)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h.setAuthCookie(c, res.AccessToken)
	server.RespondOK(c, res)
}

// Me handles GET /api/v1/auth/me. Runs behind the Authenticate middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	principal, err := authctx.GetOrError(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	detail, err := h.svc.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"user": detail})
}

// Logout handles POST /api/v1/auth/logout by clearing the auth cookie.
// Tokens are stateless, so there is nothing server-side to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(srvmw.AuthCookieName, "", -1, "/", "", h.secureCookies, true)
	server.RespondNoContent(c)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, accessToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(srvmw.AuthCookieName, accessToken, accessCookieMaxAge, "/", "", h.secureCookies, true)
}
