package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/authctx"
	"github.com/ashishshah/live-attendance/internal/classes"
	"github.com/ashishshah/live-attendance/internal/server"
	"github.com/ashishshah/live-attendance/internal/validation"
)

// ClassesHandler serves the class and attendance endpoints. Role enforcement
// happens in the middleware chain; these handlers assume it already ran.
type ClassesHandler struct {
	svc *classes.Service
}

// NewClassesHandler creates the classes handler.
func NewClassesHandler(svc *classes.Service) *ClassesHandler {
	return &ClassesHandler{svc: svc}
}

type createClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type recordAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
}

// Create handles POST /api/v1/classes (teacher only).
func (h *ClassesHandler) Create(c *gin.Context) {
	principal, err := authctx.GetOrError(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	class, err := h.svc.CreateClass(c.Request.Context(), req.Name, principal.UserID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, gin.H{"class": class})
}

// RecordAttendance handles POST /api/v1/classes/:id/attendance (teacher only).
func (h *ClassesHandler) RecordAttendance(c *gin.Context) {
	var req recordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	rec, err := h.svc.RecordAttendance(c.Request.Context(), c.Param("id"), req.StudentID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, gin.H{"attendance": rec})
}

// MyAttendance handles GET /api/v1/attendance (student only).
func (h *ClassesHandler) MyAttendance(c *gin.Context) {
	principal, err := authctx.GetOrError(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}

	recs, err := h.svc.ListAttendance(c.Request.Context(), principal.UserID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"attendance": recs})
}
