package validation

import (
	"testing"

	"github.com/ashishshah/live-attendance/internal/apperrors"
)

type signupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

func TestValidate_OK(t *testing.T) {
	p := signupPayload{Email: "a@x.com", Password: "Secret123!", Role: "student"}
	if err := Validate(p); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidate_BadEmail(t *testing.T) {
	p := signupPayload{Email: "not-an-email", Password: "Secret123!", Role: "student"}
	err := Validate(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
}

func TestValidate_ShortPassword(t *testing.T) {
	p := signupPayload{Email: "a@x.com", Password: "short", Role: "student"}
	err := Validate(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, _ := apperrors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error, got %v", appErr.Details)
	}
	if fields[0].Field != "password" {
		t.Errorf("expected field password, got %s", fields[0].Field)
	}
}

func TestValidate_UnknownRole(t *testing.T) {
	p := signupPayload{Email: "a@x.com", Password: "Secret123!", Role: "admin"}
	if err := Validate(p); err == nil {
		t.Fatal("expected validation error for unknown role")
	}
}
