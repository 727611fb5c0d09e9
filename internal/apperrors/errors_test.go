package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_InvalidCredentials(t *testing.T) {
	err := InvalidCredentials()
	if err.Code != ErrCodeInvalidCredentials {
		t.Errorf("expected INVALID_CREDENTIALS, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
	if err.Message != "Email or password is incorrect" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_Forbidden(t *testing.T) {
	err := Forbidden("teacher access required")
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", err.HTTPStatus)
	}
	if err.Message != "teacher access required" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAppError_Dependency(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Dependency("user store", cause)
	if err.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", err.HTTPStatus)
	}
	if !err.Retryable {
		t.Error("dependency errors should be retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
}

func TestAppError_Config_HidesCause(t *testing.T) {
	err := Config(fmt.Errorf("jwt secret is empty"))
	resp := err.ToResponse()
	if resp.Error.Message != "Service is temporarily unavailable." {
		t.Errorf("config error must not leak detail, got %q", resp.Error.Message)
	}
	if resp.Error.Code != ErrCodeConfig {
		t.Errorf("expected CONFIG_ERROR, got %s", resp.Error.Code)
	}
}

func TestAppError_ToResponse_DropsCause(t *testing.T) {
	err := NotFound("user").WithCause(fmt.Errorf("record not found in table users"))
	resp := err.ToResponse()
	if resp.Error.Message != "The requested user was not found." {
		t.Errorf("unexpected message: %q", resp.Error.Message)
	}
}

func TestAsAppError(t *testing.T) {
	inner := Conflict("user")
	wrapped := fmt.Errorf("signup: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if appErr.Code != ErrCodeAlreadyExists {
		t.Errorf("expected ALREADY_EXISTS, got %s", appErr.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("plain error should not convert")
	}
}
