package authctx

import (
	"context"
	"errors"
	"testing"

	"github.com/ashishshah/live-attendance/internal/user"
)

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()

	if _, ok := Get(ctx); ok {
		t.Fatal("expected no principal on fresh context")
	}

	p := Principal{UserID: "u-1", Role: user.RoleTeacher}
	ctx = Set(ctx, p)

	got, ok := Get(ctx)
	if !ok {
		t.Fatal("expected principal after Set")
	}
	if got.UserID != "u-1" || got.Role != user.RoleTeacher {
		t.Errorf("unexpected principal: %+v", got)
	}
}

func TestGetOrError(t *testing.T) {
	_, err := GetOrError(context.Background())
	if !errors.Is(err, ErrNoPrincipal) {
		t.Fatalf("expected ErrNoPrincipal, got %v", err)
	}

	ctx := Set(context.Background(), Principal{UserID: "u-2", Role: user.RoleStudent})
	p, err := GetOrError(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != "u-2" {
		t.Errorf("expected u-2, got %s", p.UserID)
	}
}
