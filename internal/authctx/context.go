// Package authctx propagates the authenticated principal through a request's
// context. The principal is attached once by the authentication middleware
// and is scoped to a single request; it is never shared or persisted.
package authctx

import (
	"context"
	"errors"

	"github.com/ashishshah/live-attendance/internal/user"
)

// Principal is the identity resolved from a verified access token.
type Principal struct {
	UserID string
	Role   user.Role
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// ErrNoPrincipal is returned when no principal is attached to the context.
var ErrNoPrincipal = errors.New("authctx: no principal in context")

// Set attaches the principal to the context.
func Set(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Get retrieves the principal from the context.
func Get(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// GetOrError retrieves the principal, returning ErrNoPrincipal if absent.
func GetOrError(ctx context.Context) (Principal, error) {
	p, ok := Get(ctx)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
