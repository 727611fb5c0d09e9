package user

import (
	"context"
	"errors"
)

// Store errors. Anything else returned by a Store implementation is treated
// as a dependency failure by callers.
var (
	// ErrNotFound indicates no user matches the lookup key.
	ErrNotFound = errors.New("user: not found")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("user: email already registered")
)

// Store is the credential store adapter. Implementations must be safe for
// concurrent use by multiple in-flight requests. Callers impose timeouts via
// the context.
type Store interface {
	// Create persists a new user. Returns ErrDuplicateEmail if the email is
	// already registered.
	Create(ctx context.Context, u *User) error

	// FindByEmail looks up a user by exact (already normalized) email.
	// Returns ErrNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID looks up a user by id. Returns ErrNotFound if absent.
	FindByID(ctx context.Context, id string) (*User, error)
}
