package repository

import (
	"context"
	"errors"

	authdomain "shop-backend/internal/auth/domain"
)

var (
	// ErrNotFound is returned by mutations whose target does not exist.
	// Lookups return (nil, nil) instead.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the unique email constraint is violated
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserUpdate names the fields an update writes. Nil fields keep their stored value.
type UserUpdate struct {
	Email    *string
	Password *string // bcrypt hash
}

// UserRepository is the credential store
type UserRepository interface {
	// Create assigns an id and timestamps and persists the user
	Create(ctx context.Context, user *authdomain.User) error

	// FindByID returns nil when id is unknown or malformed for the store
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)

	// FindByIDAndToken returns the user only when token is among its active sessions
	FindByIDAndToken(ctx context.Context, id, token string) (*authdomain.User, error)

	List(ctx context.Context) ([]*authdomain.User, error)

	// Update writes only the fields set in upd and returns the stored user.
	// Active tokens are left untouched.
	Update(ctx context.Context, id string, upd UserUpdate) (*authdomain.User, error)

	// AddToken appends token to the user's active sessions
	AddToken(ctx context.Context, id, token string) error

	// ClearTokens removes every active session of the user
	ClearTokens(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}
