package usecase

import (
	"context"

	authdomain "shop-backend/internal/auth/domain"
	authdto "shop-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for account and session business logic
type AuthUsecase interface {
	// Register creates an account and logs it in
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login opens an additional session for an existing account
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// Logout ends every session of the principal
	Logout(ctx context.Context, session *authdomain.Session) (*authdomain.User, error)

	// Authenticate resolves an Authorization header into a session
	Authenticate(ctx context.Context, authorization string) (*authdomain.Session, error)

	ListUsers(ctx context.Context) ([]*authdomain.User, error)

	GetUser(ctx context.Context, id string) (*authdomain.User, error)

	// UpdateUser changes the principal's own email and/or password
	UpdateUser(ctx context.Context, session *authdomain.Session, id string, req *authdto.UpdateUserRequest) (*authdomain.User, error)

	// DeleteUser removes the principal's own account
	DeleteUser(ctx context.Context, session *authdomain.Session, id string) (*authdomain.User, error)
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
