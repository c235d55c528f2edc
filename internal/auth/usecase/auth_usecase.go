package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	authdomain "shop-backend/internal/auth/domain"
	authdto "shop-backend/internal/auth/dto"
	"shop-backend/internal/auth/repository"
	"shop-backend/internal/auth/security"
	"shop-backend/pkg/apperr"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	log      *slog.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens TokenIssuer, log *slog.Logger) AuthUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With("component", "auth"),
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	req.Email = authdto.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal(err, "failed to look up email")
	}
	if existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	if req.Password != req.PasswordConfirmation {
		return nil, apperr.ErrPasswordMismatch
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err, "failed to hash password")
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Tokens:   []string{},
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, apperr.Internal(err, "failed to create user")
	}

	resp, err := u.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return resp, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	email := authdto.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err, "failed to look up user")
	}

	// unknown email and wrong password are indistinguishable to the caller
	if user == nil || !security.CheckPasswordHash(req.Password, user.Password) {
		u.log.DebugContext(ctx, "login rejected")
		return nil, apperr.ErrInvalidCredentials
	}

	resp, err := u.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "user logged in", "user_id", user.ID, "sessions", len(user.Tokens))
	return resp, nil
}

// openSession issues a token for user and appends it to the active sessions
func (u *authUsecase) openSession(ctx context.Context, user *authdomain.User) (*authdto.AuthResponse, error) {
	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to issue token")
	}

	if err := u.userRepo.AddToken(ctx, user.ID, token); err != nil {
		return nil, apperr.Internal(err, "failed to store session")
	}
	user.Tokens = append(user.Tokens, token)

	return &authdto.AuthResponse{
		User:  authdto.NewUserResponse(user),
		Token: token,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, session *authdomain.Session) (*authdomain.User, error) {
	if err := u.userRepo.ClearTokens(ctx, session.UserID()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, apperr.Internal(err, "failed to clear sessions")
	}

	user, err := u.userRepo.FindByID(ctx, session.UserID())
	if err != nil {
		return nil, apperr.Internal(err, "failed to load user")
	}
	if user == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if user.Tokens == nil {
		user.Tokens = []string{}
	}

	u.log.InfoContext(ctx, "user logged out", "user_id", user.ID)
	return user, nil
}

// Authenticate runs three checks, each failing with the same generic error:
// the bearer token verifies, its user exists, and the token is still an active session.
func (u *authUsecase) Authenticate(ctx context.Context, authorization string) (*authdomain.Session, error) {
	token, ok := extractBearerToken(authorization)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	userID, err := u.tokens.Verify(token)
	if err != nil {
		u.log.DebugContext(ctx, "token rejected", "error", err)
		return nil, apperr.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByIDAndToken(ctx, userID, token)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load session")
	}
	if user == nil {
		u.log.DebugContext(ctx, "inactive session", "user_id", userID)
		return nil, apperr.ErrUnauthenticated
	}

	return &authdomain.Session{User: user, Token: token}, nil
}

// extractBearerToken parses "Bearer <token>". The scheme is case-insensitive.
func extractBearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func (u *authUsecase) ListUsers(ctx context.Context) ([]*authdomain.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list users")
	}
	return users, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load user")
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (u *authUsecase) UpdateUser(ctx context.Context, session *authdomain.Session, id string, req *authdto.UpdateUserRequest) (*authdomain.User, error) {
	if session.UserID() != id {
		return nil, apperr.ErrUnauthorized
	}

	if req.Email != nil {
		email := authdto.NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var upd repository.UserUpdate

	if req.Email != nil {
		existing, err := u.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperr.Internal(err, "failed to look up email")
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.ErrEmailTaken
		}
		upd.Email = req.Email
	}

	if req.Password != nil {
		if req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password {
			return nil, apperr.ErrPasswordMismatch
		}
		hashedPassword, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, apperr.Internal(err, "failed to hash password")
		}
		upd.Password = &hashedPassword
	}

	// the session snapshot may be stale, so only the requested fields are written
	user, err := u.userRepo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperr.ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound("user")
		default:
			return nil, apperr.Internal(err, "failed to update user")
		}
	}

	return user, nil
}

func (u *authUsecase) DeleteUser(ctx context.Context, session *authdomain.Session, id string) (*authdomain.User, error) {
	if session.UserID() != id {
		return nil, apperr.ErrUnauthorized
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Internal(err, "failed to delete user")
	}

	u.log.InfoContext(ctx, "user deleted", "user_id", id)
	return session.User.Clone(), nil
}
