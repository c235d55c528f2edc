package dto

import (
	"strings"
	"time"

	authdomain "shop-backend/internal/auth/domain"
	"shop-backend/pkg/apperr"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate checks the request shape. Uniqueness and the confirmation match
// are checked by the usecase, in that order.
func (r RegisterRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := validation.Validate(r.Password, validation.Required); err != nil {
		return apperr.Validation("password: " + err.Error())
	}
	return nil
}

// UpdateUserRequest is a partial update: nil fields are left unchanged
type UpdateUserRequest struct {
	Email                *string `json:"email"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`

	// BindErr holds a body decoding failure, reported only once the caller
	// is known to own the target
	BindErr error `json:"-"`
}

func (r UpdateUserRequest) Validate() error {
	if r.BindErr != nil {
		return apperr.Validation("invalid request body")
	}
	if r.Email != nil {
		if err := ValidateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Password != nil {
		if err := validation.Validate(*r.Password, validation.Required); err != nil {
			return apperr.Validation("password: " + err.Error())
		}
	}
	return nil
}

// ValidateEmail returns apperr.ErrInvalidEmail unless email is a well-formed address
func ValidateEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return apperr.ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address before lookup or storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PublicUser is what anyone may see about an account
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserResponse is the account as seen by its owner
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Tokens    []string  `json:"tokens"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

func NewPublicUser(u *authdomain.User) PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

func NewPublicUsers(users []*authdomain.User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, NewPublicUser(u))
	}
	return out
}

func NewUserResponse(u *authdomain.User) *UserResponse {
	tokens := make([]string, 0, len(u.Tokens))
	tokens = append(tokens, u.Tokens...)
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Tokens:    tokens,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
