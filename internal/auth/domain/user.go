package domain

import (
	"slices"
	"time"
)

// User is a registered account together with its active session tokens.
// Every entry of Tokens is an independent session (one per device).
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	Tokens    []string  `json:"tokens" gorm:"serializer:json;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasToken reports whether token is one of the user's active sessions
func (u *User) HasToken(token string) bool {
	return token != "" && slices.Contains(u.Tokens, token)
}

// Clone returns a deep copy so callers can mutate it freely
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Tokens = slices.Clone(u.Tokens)
	return &cp
}

// Session is an authenticated principal and the raw token it presented
type Session struct {
	User  *User
	Token string
}

// UserID returns the principal's id
func (s *Session) UserID() string {
	return s.User.ID
}
