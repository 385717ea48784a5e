package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary strips authentication material from the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}

// UserSummary is the public view of a user returned to callers.
type UserSummary struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Credentials is an email/password pair presented at signup or login.
type Credentials struct {
	Email    string
	Password string
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
	Dummy() string
}

// RegisterParams contains parameters to sign up a user.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}
