// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"github.com/dtroode/noteshare-server/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost existing user hashes were created with.
const DefaultCost = 10

// maxLength is the number of bytes bcrypt takes into account.
const maxLength = 72

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher on top of bcrypt.
type Bcrypt struct {
	cost  int
	dummy string
}

// NewBcrypt creates a hasher with the given cost.
// It fails when the cost is outside the range bcrypt accepts.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Bcrypt{cost: cost, dummy: string(dummy)}, nil
}

// Hash returns a salted bcrypt digest of plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: password is required", model.ErrInvalidInput)
	}
	if len(plaintext) > maxLength {
		return "", fmt.Errorf("%w: password must be at most %d bytes", model.ErrInvalidInput, maxLength)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %s", model.ErrInvalidInput, err.Error())
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest.
// A malformed digest never matches, and neither does a plaintext longer than
// maxLength: bcrypt would compare only its prefix.
func (b *Bcrypt) Verify(plaintext, digest string) bool {
	if len(plaintext) > maxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Dummy returns a valid digest that matches no user password.
func (b *Bcrypt) Dummy() string {
	return b.dummy
}
