package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents session JWT claims. The user id travels in "sub".
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

const typeSession = "session"

var (
	// ErrEmptySecret is returned when the signing key is not configured.
	ErrEmptySecret = errors.New("session secret is empty")
	// ErrNonPositiveTTL is returned when the session lifetime is not positive.
	ErrNonPositiveTTL = errors.New("session ttl must be positive")
)

var _ model.SessionManager = (*JWT)(nil)

// JWT implements SessionManager with HMAC-signed tokens.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// Option configures JWT.
type Option func(*JWT)

// WithClock replaces the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a session manager signing with secretKey.
// Tokens are valid for ttl after issuance.
func NewJWT(secretKey string, ttl time.Duration, opts ...Option) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, ErrNonPositiveTTL
	}

	j := &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

// Issue creates a session token for the user.
func (j *JWT) Issue(userID uuid.UUID) (string, model.Session, error) {
	if userID == uuid.Nil {
		return "", model.Session{}, fmt.Errorf("cannot issue session for nil user id")
	}

	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		TokenType: typeSession,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", model.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, model.Session{
		UserID:    userID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Decode verifies the token signature, expiry and type and returns its session.
func (j *JWT) Decode(tokenString string) (model.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return model.Session{}, fmt.Errorf("session token is invalid")
	}
	if claims.TokenType != typeSession {
		return model.Session{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return model.Session{}, fmt.Errorf("session token has invalid subject")
	}

	session := model.Session{UserID: userID, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}

// Resolve returns the subject the token authenticates.
// Missing, malformed, forged or expired tokens resolve to an anonymous subject.
func (j *JWT) Resolve(tokenString string) model.Subject {
	if tokenString == "" {
		return model.Anonymous()
	}

	session, err := j.Decode(tokenString)
	if err != nil {
		return model.Anonymous()
	}

	return model.Authenticated(session.UserID)
}
