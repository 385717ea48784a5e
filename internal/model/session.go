package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the decoded content of a session token.
type Session struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionManager issues and resolves session tokens.
type SessionManager interface {
	Issue(userID uuid.UUID) (string, Session, error)
	Decode(token string) (Session, error)
	Resolve(token string) Subject
}

// Subject is the identity a request acts as: a user or nobody.
type Subject struct {
	userID        uuid.UUID
	authenticated bool
}

// Anonymous returns a subject without a session.
func Anonymous() Subject {
	return Subject{}
}

// Authenticated returns a subject acting as the given user.
func Authenticated(userID uuid.UUID) Subject {
	if userID == uuid.Nil {
		return Subject{}
	}
	return Subject{userID: userID, authenticated: true}
}

// UserID returns the subject's user id and whether the subject is authenticated.
func (s Subject) UserID() (uuid.UUID, bool) {
	return s.userID, s.authenticated
}

// IsAnonymous reports whether the subject has no session.
func (s Subject) IsAnonymous() bool {
	return !s.authenticated
}

// Is reports whether the subject is the authenticated user with the given id.
func (s Subject) Is(userID uuid.UUID) bool {
	return s.authenticated && s.userID == userID
}

func (s Subject) String() string {
	if !s.authenticated {
		return "anonymous"
	}
	return s.userID.String()
}

// LoginResult is returned by a successful session-issuing login.
type LoginResult struct {
	User    UserSummary
	Token   string
	Session Session
}
