package middleware

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
)

// SessionResolver turns a session token into a subject.
type SessionResolver interface {
	Resolve(token string) model.Subject
}

// Authenticate resolves the optional bearer token and injects the subject into context.
// A missing or invalid token is not an error: the request continues as anonymous.
type Authenticate struct {
	sessions       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// AuthFunc is an auth.AuthFunc that never rejects a request.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	subject := SubjectFromMetadata(ctx, m.sessions)
	if subject.IsAnonymous() {
		m.logger.Debug("Authenticate middleware: anonymous request")
	}

	return m.contextManager.SetSubjectToContext(ctx, subject), nil
}

// SubjectFromMetadata reads "authorization: Bearer <token>" from incoming
// metadata and resolves it. Anything else yields an anonymous subject.
func SubjectFromMetadata(ctx context.Context, sessions SessionResolver) model.Subject {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil || token == "" {
		return model.Anonymous()
	}
	return sessions.Resolve(token)
}
