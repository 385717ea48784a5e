package context

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/model"
)

type subjectKey struct{}

// Manager stores the request subject in a context.
// The subject is kept as a context value, never in metadata, so a client
// cannot supply it.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSubjectToContext returns a copy of ctx carrying subject.
func (m *Manager) SetSubjectToContext(ctx context.Context, subject model.Subject) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// GetSubjectFromContext returns the stored subject, or an anonymous one if none was set.
func (m *Manager) GetSubjectFromContext(ctx context.Context) model.Subject {
	subject, ok := ctx.Value(subjectKey{}).(model.Subject)
	if !ok {
		return model.Anonymous()
	}
	return subject
}
