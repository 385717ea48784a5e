package model

import "context"

// ContextManager carries the request subject through a context.
type ContextManager interface {
	SetSubjectToContext(ctx context.Context, subject Subject) context.Context
	GetSubjectFromContext(ctx context.Context) Subject
}
