package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id int64) (Note, error)
	// ListVisible returns public notes plus, when viewer is not nil, the viewer's own notes.
	ListVisible(ctx context.Context, viewer *uuid.UUID) ([]Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, id int64) error
}

// Note represents a stored note.
type Note struct {
	ID        int64
	OwnerID   uuid.UUID
	OwnerName string
	Title     string
	Content   *string
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref returns the ownership and visibility flags used for access decisions.
func (n Note) Ref() NoteRef {
	return NoteRef{OwnerID: n.OwnerID, IsPublic: n.IsPublic}
}

// NoteRef holds what access control needs to know about a note.
type NoteRef struct {
	OwnerID  uuid.UUID
	IsPublic bool
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	Title    string
	Content  *string
	IsPublic bool
}

// UpdateNoteParams contains fields to change on a note; nil fields are kept.
type UpdateNoteParams struct {
	Title    *string
	Content  *string
	IsPublic *bool
}
