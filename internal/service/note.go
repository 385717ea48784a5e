package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

// Note serves note operations after checking them against the access controller.
type Note struct {
	noteStore model.NoteStore
	access    model.AccessController
	logger    *logger.Logger
}

func NewNote(
	noteStore model.NoteStore,
	access model.AccessController,
	logger *logger.Logger,
) *Note {
	return &Note{
		noteStore: noteStore,
		access:    access,
		logger:    logger,
	}
}

// Create stores a note owned by the subject.
func (s *Note) Create(ctx context.Context, subject model.Subject, params model.CreateNoteParams) (model.Note, error) {
	ownerID, ok := subject.UserID()
	if !ok {
		return model.Note{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(params.Title) == "" {
		return model.Note{}, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}

	note, err := s.noteStore.Create(ctx, model.Note{
		OwnerID:  ownerID,
		Title:    params.Title,
		Content:  params.Content,
		IsPublic: params.IsPublic,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", ownerID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created",
		"note_id", note.ID,
		"user_id", ownerID,
		"is_public", note.IsPublic)

	return note, nil
}

// Get returns the note if the subject may read it.
func (s *Note) Get(ctx context.Context, subject model.Subject, id int64) (model.Note, error) {
	return s.load(ctx, subject, id, model.OperationRead)
}

// List returns public notes and the subject's own notes.
func (s *Note) List(ctx context.Context, subject model.Subject) ([]model.Note, error) {
	var viewer *uuid.UUID
	if userID, ok := subject.UserID(); ok {
		viewer = &userID
	}

	notes, err := s.noteStore.ListVisible(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// Update changes the non-nil fields of a note owned by the subject.
func (s *Note) Update(ctx context.Context, subject model.Subject, id int64, params model.UpdateNoteParams) (model.Note, error) {
	if subject.IsAnonymous() {
		return model.Note{}, model.ErrUnauthenticated
	}

	note, err := s.load(ctx, subject, id, model.OperationWrite)
	if err != nil {
		return model.Note{}, err
	}

	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return model.Note{}, fmt.Errorf("%w: title must not be empty", model.ErrInvalidInput)
		}
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = params.Content
	}
	if params.IsPublic != nil {
		note.IsPublic = *params.IsPublic
	}

	updated, err := s.noteStore.Update(ctx, note)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	s.logger.Info("Note service: note updated",
		"note_id", updated.ID,
		"user_id", subject,
		"is_public", updated.IsPublic)

	return updated, nil
}

// Delete removes a note owned by the subject and returns it.
func (s *Note) Delete(ctx context.Context, subject model.Subject, id int64) (model.Note, error) {
	if subject.IsAnonymous() {
		return model.Note{}, model.ErrUnauthenticated
	}

	note, err := s.load(ctx, subject, id, model.OperationDelete)
	if err != nil {
		return model.Note{}, err
	}

	if err := s.noteStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note deleted",
		"note_id", id,
		"user_id", subject)

	return note, nil
}

// load fetches the note, reporting ErrNotFound before consulting access control.
func (s *Note) load(ctx context.Context, subject model.Subject, id int64, op model.Operation) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, model.ErrNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	if s.access.Authorize(subject, note.Ref(), op) != model.Allow {
		s.logger.Info("Note service: access denied",
			"note_id", id,
			"subject", subject,
			"operation", op)
		return model.Note{}, model.ErrAccessDenied
	}

	return note, nil
}
