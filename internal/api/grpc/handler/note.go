package handler

import (
	"context"

	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"google.golang.org/protobuf/types/known/emptypb"
)

// NoteService defines note operations performed on behalf of a subject.
type NoteService interface {
	Create(ctx context.Context, subject model.Subject, params model.CreateNoteParams) (model.Note, error)
	Get(ctx context.Context, subject model.Subject, id int64) (model.Note, error)
	List(ctx context.Context, subject model.Subject) ([]model.Note, error)
	Update(ctx context.Context, subject model.Subject, id int64, params model.UpdateNoteParams) (model.Note, error)
	Delete(ctx context.Context, subject model.Subject, id int64) (model.Note, error)
}

// Note handles gRPC endpoints for notes.
type Note struct {
	notesv1.UnimplementedNotesServer
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Note) CreateNote(ctx context.Context, req *notesv1.CreateNoteRequest) (*notesv1.Note, error) {
	subject := h.contextManager.GetSubjectFromContext(ctx)

	note, err := h.noteService.Create(ctx, subject, model.CreateNoteParams{
		Title:    req.GetTitle(),
		Content:  req.Content,
		IsPublic: req.GetIsPublic(),
	})
	if err != nil {
		h.logger.Info("Note handler: create note failed",
			"subject", subject,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertNote(note), nil
}

func (h *Note) GetNote(ctx context.Context, req *notesv1.GetNoteRequest) (*notesv1.Note, error) {
	subject := h.contextManager.GetSubjectFromContext(ctx)

	note, err := h.noteService.Get(ctx, subject, req.GetId())
	if err != nil {
		return nil, handleError(err)
	}

	return convertNote(note), nil
}

func (h *Note) ListNotes(ctx context.Context, _ *emptypb.Empty) (*notesv1.ListNotesResponse, error) {
	subject := h.contextManager.GetSubjectFromContext(ctx)

	notes, err := h.noteService.List(ctx, subject)
	if err != nil {
		h.logger.Error("Note handler: list notes failed",
			"subject", subject,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &notesv1.ListNotesResponse{Notes: make([]*notesv1.Note, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, convertNote(n))
	}

	return resp, nil
}

// UpdateNote applies the fields present in the request.
func (h *Note) UpdateNote(ctx context.Context, req *notesv1.UpdateNoteRequest) (*notesv1.Note, error) {
	subject := h.contextManager.GetSubjectFromContext(ctx)

	note, err := h.noteService.Update(ctx, subject, req.GetId(), model.UpdateNoteParams{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		h.logger.Info("Note handler: update note failed",
			"note_id", req.GetId(),
			"subject", subject,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertNote(note), nil
}

func (h *Note) DeleteNote(ctx context.Context, req *notesv1.DeleteNoteRequest) (*notesv1.Note, error) {
	subject := h.contextManager.GetSubjectFromContext(ctx)

	note, err := h.noteService.Delete(ctx, subject, req.GetId())
	if err != nil {
		h.logger.Info("Note handler: delete note failed",
			"note_id", req.GetId(),
			"subject", subject,
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertNote(note), nil
}
