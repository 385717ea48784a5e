package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Database
}

func NewNoteRepository(db *Database) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(_ context.Context, note model.Note) (model.Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.lastNoteID++
	now := time.Now()
	note.ID = r.db.lastNoteID
	note.CreatedAt = now
	note.UpdatedAt = now
	note.OwnerName = ""

	r.db.notes[note.ID] = copyNote(note)
	return r.withOwner(note), nil
}

func (r *NoteRepository) GetByID(_ context.Context, id int64) (model.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	note, ok := r.db.notes[id]
	if !ok {
		return model.Note{}, model.ErrNotFound
	}
	return r.withOwner(copyNote(note)), nil
}

func (r *NoteRepository) ListVisible(_ context.Context, viewer *uuid.UUID) ([]model.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.db.notes))
	for _, note := range r.db.notes {
		if note.IsPublic || (viewer != nil && note.OwnerID == *viewer) {
			notes = append(notes, r.withOwner(copyNote(note)))
		}
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

// Update replaces title, content and visibility; the owner is never changed.
func (r *NoteRepository) Update(_ context.Context, note model.Note) (model.Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.notes[note.ID]
	if !ok {
		return model.Note{}, model.ErrNotFound
	}

	stored.Title = note.Title
	stored.Content = note.Content
	stored.IsPublic = note.IsPublic
	stored.UpdatedAt = time.Now()

	r.db.notes[note.ID] = copyNote(stored)
	return r.withOwner(copyNote(stored)), nil
}

func (r *NoteRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.notes[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.notes, id)
	return nil
}

// withOwner must be called with the lock held.
func (r *NoteRepository) withOwner(note model.Note) model.Note {
	if owner, ok := r.db.users[note.OwnerID]; ok {
		note.OwnerName = owner.Name
	}
	return note
}
