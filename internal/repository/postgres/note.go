package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.OwnerName, &note.Title,
		&note.Content, &note.IsPublic, &note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `
		WITH ins AS (
			INSERT INTO notes (owner_id, title, content, is_public)
			VALUES ($1, $2, $3, $4)
			RETURNING id, owner_id, title, content, is_public, created_at, updated_at
		)
		SELECT ins.id, ins.owner_id, COALESCE(u.name, ''), ins.title, ins.content, ins.is_public, ins.created_at, ins.updated_at
		FROM ins
		LEFT JOIN users u ON u.id = ins.owner_id`

	saved, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.OwnerID, note.Title, note.Content, note.IsPublic,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (model.Note, error) {
	query := `
		SELECT n.id, n.owner_id, COALESCE(u.name, ''), n.title, n.content, n.is_public, n.created_at, n.updated_at
		FROM notes n
		LEFT JOIN users u ON u.id = n.owner_id
		WHERE n.id = $1`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) ListVisible(ctx context.Context, viewer *uuid.UUID) ([]model.Note, error) {
	query := `
		SELECT n.id, n.owner_id, COALESCE(u.name, ''), n.title, n.content, n.is_public, n.created_at, n.updated_at
		FROM notes n
		LEFT JOIN users u ON u.id = n.owner_id
		WHERE n.is_public
		ORDER BY n.id`
	args := []any{}

	if viewer != nil {
		query = `
		SELECT n.id, n.owner_id, COALESCE(u.name, ''), n.title, n.content, n.is_public, n.created_at, n.updated_at
		FROM notes n
		LEFT JOIN users u ON u.id = n.owner_id
		WHERE n.is_public OR n.owner_id = $1
		ORDER BY n.id`
		args = append(args, *viewer)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// Update writes title, content and visibility. owner_id is not part of the statement.
func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	query := `
		WITH upd AS (
			UPDATE notes SET title = $2, content = $3, is_public = $4, updated_at = NOW()
			WHERE id = $1
			RETURNING id, owner_id, title, content, is_public, created_at, updated_at
		)
		SELECT upd.id, upd.owner_id, COALESCE(u.name, ''), upd.title, upd.content, upd.is_public, upd.created_at, upd.updated_at
		FROM upd
		LEFT JOIN users u ON u.id = upd.owner_id`

	saved, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.ID, note.Title, note.Content, note.IsPublic,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM notes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
