// Package memory keeps users and notes in process memory.
// It backs local runs without DATABASE_DSN and end-to-end tests.
package memory

import (
	"sync"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

// Database holds the tables shared by the memory repositories.
type Database struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]model.User
	emails     map[string]uuid.UUID
	notes      map[int64]model.Note
	lastNoteID int64
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{
		users:  make(map[uuid.UUID]model.User),
		emails: make(map[string]uuid.UUID),
		notes:  make(map[int64]model.Note),
	}
}

func copyNote(n model.Note) model.Note {
	if n.Content != nil {
		content := *n.Content
		n.Content = &content
	}
	return n
}
