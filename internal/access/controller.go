// Package access decides whether a subject may read, write or delete a note.
package access

import "github.com/dtroode/noteshare-server/internal/model"

// Controller holds no state; the zero value is ready to use.
type Controller struct{}

// NewController creates a new access Controller.
func NewController() *Controller {
	return &Controller{}
}

// Authorize returns Allow when subject may perform op on note.
//
// Public notes are readable by anyone. Everything else is reserved for the owner.
func (c *Controller) Authorize(subject model.Subject, note model.NoteRef, op model.Operation) model.Decision {
	switch op {
	case model.OperationRead:
		if note.IsPublic || subject.Is(note.OwnerID) {
			return model.Allow
		}
	case model.OperationWrite, model.OperationDelete:
		if subject.Is(note.OwnerID) {
			return model.Allow
		}
	}
	return model.Deny
}
