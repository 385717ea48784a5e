package memory

import (
	"context"
	"time"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Database
}

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.emails[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.db.users[id], nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

// Create stores the user; the email check and the insert happen under one lock.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.emails[user.Email]; ok {
		return model.User{}, model.ErrDuplicateEmail
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	r.db.users[user.ID] = user
	r.db.emails[user.Email] = user.ID
	return user, nil
}
