package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewDatabase())

	u := model.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hash", Name: "A"}
	saved, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewDatabase())

	const workers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, model.User{ID: uuid.New(), Email: "race@x.com", PasswordHash: "h"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			if assert.ErrorIs(t, err, model.ErrDuplicateEmail) {
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, duplicates)
}

func TestNoteRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	users := NewUserRepository(db)
	notes := NewNoteRepository(db)

	owner := uuid.New()
	other := uuid.New()
	_, err := users.Create(ctx, model.User{ID: owner, Email: "o@x.com", Name: "Owner"})
	require.NoError(t, err)

	content := "C"
	private, err := notes.Create(ctx, model.Note{OwnerID: owner, Title: "T", Content: &content})
	require.NoError(t, err)
	assert.Equal(t, int64(1), private.ID)
	assert.Equal(t, "Owner", private.OwnerName)

	public, err := notes.Create(ctx, model.Note{OwnerID: other, Title: "P", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), public.ID)

	content = "mutated"
	got, err := notes.GetByID(ctx, private.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Content)
	assert.Equal(t, "C", *got.Content)

	anonymous, err := notes.ListVisible(ctx, nil)
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, public.ID, anonymous[0].ID)

	mine, err := notes.ListVisible(ctx, &owner)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, private.ID, mine[0].ID)
	assert.Equal(t, public.ID, mine[1].ID)

	got.Title = "T2"
	got.IsPublic = true
	got.OwnerID = other
	updated, err := notes.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, owner, updated.OwnerID)

	require.NoError(t, notes.Delete(ctx, private.ID))
	_, err = notes.GetByID(ctx, private.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, notes.Delete(ctx, private.ID), model.ErrNotFound)
	_, err = notes.Update(ctx, got)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
