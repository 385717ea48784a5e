package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dtroode/noteshare-server/internal/mocks"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/dtroode/noteshare-server/internal/password"
	"github.com/dtroode/noteshare-server/internal/repository/memory"
	"github.com/dtroode/noteshare-server/internal/testutil"
	"github.com/dtroode/noteshare-server/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthWithMocks(t *testing.T) (*Auth, *mocks.UserStore, *mocks.PasswordHasher, *mocks.SessionManager) {
	t.Helper()

	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	sessions := mocks.NewSessionManager(t)

	return NewAuth(userStore, hasher, sessions, testutil.MakeNoopLogger()), userStore, hasher, sessions
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "s3cret").Return("digest", nil)
		userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Email == "alice@example.com" && u.PasswordHash == "digest" && u.Name == "Alice" && u.ID != uuid.Nil
		})).Return(func(_ context.Context, u model.User) (model.User, error) {
			return u, nil
		})

		user, err := a.Register(context.Background(), model.RegisterParams{
			Email:    "alice@example.com",
			Password: "s3cret",
			Name:     " Alice ",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("empty fields", func(t *testing.T) {
		t.Parallel()

		tests := []model.RegisterParams{
			{Email: "", Password: "x"},
			{Email: "   ", Password: "x"},
			{Email: "a@b.c", Password: ""},
		}
		for _, params := range tests {
			a, _, _, _ := newAuthWithMocks(t)
			_, err := a.Register(context.Background(), params)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		}
	})

	t.Run("existing email", func(t *testing.T) {
		t.Parallel()
		a, userStore, _, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{ID: uuid.New()}, nil)

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "alice@example.com", Password: "other"})
		assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	})

	t.Run("concurrent duplicate on create", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "pw").Return("digest", nil)
		userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateEmail)

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "alice@example.com", Password: "pw"})
		assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	})

	t.Run("hash rejects input", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "pw").Return("", model.ErrInvalidInput)

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "alice@example.com", Password: "pw"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		a, userStore, _, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{}, assert.AnError)

		_, err := a.Register(context.Background(), model.RegisterParams{Email: "alice@example.com", Password: "pw"})
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuth_Authenticate(t *testing.T) {
	t.Parallel()

	stored := model.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "digest",
		Name:         "Alice",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
		hasher.On("Verify", "s3cret", "digest").Return(true)

		user, err := a.Authenticate(context.Background(), model.Credentials{Email: stored.Email, Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, stored.Summary(), user)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
		hasher.On("Verify", "wrong", "digest").Return(false)

		_, err := a.Authenticate(context.Background(), model.Credentials{Email: stored.Email, Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email verifies against dummy digest", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Dummy").Return("dummy-digest").Once()
		hasher.On("Verify", "s3cret", "dummy-digest").Return(false).Once()

		_, err := a.Authenticate(context.Background(), model.Credentials{Email: "nobody@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("empty fields", func(t *testing.T) {
		t.Parallel()
		a, _, _, _ := newAuthWithMocks(t)

		_, err := a.Authenticate(context.Background(), model.Credentials{Email: "alice@example.com"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		_, err = a.Authenticate(context.Background(), model.Credentials{Password: "x"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		t.Parallel()
		a, userStore, _, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(model.User{}, assert.AnError)

		_, err := a.Authenticate(context.Background(), model.Credentials{Email: stored.Email, Password: "x"})
		require.Error(t, err)
		assert.False(t, errors.Is(err, model.ErrInvalidCredentials))
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	stored := model.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "digest"}
	session := model.Session{UserID: stored.ID, IssuedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, sessions := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
		hasher.On("Verify", "s3cret", "digest").Return(true)
		sessions.On("Issue", stored.ID).Return("tok", session, nil)

		result, err := a.Login(context.Background(), model.Credentials{Email: stored.Email, Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		assert.Equal(t, stored.ID, result.User.ID)
		assert.Equal(t, session.ExpiresAt, result.Session.ExpiresAt)
	})

	t.Run("bad credentials issue nothing", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, _ := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
		hasher.On("Verify", "bad", "digest").Return(false)

		result, err := a.Login(context.Background(), model.Credentials{Email: stored.Email, Password: "bad"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Empty(t, result.Token)
	})

	t.Run("issue failure", func(t *testing.T) {
		t.Parallel()
		a, userStore, hasher, sessions := newAuthWithMocks(t)

		userStore.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
		hasher.On("Verify", "s3cret", "digest").Return(true)
		sessions.On("Issue", stored.ID).Return("", model.Session{}, assert.AnError)

		_, err := a.Login(context.Background(), model.Credentials{Email: stored.Email, Password: "s3cret"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuth_CurrentUserAndRenew(t *testing.T) {
	t.Parallel()

	stored := model.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}

	tests := []struct {
		name    string
		subject model.Subject
		setup   func(userStore *mocks.UserStore)
		wantErr error
	}{
		{
			name:    "anonymous",
			subject: model.Anonymous(),
			setup:   func(*mocks.UserStore) {},
			wantErr: model.ErrUnauthenticated,
		},
		{
			name:    "user vanished",
			subject: model.Authenticated(stored.ID),
			setup: func(userStore *mocks.UserStore) {
				userStore.On("GetByID", mock.Anything, stored.ID).Return(model.User{}, model.ErrNotFound)
			},
			wantErr: model.ErrUnauthenticated,
		},
		{
			name:    "existing user",
			subject: model.Authenticated(stored.ID),
			setup: func(userStore *mocks.UserStore) {
				userStore.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, userStore, _, sessions := newAuthWithMocks(t)
			tt.setup(userStore)

			user, err := a.CurrentUser(context.Background(), tt.subject)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.Summary(), user)
			}

			if tt.wantErr == nil {
				sessions.On("Issue", stored.ID).Return("fresh", model.Session{UserID: stored.ID}, nil)
			}
			result, err := a.RenewSession(context.Background(), tt.subject)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "fresh", result.Token)
			assert.Equal(t, stored.Summary(), result.User)
		})
	}
}

// Real hasher, store and token manager wired together.
func TestAuth_RegisterLoginResolve(t *testing.T) {
	t.Parallel()

	hasher, err := password.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)
	sessions, err := token.NewJWT("test-secret", time.Hour)
	require.NoError(t, err)
	db := memory.NewDatabase()

	a := NewAuth(memory.NewUserRepository(db), hasher, sessions, testutil.MakeNoopLogger())
	ctx := context.Background()

	registered, err := a.Register(ctx, model.RegisterParams{Email: "alice@example.com", Password: "s3cret", Name: "Alice"})
	require.NoError(t, err)

	_, err = a.Register(ctx, model.RegisterParams{Email: "alice@example.com", Password: "other"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)

	_, err = a.Login(ctx, model.Credentials{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	_, errUnknown := a.Login(ctx, model.Credentials{Email: "bob@example.com", Password: "s3cret"})
	assert.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
	assert.Equal(t, err.Error(), errUnknown.Error())

	result, err := a.Login(ctx, model.Credentials{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	subject := sessions.Resolve(result.Token)
	assert.True(t, subject.Is(registered.ID))

	me, err := a.CurrentUser(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, registered, me)
}

func TestAuth_TrimsEmail(t *testing.T) {
	t.Parallel()

	hasher, err := password.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)
	sessions, err := token.NewJWT("test-secret", time.Hour)
	require.NoError(t, err)

	a := NewAuth(memory.NewUserRepository(memory.NewDatabase()), hasher, sessions, testutil.MakeNoopLogger())
	ctx := context.Background()

	registered, err := a.Register(ctx, model.RegisterParams{Email: " a@x.com ", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", registered.Email)

	_, err = a.Register(ctx, model.RegisterParams{Email: "a@x.com", Password: "pw123"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)

	user, err := a.Authenticate(ctx, model.Credentials{Email: "a@x.com\t", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuth_AuthenticateRejectsPasswordSharingOnlyPrefix(t *testing.T) {
	t.Parallel()

	hasher, err := password.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)
	sessions, err := token.NewJWT("test-secret", time.Hour)
	require.NoError(t, err)

	a := NewAuth(memory.NewUserRepository(memory.NewDatabase()), hasher, sessions, testutil.MakeNoopLogger())
	ctx := context.Background()

	stored := strings.Repeat("a", 72)
	_, err = a.Register(ctx, model.RegisterParams{Email: "x@x.com", Password: stored})
	require.NoError(t, err)

	_, err = a.Authenticate(ctx, model.Credentials{Email: "x@x.com", Password: stored + "DIFFERENT-SUFFIX"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, model.Credentials{Email: "x@x.com", Password: stored})
	assert.NoError(t, err)
}
