package handler

import (
	"context"
	"testing"
	"time"

	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/mocks"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/dtroode/noteshare-server/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func withBearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func TestAuth_Signup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		svcErr   error
		wantCode codes.Code
	}{
		{name: "created", wantCode: codes.OK},
		{name: "duplicate", svcErr: model.ErrDuplicateEmail, wantCode: codes.AlreadyExists},
		{name: "missing fields", svcErr: model.ErrInvalidInput, wantCode: codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("Register", mock.Anything, model.RegisterParams{Email: "a@x.com", Password: "pw123", Name: "A"}).
				Return(model.UserSummary{ID: uuid.New()}, tt.svcErr)

			h := NewAuth(svc, mocks.NewSessionResolver(t), testutil.MakeNoopLogger())
			out, err := h.Signup(context.Background(), &notesv1.SignupRequest{Email: "a@x.com", Password: "pw123", Name: "A"})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				require.NotNil(t, out)
				assert.Equal(t, "user created", out.GetMessage())
			} else {
				assert.Nil(t, out)
			}
		})
	}
}

func TestAuth_VerifyCredentials(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	svc := mocks.NewAuthService(t)
	svc.On("Authenticate", mock.Anything, model.Credentials{Email: "a@x.com", Password: "pw123"}).
		Return(model.UserSummary{ID: uid, Email: "a@x.com", Name: "A"}, nil)
	svc.On("Authenticate", mock.Anything, model.Credentials{Email: "a@x.com", Password: "nope"}).
		Return(model.UserSummary{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, mocks.NewSessionResolver(t), testutil.MakeNoopLogger())

	out, err := h.VerifyCredentials(context.Background(), &notesv1.CredentialsRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, uid.String(), out.GetId())
	assert.Equal(t, "A", out.GetName())

	_, err = h.VerifyCredentials(context.Background(), &notesv1.CredentialsRequest{Email: "a@x.com", Password: "nope"})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "invalid credentials", st.Message())
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	expires := time.Now().Add(time.Hour)
	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, model.Credentials{Email: "a@x.com", Password: "pw123"}).
		Return(model.LoginResult{
			User:    model.UserSummary{ID: uid, Email: "a@x.com"},
			Token:   "tok",
			Session: model.Session{UserID: uid, ExpiresAt: expires},
		}, nil)

	h := NewAuth(svc, mocks.NewSessionResolver(t), testutil.MakeNoopLogger())
	out, err := h.Login(context.Background(), &notesv1.CredentialsRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.GetToken())
	assert.Equal(t, uid.String(), out.GetUser().GetId())
	assert.True(t, expires.Equal(out.GetExpiresAt().AsTime()))
}

func TestAuth_Session(t *testing.T) {
	t.Parallel()

	uid := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		resolver := mocks.NewSessionResolver(t)
		resolver.On("Resolve", "tok").Return(model.Authenticated(uid))
		svc.On("CurrentUser", mock.Anything, model.Authenticated(uid)).
			Return(model.UserSummary{ID: uid, Email: "a@x.com"}, nil)

		h := NewAuth(svc, resolver, testutil.MakeNoopLogger())
		out, err := h.Session(withBearer("tok"), &emptypb.Empty{})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", out.GetUser().GetEmail())
	})

	t.Run("no token", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("CurrentUser", mock.Anything, model.Anonymous()).
			Return(model.UserSummary{}, model.ErrUnauthenticated)

		h := NewAuth(svc, mocks.NewSessionResolver(t), testutil.MakeNoopLogger())
		_, err := h.Session(context.Background(), &emptypb.Empty{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestAuth_RenewSession(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	svc := mocks.NewAuthService(t)
	resolver := mocks.NewSessionResolver(t)
	resolver.On("Resolve", "old").Return(model.Authenticated(uid))
	resolver.On("Resolve", "expired").Return(model.Anonymous())
	svc.On("RenewSession", mock.Anything, model.Authenticated(uid)).
		Return(model.LoginResult{User: model.UserSummary{ID: uid}, Token: "new"}, nil)
	svc.On("RenewSession", mock.Anything, model.Anonymous()).
		Return(model.LoginResult{}, model.ErrUnauthenticated)

	h := NewAuth(svc, resolver, testutil.MakeNoopLogger())

	out, err := h.RenewSession(withBearer("old"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "new", out.GetToken())

	_, err = h.RenewSession(withBearer("expired"), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
