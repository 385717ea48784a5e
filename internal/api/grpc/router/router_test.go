package router

import (
	"context"
	"net"
	"testing"
	"time"

	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/access"
	grpcctx "github.com/dtroode/noteshare-server/internal/api/grpc/context"
	"github.com/dtroode/noteshare-server/internal/mocks"
	"github.com/dtroode/noteshare-server/internal/password"
	"github.com/dtroode/noteshare-server/internal/repository/memory"
	"github.com/dtroode/noteshare-server/internal/service"
	"github.com/dtroode/noteshare-server/internal/testutil"
	"github.com/dtroode/noteshare-server/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	ctxMgr := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	r := New(nil, nil, nil, ctxMgr, lg)
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, notesv1.Auth_ServiceDesc.ServiceName)
	assert.Contains(t, info, notesv1.Notes_ServiceDesc.ServiceName)
}

type testClients struct {
	auth  notesv1.AuthClient
	notes notesv1.NotesClient
}

func startServer(t *testing.T) testClients {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	hasher, err := password.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)
	sessions, err := token.NewJWT("router-test-secret", time.Hour)
	require.NoError(t, err)

	db := memory.NewDatabase()
	authService := service.NewAuth(memory.NewUserRepository(db), hasher, sessions, lg)
	noteService := service.NewNote(memory.NewNoteRepository(db), access.NewController(), lg)

	s := New(authService, noteService, sessions, grpcctx.NewManager(), lg).Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return testClients{auth: notesv1.NewAuthClient(conn), notes: notesv1.NewNotesClient(conn)}
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestRouter_NoteSharingScenario(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	signup, err := c.auth.Signup(ctx, &notesv1.SignupRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "user created", signup.GetMessage())

	login, err := c.auth.Login(ctx, &notesv1.CredentialsRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.GetToken())
	u1 := login.GetUser().GetId()
	owner := bearer(ctx, login.GetToken())

	created, err := c.notes.CreateNote(owner, &notesv1.CreateNoteRequest{Title: "T", Content: proto.String("C")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GetId())
	assert.Equal(t, u1, created.GetOwnerId())
	assert.False(t, created.GetIsPublic())

	_, err = c.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: 1})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	got, err := c.notes.GetNote(owner, &notesv1.GetNoteRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, "T", got.GetTitle())
	assert.Equal(t, "C", got.GetContent())

	updated, err := c.notes.UpdateNote(owner, &notesv1.UpdateNoteRequest{Id: 1, IsPublic: proto.Bool(true)})
	require.NoError(t, err)
	assert.True(t, updated.GetIsPublic())
	assert.Equal(t, "T", updated.GetTitle())

	got, err = c.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: 1})
	require.NoError(t, err)
	assert.True(t, got.GetIsPublic())

	_, err = c.notes.DeleteNote(ctx, &notesv1.DeleteNoteRequest{Id: 1})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	got, err = c.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.GetId())
}

func TestRouter_AuthFlows(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	_, err := c.auth.Signup(ctx, &notesv1.SignupRequest{Email: "b@x.com", Password: "pw", Name: "Bee"})
	require.NoError(t, err)

	_, err = c.auth.Signup(ctx, &notesv1.SignupRequest{Email: "b@x.com", Password: "other"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.auth.Signup(ctx, &notesv1.SignupRequest{Email: "", Password: "pw"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, errWrong := c.auth.Login(ctx, &notesv1.CredentialsRequest{Email: "b@x.com", Password: "bad"})
	_, errUnknown := c.auth.Login(ctx, &notesv1.CredentialsRequest{Email: "nobody@x.com", Password: "pw"})
	stWrong, _ := status.FromError(errWrong)
	stUnknown, _ := status.FromError(errUnknown)
	assert.Equal(t, codes.Unauthenticated, stWrong.Code())
	assert.Equal(t, stWrong.Code(), stUnknown.Code())
	assert.Equal(t, stWrong.Message(), stUnknown.Message())

	verified, err := c.auth.VerifyCredentials(ctx, &notesv1.CredentialsRequest{Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Bee", verified.GetName())

	login, err := c.auth.Login(ctx, &notesv1.CredentialsRequest{Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, verified.GetId(), login.GetUser().GetId())

	session, err := c.auth.Session(bearer(ctx, login.GetToken()), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", session.GetUser().GetEmail())

	_, err = c.auth.Session(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = c.auth.Session(bearer(ctx, "garbage"), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	renewed, err := c.auth.RenewSession(bearer(ctx, login.GetToken()), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, login.GetUser().GetId(), renewed.GetUser().GetId())
	assert.False(t, renewed.GetExpiresAt().AsTime().Before(login.GetExpiresAt().AsTime()))
}

func TestRouter_NotesVisibility(t *testing.T) {
	t.Parallel()

	c := startServer(t)
	ctx := context.Background()

	login := func(email string) context.Context {
		_, err := c.auth.Signup(ctx, &notesv1.SignupRequest{Email: email, Password: "pw"})
		require.NoError(t, err)
		res, err := c.auth.Login(ctx, &notesv1.CredentialsRequest{Email: email, Password: "pw"})
		require.NoError(t, err)
		return bearer(ctx, res.GetToken())
	}
	alice := login("alice@x.com")
	bob := login("bob@x.com")

	private, err := c.notes.CreateNote(alice, &notesv1.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)
	assert.Nil(t, private.Content)
	_, err = c.notes.CreateNote(alice, &notesv1.CreateNoteRequest{Title: "public", IsPublic: true})
	require.NoError(t, err)

	_, err = c.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{Title: "anon"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = c.notes.CreateNote(alice, &notesv1.CreateNoteRequest{Title: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	anonList, err := c.notes.ListNotes(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, anonList.GetNotes(), 1)
	assert.Equal(t, "public", anonList.GetNotes()[0].GetTitle())

	aliceList, err := c.notes.ListNotes(alice, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, aliceList.GetNotes(), 2)

	_, err = c.notes.GetNote(bob, &notesv1.GetNoteRequest{Id: private.GetId()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	_, err = c.notes.UpdateNote(bob, &notesv1.UpdateNoteRequest{Id: private.GetId(), Title: proto.String("mine")})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	_, err = c.notes.DeleteNote(bob, &notesv1.DeleteNoteRequest{Id: private.GetId()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = c.notes.GetNote(alice, &notesv1.GetNoteRequest{Id: 999})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = c.notes.DeleteNote(alice, &notesv1.DeleteNoteRequest{Id: 999})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// A client-supplied user id in metadata must not be honoured.
	spoofed := metadata.AppendToOutgoingContext(ctx, "user_id", uuid.NewString())
	_, err = c.notes.GetNote(spoofed, &notesv1.GetNoteRequest{Id: private.GetId()})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	deleted, err := c.notes.DeleteNote(alice, &notesv1.DeleteNoteRequest{Id: private.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "private", deleted.GetTitle())

	_, err = c.notes.GetNote(alice, &notesv1.GetNoteRequest{Id: private.GetId()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
