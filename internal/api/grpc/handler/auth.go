package handler

import (
	"context"

	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/api/grpc/middleware"
	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"google.golang.org/protobuf/types/known/emptypb"
)

// AuthService defines user registration, credential checks and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.UserSummary, error)
	Authenticate(ctx context.Context, creds model.Credentials) (model.UserSummary, error)
	Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error)
	CurrentUser(ctx context.Context, subject model.Subject) (model.UserSummary, error)
	RenewSession(ctx context.Context, subject model.Subject) (model.LoginResult, error)
}

// SessionResolver turns a bearer token into a subject.
type SessionResolver interface {
	Resolve(token string) model.Subject
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	notesv1.UnimplementedAuthServer
	authService AuthService
	sessions    SessionResolver
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, sessions SessionResolver, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Signup creates an account. The caller has to log in afterwards.
func (h *Auth) Signup(ctx context.Context, req *notesv1.SignupRequest) (*notesv1.SignupResponse, error) {
	h.logger.Debug("Auth handler: processing signup request",
		"email", req.GetEmail())

	user, err := h.authService.Register(ctx, model.RegisterParams{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
		Name:     req.GetName(),
	})
	if err != nil {
		h.logger.Info("Auth handler: signup failed",
			"email", req.GetEmail(),
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: signup completed",
		"user_id", user.ID)

	return &notesv1.SignupResponse{Message: "user created"}, nil
}

// VerifyCredentials checks an email/password pair without issuing a session.
func (h *Auth) VerifyCredentials(ctx context.Context, req *notesv1.CredentialsRequest) (*notesv1.VerifyCredentialsResponse, error) {
	user, err := h.authService.Authenticate(ctx, model.Credentials{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, handleError(err)
	}

	return &notesv1.VerifyCredentialsResponse{
		Id:   user.ID.String(),
		Name: user.Name,
	}, nil
}

// Login checks credentials and returns a session token.
func (h *Auth) Login(ctx context.Context, req *notesv1.CredentialsRequest) (*notesv1.SessionTokenResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"email", req.GetEmail())

	result, err := h.authService.Login(ctx, model.Credentials{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.GetEmail(),
			"error", err.Error())
		return nil, handleError(err)
	}

	return convertSessionToken(result), nil
}

// Session returns the user behind the presented token.
func (h *Auth) Session(ctx context.Context, _ *emptypb.Empty) (*notesv1.SessionResponse, error) {
	subject := middleware.SubjectFromMetadata(ctx, h.sessions)

	user, err := h.authService.CurrentUser(ctx, subject)
	if err != nil {
		return nil, handleError(err)
	}

	return &notesv1.SessionResponse{User: convertUser(user)}, nil
}

// RenewSession exchanges a valid token for one with a fresh lifetime.
func (h *Auth) RenewSession(ctx context.Context, _ *emptypb.Empty) (*notesv1.SessionTokenResponse, error) {
	subject := middleware.SubjectFromMetadata(ctx, h.sessions)

	result, err := h.authService.RenewSession(ctx, subject)
	if err != nil {
		h.logger.Info("Auth handler: session renewal failed",
			"subject", subject,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: session renewed",
		"user_id", result.User.ID)

	return convertSessionToken(result), nil
}
