package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
)

// Auth registers users, checks credentials and issues sessions.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	sessions  model.SessionManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	sessions model.SessionManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register creates a user. No session is issued; the caller logs in separately.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.UserSummary, error) {
	email, err := normalizeCredentials(params.Email, params.Password)
	if err != nil {
		return model.UserSummary{}, err
	}
	params.Email = email

	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	_, err = a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.UserSummary{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	digest, err := a.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return model.UserSummary{}, err
		}
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: digest,
		Name:         strings.TrimSpace(params.Name),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Auth service: email registered concurrently",
				"email", params.Email)
			return model.UserSummary{}, model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", params.Email,
		"user_id", user.ID)

	return user.Summary(), nil
}

// Authenticate checks an email/password pair.
// Unknown email and wrong password both yield model.ErrInvalidCredentials.
func (a *Auth) Authenticate(ctx context.Context, creds model.Credentials) (model.UserSummary, error) {
	email, err := normalizeCredentials(creds.Email, creds.Password)
	if err != nil {
		return model.UserSummary{}, err
	}
	creds.Email = email

	user, err := a.userStore.GetByEmail(ctx, creds.Email)
	if errors.Is(err, model.ErrNotFound) {
		// Burn the same bcrypt work as for a real account.
		a.hasher.Verify(creds.Password, a.hasher.Dummy())
		a.logger.Info("Auth service: authentication failed",
			"email", creds.Email)
		return model.UserSummary{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", creds.Email,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		a.logger.Info("Auth service: authentication failed",
			"email", creds.Email)
		return model.UserSummary{}, model.ErrInvalidCredentials
	}

	return user.Summary(), nil
}

// Login authenticates the credentials and issues a session token.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error) {
	user, err := a.Authenticate(ctx, creds)
	if err != nil {
		return model.LoginResult{}, err
	}

	result, err := a.issue(user)
	if err != nil {
		return model.LoginResult{}, err
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID,
		"expires_at", result.Session.ExpiresAt)

	return result, nil
}

// CurrentUser returns the user behind an authenticated subject.
func (a *Auth) CurrentUser(ctx context.Context, subject model.Subject) (model.UserSummary, error) {
	user, err := a.lookupSubject(ctx, subject)
	if err != nil {
		return model.UserSummary{}, err
	}
	return user.Summary(), nil
}

// RenewSession issues a fresh token for a subject whose user still exists.
func (a *Auth) RenewSession(ctx context.Context, subject model.Subject) (model.LoginResult, error) {
	user, err := a.lookupSubject(ctx, subject)
	if err != nil {
		return model.LoginResult{}, err
	}

	result, err := a.issue(user.Summary())
	if err != nil {
		return model.LoginResult{}, err
	}

	a.logger.Info("Auth service: session renewed",
		"user_id", user.ID,
		"expires_at", result.Session.ExpiresAt)

	return result, nil
}

func (a *Auth) lookupSubject(ctx context.Context, subject model.Subject) (model.User, error) {
	userID, ok := subject.UserID()
	if !ok {
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: session refers to missing user",
			"user_id", userID)
		return model.User{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (a *Auth) issue(user model.UserSummary) (model.LoginResult, error) {
	token, session, err := a.sessions.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session",
			"user_id", user.ID,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to issue session: %w", err)
	}

	return model.LoginResult{User: user, Token: token, Session: session}, nil
}

// normalizeCredentials trims the email so the same address always maps to one account.
func normalizeCredentials(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", model.ErrInvalidInput)
	}
	if password == "" {
		return "", fmt.Errorf("%w: password is required", model.ErrInvalidInput)
	}
	return email, nil
}
