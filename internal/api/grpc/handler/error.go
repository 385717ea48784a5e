package handler

import (
	"errors"

	"github.com/dtroode/noteshare-server/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, model.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "email is already registered")
	case errors.Is(err, model.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "authentication required")
	case errors.Is(err, model.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, "access denied")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "note not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
