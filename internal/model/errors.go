package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail is returned when signing up with an email that is already registered.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrUnauthenticated is returned when an operation requires a session and none is present.
	ErrUnauthenticated = errors.New("user not authenticated")
	// ErrAccessDenied is returned when the session is valid but lacks rights on the note.
	ErrAccessDenied = errors.New("access denied")
)
