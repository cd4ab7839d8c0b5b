package model

import "errors"

var (
	// ErrEmailTaken is returned when registration collides with an existing email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound = errors.New("user not found")

	// ErrNoteNotFound is returned both when a note does not exist and when it
	// belongs to another user.
	ErrNoteNotFound = errors.New("note not found")
)
