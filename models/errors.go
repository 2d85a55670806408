package models

import "errors"

var (
	// ErrNotFound is returned when an operation references a nonexistent id or email.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a signup reuses a registered email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidImage is returned for attachments that are not image data URLs.
	ErrInvalidImage = errors.New("attachment is not a valid image data URL")

	// ErrImageTooLarge is returned when the decoded attachment exceeds MaxImageBytes.
	ErrImageTooLarge = errors.New("attachment exceeds the maximum image size")
)
