package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the authenticated identity is not allowed
	// to act on the requested resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when the request is invalid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateRegistration is returned when the applicant is already
	// registered for the marathon.
	ErrDuplicateRegistration = errors.New("already registered for this marathon")
	// ErrDuplicateSubscriber is returned when the email is already subscribed.
	ErrDuplicateSubscriber = errors.New("email already subscribed")
)
