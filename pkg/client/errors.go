package client

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the server rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordPolicy is returned by Register before any network call when
	// the password is outside the 6-20 character policy.
	ErrPasswordPolicy = errors.New("password must be between 6 and 20 characters")
	// ErrPasswordMismatch is returned by Register before any network call
	// when the confirmation differs from the password.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// ErrUnauthorized signals a missing, invalid or expired token. The
	// session transitions to Anonymous when an API call observes it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a valid identity without the required role.
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
)
