package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordPolicy     = errors.New("password must be between 6 and 20 characters")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrRoleNotFound       = errors.New("role not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")
)
