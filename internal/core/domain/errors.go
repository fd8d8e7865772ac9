package domain

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrMissingCredentials       = errors.New("username and password are required")
	ErrInvalidCredentialsFormat = errors.New("invalid credentials format")
	ErrUserNotFound             = errors.New("user not found")
	ErrUserExists               = errors.New("user already exists")
	ErrUserInactive             = errors.New("user is inactive")
	ErrInvalidRole              = errors.New("invalid role")
	ErrForbidden                = errors.New("access forbidden")
	ErrSessionNotFound          = errors.New("session not found")
)
