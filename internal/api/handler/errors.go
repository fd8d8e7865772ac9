package handler

import (
	"errors"
	"net/http"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// StatusFor maps a known domain error to its HTTP status and the message
// shown to clients. ok is false for errors that are not part of the API
// contract.
func StatusFor(err error) (status int, detail string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Username and password are required", true
	case errors.Is(err, domain.ErrInvalidCredentialsFormat):
		return http.StatusBadRequest, "Invalid credentials format", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password", true
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session expired", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists", true
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role", true
	}
	return 0, "", false
}
