package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidArgument is returned for bad pagination or filter input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream is returned when the problem catalog is unreachable or
	// returned a malformed or error payload.
	ErrUpstream = errors.New("upstream catalog error")
	// ErrNotFound is returned when a referenced username does not exist upstream.
	ErrNotFound = errors.New("not found")
	// ErrStorage is returned when local persistence is unreachable.
	ErrStorage = errors.New("storage error")
	// ErrAuth is returned for a missing or invalid credential.
	ErrAuth = errors.New("authorization required")
)

// StatusCode maps an error to the HTTP status its response should carry.
// Unrecognized errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
