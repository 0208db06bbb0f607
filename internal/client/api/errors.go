package api

import "errors"

var (
	// ErrUnavailable covers transport failures and timeouts reaching the server.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is returned when the server rejects the attached credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for mutations against a record the server no
	// longer knows.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is the single failure the login flow shows to the
	// end user; wrong password and unreachable server both collapse into it.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
