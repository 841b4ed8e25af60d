// Package login provides HTTP handlers for signing in against the remote API.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed
	// or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the API rejects the provided email
	// and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrBackendUnavailable is returned when the API does not answer the login
	// request at all.
	ErrBackendUnavailable = errors.New("the portfolio API is unreachable, try again later")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
