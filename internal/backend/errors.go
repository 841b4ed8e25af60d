package backend

import "errors"

var (
	// ErrAuthenticationFailed is returned when the login endpoint rejects the
	// provided credentials. The wrapped message is the server-supplied one.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNetworkUnavailable is returned when the portfolio API can not be
	// reached at all (no response, as opposed to an error response).
	ErrNetworkUnavailable = errors.New("portfolio API unreachable")

	// ErrUnauthorized is returned on a 401 response from any authenticated
	// call. It is the only signal that a cached session is invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnrecognizedResponseShape is returned when a response body matches
	// none of the known envelope variants.
	ErrUnrecognizedResponseShape = errors.New("unrecognized response shape")

	// ErrRequestFailed is returned for non-2xx responses that carry no more
	// specific meaning (server errors, validation rejections).
	ErrRequestFailed = errors.New("portfolio API request failed")
)
