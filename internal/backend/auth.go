package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// LoginResult is the outcome of a successful login call.
type LoginResult struct {
	User UserProfile

	// Token is the opaque session token. Empty when the deployment sets it
	// as an HTTP-only cookie instead of returning it in the body; in that
	// case SetCookies carries the raw Set-Cookie headers to forward.
	Token string

	// SetCookies are the raw Set-Cookie header values of the login response.
	SetCookies []string
}

// Login sends the credentials to the remote login endpoint.
// Rejected credentials map to ErrAuthenticationFailed carrying the server
// message; an unreachable API maps to ErrNetworkUnavailable.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return nil, err
	}

	// any error status on login is a rejection, including 401
	if resp.status < 200 || resp.status > 299 {
		return nil, errors.Wrap(ErrAuthenticationFailed, serverMessage(resp.body))
	}

	p, err := decodePayload(resp.body)
	if err != nil {
		return nil, err
	}

	if !p.ok() {
		msg := p.message
		if msg == "" {
			msg = "no error details provided"
		}

		return nil, errors.Wrap(ErrAuthenticationFailed, msg)
	}

	result := &LoginResult{
		SetCookies: resp.header.Values("Set-Cookie"),
	}

	if err = p.field("user", &result.User); err != nil {
		return nil, err
	}

	// token in the body or via Set-Cookie, depending on the deployment
	if _, err = p.optionalField("token", &result.Token); err != nil {
		return nil, err
	}

	if result.Token == "" {
		result.Token = tokenFromSetCookies(result.SetCookies)
	}

	if result.Token == "" {
		return nil, errors.Wrap(ErrUnrecognizedResponseShape, "login response carries no token")
	}

	return result, nil
}

// Logout calls the remote logout endpoint. The caller treats any outcome as
// sufficient to proceed with local cleanup.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/logout", token, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

// Profile revalidates a session against the remote profile endpoint.
// ErrUnauthorized means the session is invalid; ErrNetworkUnavailable means
// the API did not answer and nothing is known about the session.
func (c *Client) Profile(ctx context.Context, token string) (*UserProfile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil)
	if err != nil {
		return nil, err
	}

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	p, err := decodePayload(resp.body)
	if err != nil {
		return nil, err
	}

	var user UserProfile
	if err = p.field("user", &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// tokenFromSetCookies extracts the token cookie value from raw Set-Cookie
// header values, if one is present.
func tokenFromSetCookies(setCookies []string) string {
	for _, sc := range setCookies {
		pair, _, _ := strings.Cut(sc, ";")

		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if found && name == "token" {
			return value
		}
	}

	return ""
}
