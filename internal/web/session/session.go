// Package session keeps the browser session in two cookies: a readable
// user-snapshot cookie and the opaque token cookie. There is no server-side
// session state; the remote API is the source of truth and the cookies are a
// cache of its last answer.
package session

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
)

const (
	// UserCookie holds the base64-encoded user snapshot. It is readable by
	// page scripts on purpose, so it is never trusted for enforcement.
	UserCookie = "user"

	// TokenCookie holds the opaque API token.
	TokenCookie = "token"
)

// Session is the decoded content of the session cookies.
type Session struct {
	User      backend.UserProfile `json:"user"`
	IssuedAt  time.Time           `json:"issuedAt"`
	ExpiresAt time.Time           `json:"expiresAt"`

	// Token is carried in its own cookie, not in the encoded snapshot.
	Token string `json:"-"`
}

// Valid reports whether the session can be treated as live: it has a token
// and has not passed its expiry. Both enforcement layers use this predicate
// so they cannot drift apart.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Token != "" && now.Before(s.ExpiresAt)
}

// Store reads and writes the session cookies on a request context.
type Store struct {
	// TTL is the session lifetime stamped into new cookies.
	TTL time.Duration

	// Secure is dropped in dev mode so cookies survive plain HTTP.
	Secure bool
}

// Write sets both session cookies. The user snapshot expires together with
// the token so the pair cannot go out of sync.
func (s *Store) Write(c *fiber.Ctx, user backend.UserProfile, token string) error {
	now := time.Now()

	snapshot := Session{
		User:      user,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.TTL),
	}

	encoded, err := json.Marshal(&snapshot)
	if err != nil {
		return err
	}

	expires := snapshot.ExpiresAt

	c.Cookie(&fiber.Cookie{
		Name:     UserCookie,
		Value:    base64.RawURLEncoding.EncodeToString(encoded),
		Expires:  expires,
		Secure:   s.Secure,
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Expires:  expires,
		Secure:   s.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return nil
}

// Read decodes the session cookies. It returns nil when there is no session
// or the cookies are malformed or expired; a nil result never carries an
// error because a broken cookie is the same as no cookie.
func (s *Store) Read(c *fiber.Ctx) *Session {
	token := c.Cookies(TokenCookie)
	if token == "" {
		return nil
	}

	raw := c.Cookies(UserCookie)
	if raw == "" {
		return nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	var snapshot Session
	if err = json.Unmarshal(decoded, &snapshot); err != nil {
		return nil
	}

	snapshot.Token = token

	if !snapshot.Valid(time.Now()) {
		return nil
	}

	return &snapshot
}

// HasToken reports whether a token cookie is present, without decoding or
// validating anything. The request gate before protected pages relies on
// this cheap check only; stale tokens are caught by the full check later.
func (s *Store) HasToken(c *fiber.Ctx) bool {
	return c.Cookies(TokenCookie) != ""
}

// Clear expires both session cookies.
func (s *Store) Clear(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)

	for _, name := range []string{UserCookie, TokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			Secure:   s.Secure,
			HTTPOnly: name == TokenCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
	}
}
