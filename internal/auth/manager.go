// Package auth owns the session lifecycle. A single Manager is constructed at
// startup and handed to the web layer; nothing in this codebase reaches for a
// package-level session object.
package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

// State of a request's session after a full check.
type State int

const (
	// StateInitializing means no check has run yet. Requests never observe
	// this state past the guard middleware.
	StateInitializing State = iota

	// StateAuthenticated means the session is live.
	StateAuthenticated

	// StateUnauthenticated means there is no usable session.
	StateUnauthenticated
)

// Client is the subset of the API client the Manager needs.
type Client interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (*backend.UserProfile, error)
}

// Manager drives login, logout and session checks against the remote API and
// keeps the cookie store in step with the outcomes.
type Manager struct {
	store  *session.Store
	client Client

	// trustCacheOnNetworkError keeps an existing session when the API is
	// unreachable during a check. A 401 always wins over this flag.
	trustCacheOnNetworkError bool
}

// NewManager wires a Manager. The store and client are required.
func NewManager(store *session.Store, client Client, trustCacheOnNetworkError bool) *Manager {
	return &Manager{
		store:                    store,
		client:                   client,
		trustCacheOnNetworkError: trustCacheOnNetworkError,
	}
}

// Login exchanges credentials for a session and writes the session cookies.
// Concurrent logins are not coordinated; the last response to arrive owns the
// cookies.
func (m *Manager) Login(c *fiber.Ctx, email, password string) (*backend.UserProfile, error) {
	result, err := m.client.Login(c.Context(), email, password)
	if err != nil {
		return nil, err
	}

	if err = m.store.Write(c, result.User, result.Token); err != nil {
		return nil, errors.Wrap(err, "writing session cookies")
	}

	// the API may set additional cookies of its own; pass them through so
	// the browser stays in step with the deployment
	for _, sc := range result.SetCookies {
		if !isSessionCookie(sc) {
			c.Append(fiber.HeaderSetCookie, sc)
		}
	}

	return &result.User, nil
}

// Logout tells the API to drop the session and clears the cookies. The remote
// call is best effort: the cookies are cleared whatever it returns, so logout
// cannot fail from the browser's point of view.
func (m *Manager) Logout(c *fiber.Ctx) {
	if s := m.store.Read(c); s != nil {
		if err := m.client.Logout(c.Context(), s.Token); err != nil {
			log.Warn().Err(err).Msg("remote logout failed, clearing session anyway")
		}
	}

	m.store.Clear(c)
}

// Invalidate drops the session cookies without contacting the API. Content
// handlers call it when an authenticated call answers 401 after the guard
// already let the request through; leaving the cookies in place would bounce
// the browser between the login page and the protected prefix.
func (m *Manager) Invalidate(c *fiber.Ctx) {
	m.store.Clear(c)
}

// Check resolves the request's session state. The cached cookie snapshot is
// revalidated against the profile endpoint: a 401 invalidates and clears the
// session, an unreachable API falls back to the trust policy, and any other
// failure counts as unauthenticated without touching the cookies.
func (m *Manager) Check(c *fiber.Ctx) (State, *session.Session) {
	s := m.store.Read(c)
	if s == nil {
		return StateUnauthenticated, nil
	}

	user, err := m.client.Profile(c.Context(), s.Token)

	switch {
	case err == nil:
		s.User = *user
		return StateAuthenticated, s

	case errors.Is(err, backend.ErrUnauthorized):
		m.store.Clear(c)
		return StateUnauthenticated, nil

	case errors.Is(err, backend.ErrNetworkUnavailable):
		if m.trustCacheOnNetworkError {
			log.Warn().Err(err).Msg("api unreachable, trusting cached session")
			return StateAuthenticated, s
		}

		log.Warn().Err(err).Msg("api unreachable, treating session as unauthenticated")

		return StateUnauthenticated, nil

	default:
		log.Error().Err(err).Msg("session check failed")
		return StateUnauthenticated, nil
	}
}

// Resolve returns the cookie snapshot without contacting the API. Public
// pages use it to personalize rendering; it proves nothing.
func (m *Manager) Resolve(c *fiber.Ctx) *session.Session {
	return m.store.Read(c)
}

// isSessionCookie reports whether a raw Set-Cookie value targets one of the
// cookies the store already owns.
func isSessionCookie(setCookie string) bool {
	pair, _, _ := strings.Cut(setCookie, ";")

	name, _, _ := strings.Cut(strings.TrimSpace(pair), "=")

	return name == session.UserCookie || name == session.TokenCookie
}
