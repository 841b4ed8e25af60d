package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

type fakeClient struct {
	login   func(ctx context.Context, email, password string) (*backend.LoginResult, error)
	logout  func(ctx context.Context, token string) error
	profile func(ctx context.Context, token string) (*backend.UserProfile, error)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*backend.LoginResult, error) {
	return f.login(ctx, email, password)
}

func (f *fakeClient) Logout(ctx context.Context, token string) error {
	return f.logout(ctx, token)
}

func (f *fakeClient) Profile(ctx context.Context, token string) (*backend.UserProfile, error) {
	return f.profile(ctx, token)
}

func testUser() backend.UserProfile {
	return backend.UserProfile{ID: "u1", Email: "owner@example.com", Name: "Owner", Role: backend.RoleAdmin}
}

// sessionCookies writes a live session through the store and returns the
// cookies a browser would replay.
func sessionCookies(t *testing.T, store *session.Store, token string) []*http.Cookie {
	t.Helper()

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		require.NoError(t, store.Write(c, testUser(), token))
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil), -1)
	require.NoError(t, err)

	return resp.Cookies()
}

func checkApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		state, s := m.Check(c)
		if state != StateAuthenticated {
			return c.SendStatus(http.StatusUnauthorized)
		}

		return c.SendString(s.User.Email)
	})

	return app
}

func TestManager_Check(t *testing.T) {
	refreshed := testUser()
	refreshed.Name = "Refreshed Owner"

	tests := []struct {
		name        string
		withCookies bool
		trustCache  bool
		profile     func(ctx context.Context, token string) (*backend.UserProfile, error)
		wantStatus  int
		wantCleared bool
	}{
		{
			name:       "no cookies",
			profile:    nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "profile confirms session",
			withCookies: true,
			profile: func(_ context.Context, token string) (*backend.UserProfile, error) {
				require.Equal(t, "tok-123", token)
				return &refreshed, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "stale token is cleared",
			withCookies: true,
			profile: func(context.Context, string) (*backend.UserProfile, error) {
				return nil, backend.ErrUnauthorized
			},
			wantStatus:  http.StatusUnauthorized,
			wantCleared: true,
		},
		{
			name:        "network error with cache trusted",
			withCookies: true,
			trustCache:  true,
			profile: func(context.Context, string) (*backend.UserProfile, error) {
				return nil, errors.Wrap(backend.ErrNetworkUnavailable, "dial tcp: refused")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "network error without cache trust",
			withCookies: true,
			profile: func(context.Context, string) (*backend.UserProfile, error) {
				return nil, backend.ErrNetworkUnavailable
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "unexpected error",
			withCookies: true,
			profile: func(context.Context, string) (*backend.UserProfile, error) {
				return nil, backend.ErrUnrecognizedResponseShape
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &session.Store{TTL: time.Hour}
			m := NewManager(store, &fakeClient{profile: tt.profile}, tt.trustCache)

			req := httptest.NewRequest(http.MethodGet, "/check", nil)
			if tt.withCookies {
				for _, c := range sessionCookies(t, store, "tok-123") {
					req.AddCookie(c)
				}
			}

			resp, err := checkApp(m).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantCleared {
				cookies := resp.Cookies()
				require.NotEmpty(t, cookies)

				for _, c := range cookies {
					assert.True(t, c.Expires.Before(time.Now()), "cookie %q must be expired", c.Name)
				}
			}
		})
	}
}

func TestManager_Login(t *testing.T) {
	store := &session.Store{TTL: time.Hour}

	m := NewManager(store, &fakeClient{
		login: func(_ context.Context, email, password string) (*backend.LoginResult, error) {
			require.Equal(t, "owner@example.com", email)
			require.Equal(t, "secret", password)

			return &backend.LoginResult{
				User:       testUser(),
				Token:      "tok-123",
				SetCookies: []string{"token=tok-123; HttpOnly", "csrf=abc; Path=/"},
			}, nil
		},
	}, true)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		user, err := m.Login(c, "owner@example.com", "secret")
		require.NoError(t, err)

		return c.SendString(user.Email)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	names := make([]string, 0, 3)
	for _, c := range resp.Cookies() {
		names = append(names, c.Name)
	}

	// the store's own cookies plus the forwarded extra one, but not a
	// duplicate token cookie from the API response
	assert.ElementsMatch(t, []string{session.UserCookie, session.TokenCookie, "csrf"}, names)
}

func TestManager_LoginRejected(t *testing.T) {
	store := &session.Store{TTL: time.Hour}

	m := NewManager(store, &fakeClient{
		login: func(context.Context, string, string) (*backend.LoginResult, error) {
			return nil, backend.ErrAuthenticationFailed
		},
	}, true)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		_, err := m.Login(c, "owner@example.com", "wrong")
		require.ErrorIs(t, err, backend.ErrAuthenticationFailed)

		return c.SendStatus(http.StatusUnauthorized)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Cookies(), "rejected login must not touch cookies")
}

func TestManager_LogoutClearsEvenWhenRemoteFails(t *testing.T) {
	store := &session.Store{TTL: time.Hour}

	var remoteCalled bool

	m := NewManager(store, &fakeClient{
		logout: func(_ context.Context, token string) error {
			remoteCalled = true
			require.Equal(t, "tok-123", token)

			return backend.ErrNetworkUnavailable
		},
	}, true)

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		m.Logout(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range sessionCookies(t, store, "tok-123") {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.True(t, remoteCalled)

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	for _, c := range cookies {
		assert.True(t, c.Expires.Before(time.Now()), "cookie %q must be expired", c.Name)
	}
}

func TestManager_LogoutWithoutSession(t *testing.T) {
	store := &session.Store{TTL: time.Hour}
	m := NewManager(store, &fakeClient{}, true)

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		m.Logout(c) // must not call the remote endpoint, fakeClient would panic
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
