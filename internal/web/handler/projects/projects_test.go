package projects

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["error"]; exists && v != nil {
			if msg, isStr := v.(string); isStr && msg != "" {
				_, _ = io.WriteString(w, msg)
				return nil
			}
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func setup(t *testing.T, api http.HandlerFunc) (*fiber.App, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	trust := true
	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Hour},
		},
		Backend: config.Backend{URL: srv.URL, Timeout: time.Second, TrustCacheOnNetworkError: &trust},
	}

	app := fiber.New(fiber.Config{Views: noOpViews{}})
	client := backend.New(srv.URL, time.Second)
	store := &session.Store{TTL: time.Hour}
	manager := auth.NewManager(store, client, true)

	var s Service
	s.Init(app, cfg, client, manager)

	return app, store
}

func sessionCookies(t *testing.T, store *session.Store) []*http.Cookie {
	t.Helper()

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		user := backend.UserProfile{ID: "u1", Email: "owner@example.com", Name: "Owner"}
		require.NoError(t, store.Write(c, user, "tok-123"))

		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil), -1)
	require.NoError(t, err)

	return resp.Cookies()
}

func TestList_Public(t *testing.T) {
	app, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "public listing must not send a token")

		_, _ = w.Write([]byte(`{"projects": [{"id": "p1", "title": "Folio"}]}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, listTemplate, string(body))
}

func TestDetail_Public(t *testing.T) {
	app, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects/p1", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "public detail must not send a token")

		_, _ = w.Write([]byte(`{"project": {"id": "p1", "title": "Folio", "description": "A portfolio"}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects/p1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, detailTemplate, string(body))
}

func TestDetail_NotFound(t *testing.T) {
	app, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Project not found"}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects/no-such-id", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdmin_RequiresSession(t *testing.T) {
	app, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"projects": []}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, AdminPath+"/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)
}

func TestAdmin_UnauthorizedClearsSession(t *testing.T) {
	// the session check passes but the content endpoint answers 401:
	// the handler must expire the cookies before redirecting
	app, store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/profile" {
			_, _ = w.Write([]byte(`{"user": {"id": "u1", "email": "owner@example.com", "name": "Owner"}}`))
			return
		}

		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "jwt expired"}`))
	})

	req := httptest.NewRequest(http.MethodGet, AdminPath+"/", nil)
	for _, c := range sessionCookies(t, store) {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	cleared := resp.Cookies()

	names := make([]string, 0, len(cleared))
	for _, c := range cleared {
		names = append(names, c.Name)
		assert.True(t, c.Expires.Before(time.Now()), "cookie %s must be expired", c.Name)
	}

	assert.ElementsMatch(t, []string{session.UserCookie, session.TokenCookie}, names)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"go", "fiber"}, splitList("go, fiber"))
	assert.Equal(t, []string{"solo"}, splitList(" solo "))
	assert.Empty(t, splitList(""))
	assert.Empty(t, splitList(" , ,"))
}
