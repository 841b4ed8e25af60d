package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
)

const (
	localsUser  = "auth_user"
	localsToken = "auth_token"

	// RedirectParam carries the page to return to after login.
	RedirectParam = "redirect"
)

// RequireSession blocks the route until a full session check has run. An
// unauthenticated request is redirected to the login page exactly once, with
// the original path in the redirect parameter; nothing of the protected page
// is rendered before the check settles.
func RequireSession(m *Manager, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, s := m.Check(c)
		if state != StateAuthenticated {
			target := loginPath + "?" + RedirectParam + "=" + url.QueryEscape(c.OriginalURL())

			return c.Redirect(target, fiber.StatusFound)
		}

		c.Locals(localsUser, s.User)
		c.Locals(localsToken, s.Token)

		return c.Next()
	}
}

// UserFromCtx returns the checked user set by RequireSession.
func UserFromCtx(c *fiber.Ctx) (backend.UserProfile, bool) {
	user, ok := c.Locals(localsUser).(backend.UserProfile)

	return user, ok
}

// TokenFromCtx returns the session token set by RequireSession.
func TokenFromCtx(c *fiber.Ctx) string {
	token, _ := c.Locals(localsToken).(string)

	return token
}
