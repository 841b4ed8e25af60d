package web

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/login"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

// ProtectedPrefix is the path prefix behind the request gate.
const ProtectedPrefix = "/dashboard"

// EdgeGate is a cheap pre-route gate in front of the protected prefix. It
// only checks that a token cookie exists: a request without one is bounced to
// the login page before any handler runs, with the original URL preserved.
// Requests carrying a stale token pass; the per-route session check catches
// those. The gate also sends browsers with a live session away from the
// login page.
func EdgeGate(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if strings.HasPrefix(path, ProtectedPrefix) && !store.HasToken(c) {
			target := login.Path + "?" + auth.RedirectParam + "=" + url.QueryEscape(c.OriginalURL())

			return c.Redirect(target, fiber.StatusFound)
		}

		if path == login.Path && store.Read(c) != nil {
			return c.Redirect(ProtectedPrefix, fiber.StatusFound)
		}

		return c.Next()
	}
}
