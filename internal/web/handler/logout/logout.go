// Package logout clears the session, remotely and locally.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/login"
)

// Path is the path to the logout endpoint.
const Path = handler.RootPath + "logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	manager *auth.Manager
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.manager = manager

	// logout works with or without a live session
	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout drops the session and sends the browser back to the login page.
// Calling it without a session is a no-op with the same redirect.
func (s *Service) Logout(c *fiber.Ctx) error {
	s.manager.Logout(c)

	return c.Redirect(login.Path)
}
