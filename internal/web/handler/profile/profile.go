// Package profile serves the signed-in account page.
package profile

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the profile page.
	Path = handler.RootPath + "profile"

	// TemplateName is the name of the profile template.
	TemplateName = "profile/profile"
)

// Service is the profile handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	client *backend.Client
}

// Handler is the profile handler.
var Handler = Service{}

// Init initializes the profile handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, client *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || client == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.client = client

	app.Get(Path, auth.RequireSession(manager, "/login"), s.Get)
}

// Get handles the profile page rendering. The guard has already revalidated
// the session against the profile endpoint, so the page renders from the
// user it stored on the request context.
func (s *Service) Get(c *fiber.Ctx) error {
	user, _ := auth.UserFromCtx(c)

	nav := navigation.NewContext("Profile", "dashboard", "profile").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Profile", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"User":       user,
	}, handler.BaseLayout)
}
