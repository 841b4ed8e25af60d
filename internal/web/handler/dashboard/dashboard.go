// Package dashboard provides the protected dashboard overview page.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	client  *backend.Client
	manager *auth.Manager
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, client *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || client == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.client = client
	s.manager = manager

	app.Get(Path, auth.RequireSession(manager, "/login"), s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard", "overview").
		AddBreadcrumb("Dashboard", Path, true)

	user, _ := auth.UserFromCtx(c)

	stats, err := s.client.DashboardStats(c.Context(), auth.TokenFromCtx(c))
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			// token died between the session check and this call; drop
			// the cookies or the gate bounces the browser right back
			s.manager.Invalidate(c)

			return c.Redirect("/login")
		}

		log.Error().Err(err).Msg("failed to fetch dashboard stats")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load dashboard stats")
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"User":       user,
		"Stats":      stats,
	}, handler.BaseLayout)
}
