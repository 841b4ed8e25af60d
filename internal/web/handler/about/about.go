// Package about serves the public about page.
package about

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
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about template.
	TemplateName = "about/about"
)

// Service is the about handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	client *backend.Client
}

// Handler is the about handler.
var Handler = Service{}

// Init initializes the about handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, client *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || client == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.client = client

	app.Get(Path, s.Get)
}

// Get handles the about page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	about, err := s.client.About(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch about profile")

		if errors.Is(err, backend.ErrNetworkUnavailable) {
			return c.Status(fiber.StatusBadGateway).SendString("The portfolio API is unreachable")
		}

		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}

	nav := navigation.NewContext("About", "public", "about").
		AddBreadcrumb("About", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"About":      about,
	}, handler.BaseLayout)
}
