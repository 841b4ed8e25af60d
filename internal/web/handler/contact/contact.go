// Package contact serves the public contact page. The form is rendered only;
// submissions go straight to the API from the page.
package contact

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
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// TemplateName is the name of the contact template.
	TemplateName = "contact/contact"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the contact page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Contact", "public", "contact").
		AddBreadcrumb("Contact", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
	}, handler.BaseLayout)
}
