package login

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/dashboard"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Form is the login form payload.
type Form struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Redirect string `form:"redirect"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	manager *auth.Manager

	validate *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.manager = manager
	s.validate = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"redirect": SanitizeRedirect(c.Query(auth.RedirectParam)),
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return s.renderError(c, form, ErrInvalidFormData.Error())
	}

	if err := s.validate.Struct(form); err != nil {
		return s.renderError(c, form, ErrInvalidFormData.Error())
	}

	_, err := s.manager.Login(c, form.Email, form.Password)

	switch {
	case err == nil:
		// fall through to the redirect

	case errors.Is(err, backend.ErrAuthenticationFailed):
		log.Info().Str("email", form.Email).Msg("login rejected")
		return s.renderError(c, form, ErrInvalidCredentials.Error())

	case errors.Is(err, backend.ErrNetworkUnavailable):
		log.Warn().Err(err).Msg("login failed: api unreachable")
		return s.renderError(c, form, ErrBackendUnavailable.Error())

	default:
		log.Error().Err(err).Msg("login failed")
		return s.renderError(c, form, ErrInternalServerError.Error())
	}

	target := SanitizeRedirect(form.Redirect)
	if target == "" {
		target = dashboard.Path
	}

	return c.Redirect(target)
}

func (s *Service) renderError(c *fiber.Ctx, form *Form, msg string) error {
	return c.Render(TemplateName, fiber.Map{
		"error":    msg,
		"email":    form.Email,
		"redirect": SanitizeRedirect(form.Redirect),
	})
}

// SanitizeRedirect keeps only site-local paths so the login flow cannot be
// used as an open redirect. Anything else collapses to empty.
func SanitizeRedirect(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return ""
	}

	// protocol-relative URLs and backslash tricks
	if strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\") {
		return ""
	}

	return raw
}
