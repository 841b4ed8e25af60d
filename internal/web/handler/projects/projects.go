// Package projects serves the public project listing and the protected
// project management pages under the dashboard.
package projects

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
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the public project listing.
	Path = handler.RootPath + "projects"

	// AdminPath is the path to the protected project management pages.
	AdminPath = "/dashboard/projects"

	listTemplate   = "projects/list"
	detailTemplate = "projects/detail"
	adminTemplate  = "projects/admin"
	formTemplate   = "projects/form"
)

// Form is the project create/edit form payload. Technologies and features
// are comma separated.
type Form struct {
	Title        string `form:"title" validate:"required,min=3,max=200"`
	Description  string `form:"description" validate:"required"`
	Thumbnail    string `form:"thumbnail" validate:"required,url"`
	ProjectURL   string `form:"projectUrl" validate:"omitempty,url"`
	LiveURL      string `form:"liveUrl" validate:"omitempty,url"`
	GithubURL    string `form:"githubUrl" validate:"omitempty,url"`
	Technologies string `form:"technologies"`
	Features     string `form:"features"`
	Published    bool   `form:"published"`
}

func (f *Form) input() *backend.ProjectInput {
	return &backend.ProjectInput{
		Title:        f.Title,
		Description:  f.Description,
		Thumbnail:    f.Thumbnail,
		ProjectURL:   f.ProjectURL,
		LiveURL:      f.LiveURL,
		GithubURL:    f.GithubURL,
		Technologies: splitList(f.Technologies),
		Features:     splitList(f.Features),
		Published:    f.Published,
	}
}

// Service is the projects handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	client  *backend.Client
	manager *auth.Manager

	validate *validator.Validate
}

// Handler is the projects handler.
var Handler = Service{}

// Init initializes the projects handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, client *backend.Client, manager *auth.Manager) {
	if app == nil || cfg == nil || client == nil || manager == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.client = client
	s.manager = manager
	s.validate = validator.New()

	// public pages
	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Detail)

	guard := auth.RequireSession(manager, "/login")

	app.Route(AdminPath, func(router fiber.Router) {
		router.Get(handler.RootPath, guard, s.Admin)
		router.Get("/new", guard, s.New)
		router.Post(handler.RootPath, guard, s.Create)
		router.Get("/:id/edit", guard, s.Edit)
		router.Post("/:id", guard, s.Update)
		router.Post("/:id/delete", guard, s.Delete)
	})
}

// List handles the public project listing.
func (s *Service) List(c *fiber.Ctx) error {
	projects, err := s.client.Projects(c.Context(), "")
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch projects")
	}

	nav := navigation.NewContext("Projects", "public", "projects").
		AddBreadcrumb("Projects", Path, true)

	return c.Render(listTemplate, fiber.Map{
		"Navigation": nav,
		"Projects":   projects,
	}, handler.BaseLayout)
}

// Detail handles a single public project page.
func (s *Service) Detail(c *fiber.Ctx) error {
	project, err := s.client.Project(c.Context(), "", c.Params("id"))
	if err != nil {
		if errors.Is(err, backend.ErrRequestFailed) {
			// the API answers 404 for unknown ids
			return c.Status(fiber.StatusNotFound).SendString("Project not found")
		}

		return s.renderFetchError(c, err, "failed to fetch project")
	}

	nav := navigation.NewContext(project.Title, "public", "projects").
		AddBreadcrumb("Projects", Path, false).
		AddBreadcrumb(project.Title, Path+"/"+project.ID, true)

	return c.Render(detailTemplate, fiber.Map{
		"Navigation": nav,
		"Project":    project,
	}, handler.BaseLayout)
}

// Admin handles the protected project management listing.
func (s *Service) Admin(c *fiber.Ctx) error {
	projects, err := s.client.Projects(c.Context(), auth.TokenFromCtx(c))
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch projects")
	}

	nav := navigation.NewContext("Projects", "dashboard", "projects").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Projects", AdminPath, true)

	return c.Render(adminTemplate, fiber.Map{
		"Navigation": nav,
		"Projects":   projects,
	}, handler.BaseLayout)
}

// New handles the create form rendering.
func (s *Service) New(c *fiber.Ctx) error {
	return s.renderForm(c, "New Project", AdminPath, &Form{}, "")
}

// Create handles the create form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if msg := s.parseForm(c, form); msg != "" {
		return s.renderForm(c, "New Project", AdminPath, form, msg)
	}

	project, err := s.client.CreateProject(c.Context(), auth.TokenFromCtx(c), form.input())
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to create project")
		}

		log.Error().Err(err).Msg("failed to create project")

		return s.renderForm(c, "New Project", AdminPath, form, "saving failed, try again")
	}

	log.Info().Str("id", project.ID).Msg("project created")

	return c.Redirect(AdminPath)
}

// Edit handles the edit form rendering.
func (s *Service) Edit(c *fiber.Ctx) error {
	id := c.Params("id")

	project, err := s.client.Project(c.Context(), auth.TokenFromCtx(c), id)
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch project")
	}

	form := &Form{
		Title:        project.Title,
		Description:  project.Description,
		Thumbnail:    project.Thumbnail,
		ProjectURL:   project.ProjectURL,
		LiveURL:      project.LiveURL,
		GithubURL:    project.GithubURL,
		Technologies: strings.Join(project.Technologies, ", "),
		Features:     strings.Join(project.Features, ", "),
		Published:    project.Published,
	}

	return s.renderForm(c, "Edit Project", AdminPath+"/"+id, form, "")
}

// Update handles the edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	var (
		id     = c.Params("id")
		action = AdminPath + "/" + id
		form   = new(Form)
	)

	if msg := s.parseForm(c, form); msg != "" {
		return s.renderForm(c, "Edit Project", action, form, msg)
	}

	if _, err := s.client.UpdateProject(c.Context(), auth.TokenFromCtx(c), id, form.input()); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to update project")
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update project")

		return s.renderForm(c, "Edit Project", action, form, "saving failed, try again")
	}

	return c.Redirect(AdminPath)
}

// Delete handles the delete form submission.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.client.DeleteProject(c.Context(), auth.TokenFromCtx(c), id); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to delete project")
		}

		log.Error().Err(err).Str("id", id).Msg("failed to delete project")
	}

	return c.Redirect(AdminPath)
}

func (s *Service) parseForm(c *fiber.Ctx, form *Form) string {
	if err := c.BodyParser(form); err != nil {
		return "invalid form data"
	}

	if err := s.validate.Struct(form); err != nil {
		return "invalid form data"
	}

	return ""
}

func (s *Service) renderForm(c *fiber.Ctx, title, action string, form *Form, errMsg string) error {
	nav := navigation.NewContext(title, "dashboard", "projects").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Projects", AdminPath, false).
		AddBreadcrumb(title, action, true)

	return c.Render(formTemplate, fiber.Map{
		"Navigation": nav,
		"Form":       form,
		"Action":     action,
		"error":      errMsg,
	}, handler.BaseLayout)
}

func (s *Service) renderFetchError(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, backend.ErrUnauthorized) {
		// the token died after the guard ran; drop the cookies so the
		// request gate does not bounce the browser straight back here
		s.manager.Invalidate(c)

		return c.Redirect("/login")
	}

	log.Error().Err(err).Msg(msg)

	if errors.Is(err, backend.ErrNetworkUnavailable) {
		return c.Status(fiber.StatusBadGateway).SendString("The portfolio API is unreachable")
	}

	return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}

	return out
}
