// Package blogs serves the public blog pages and the protected blog
// management pages under the dashboard.
package blogs

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
	// Path is the path to the public blog listing.
	Path = handler.RootPath + "blogs"

	// AdminPath is the path to the protected blog management pages.
	AdminPath = "/dashboard/blogs"

	// DefaultPageSize is the default number of posts per page.
	DefaultPageSize = 10

	listTemplate   = "blogs/list"
	detailTemplate = "blogs/detail"
	adminTemplate  = "blogs/admin"
	formTemplate   = "blogs/form"
)

// Form is the blog create/edit form payload. Tags are comma separated.
type Form struct {
	Title         string `form:"title" validate:"required,min=3,max=200"`
	Content       string `form:"content" validate:"required"`
	Excerpt       string `form:"excerpt" validate:"max=500"`
	FeaturedImage string `form:"featuredImage" validate:"omitempty,url"`
	Tags          string `form:"tags"`
	Published     bool   `form:"published"`
}

func (f *Form) input() *backend.BlogInput {
	return &backend.BlogInput{
		Title:         f.Title,
		Content:       f.Content,
		Excerpt:       f.Excerpt,
		FeaturedImage: f.FeaturedImage,
		Tags:          splitTags(f.Tags),
		Published:     f.Published,
	}
}

// Service is the blogs handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	client  *backend.Client
	manager *auth.Manager

	validate *validator.Validate
}

// Handler is the blogs handler.
var Handler = Service{}

// Init initializes the blogs handler.
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
	app.Get(Path+"/:slug", s.Detail)

	// protected management pages
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

// List handles the public blog listing with pagination and search.
func (s *Service) List(c *fiber.Ctx) error {
	params := backend.BlogListParams{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", DefaultPageSize),
		Search: c.Query("search", ""),
	}

	if tags := c.Query("tags", ""); tags != "" {
		params.Tags = splitTags(tags)
	}

	if params.Page < 1 {
		params.Page = 1
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = DefaultPageSize
	}

	posts, pagination, err := s.client.Blogs(c.Context(), "", params)
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch blog posts")
	}

	nav := navigation.NewContext("Blog", "public", "blogs").
		AddBreadcrumb("Blog", Path, true)

	return c.Render(listTemplate, fiber.Map{
		"Navigation": nav,
		"Posts":      posts,
		"Pagination": pagination,
		"Search":     params.Search,
	}, handler.BaseLayout)
}

// Detail handles a single public blog post page.
func (s *Service) Detail(c *fiber.Ctx) error {
	post, err := s.client.Blog(c.Context(), "", c.Params("slug"))
	if err != nil {
		if errors.Is(err, backend.ErrRequestFailed) {
			// the API answers 404 for unknown slugs
			return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
		}

		return s.renderFetchError(c, err, "failed to fetch blog post")
	}

	nav := navigation.NewContext(post.Title, "public", "blogs").
		AddBreadcrumb("Blog", Path, false).
		AddBreadcrumb(post.Title, Path+"/"+post.Slug, true)

	return c.Render(detailTemplate, fiber.Map{
		"Navigation": nav,
		"Post":       post,
	}, handler.BaseLayout)
}

// Admin handles the protected blog management listing.
func (s *Service) Admin(c *fiber.Ctx) error {
	params := backend.BlogListParams{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", DefaultPageSize),
	}

	posts, pagination, err := s.client.Blogs(c.Context(), auth.TokenFromCtx(c), params)
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch blog posts")
	}

	nav := navigation.NewContext("Blog Posts", "dashboard", "blogs").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Blog Posts", AdminPath, true)

	return c.Render(adminTemplate, fiber.Map{
		"Navigation": nav,
		"Posts":      posts,
		"Pagination": pagination,
	}, handler.BaseLayout)
}

// New handles the create form rendering.
func (s *Service) New(c *fiber.Ctx) error {
	return s.renderForm(c, "New Blog Post", AdminPath, &Form{}, "")
}

// Create handles the create form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if msg := s.parseForm(c, form); msg != "" {
		return s.renderForm(c, "New Blog Post", AdminPath, form, msg)
	}

	post, err := s.client.CreateBlog(c.Context(), auth.TokenFromCtx(c), form.input())
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to create blog post")
		}

		log.Error().Err(err).Msg("failed to create blog post")

		return s.renderForm(c, "New Blog Post", AdminPath, form, writeErrorMessage(err))
	}

	log.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("blog post created")

	return c.Redirect(AdminPath)
}

// Edit handles the edit form rendering.
func (s *Service) Edit(c *fiber.Ctx) error {
	id := c.Params("id")

	post, err := s.client.Blog(c.Context(), auth.TokenFromCtx(c), id)
	if err != nil {
		return s.renderFetchError(c, err, "failed to fetch blog post")
	}

	form := &Form{
		Title:         post.Title,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Tags:          strings.Join(post.Tags, ", "),
		Published:     post.Published,
	}

	return s.renderForm(c, "Edit Blog Post", AdminPath+"/"+id, form, "")
}

// Update handles the edit form submission.
func (s *Service) Update(c *fiber.Ctx) error {
	var (
		id     = c.Params("id")
		action = AdminPath + "/" + id
		form   = new(Form)
	)

	if msg := s.parseForm(c, form); msg != "" {
		return s.renderForm(c, "Edit Blog Post", action, form, msg)
	}

	if _, err := s.client.UpdateBlog(c.Context(), auth.TokenFromCtx(c), id, form.input()); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to update blog post")
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update blog post")

		return s.renderForm(c, "Edit Blog Post", action, form, writeErrorMessage(err))
	}

	return c.Redirect(AdminPath)
}

// Delete handles the delete form submission.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.client.DeleteBlog(c.Context(), auth.TokenFromCtx(c), id); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return s.renderFetchError(c, err, "failed to delete blog post")
		}

		log.Error().Err(err).Str("id", id).Msg("failed to delete blog post")
	}

	return c.Redirect(AdminPath)
}

func (s *Service) parseForm(c *fiber.Ctx, form *Form) string {
	if err := c.BodyParser(form); err != nil {
		return "invalid form data"
	}

	if err := s.validate.Struct(form); err != nil {
		return "invalid form data: " + validationMessage(err)
	}

	return ""
}

func (s *Service) renderForm(c *fiber.Ctx, title, action string, form *Form, errMsg string) error {
	nav := navigation.NewContext(title, "dashboard", "blogs").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Blog Posts", AdminPath, false).
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

// splitTags turns a comma separated tag string into a trimmed slice.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

// validationMessage flattens a validator error into a short form message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return "check the " + strings.Join(fields, ", ") + " field(s)"
}

// writeErrorMessage maps a backend write failure to a user facing message.
// Unauthorized never reaches it, that case clears the session instead.
func writeErrorMessage(err error) string {
	if errors.Is(err, backend.ErrNetworkUnavailable) {
		return "the portfolio API is unreachable, try again later"
	}

	return "saving failed, try again"
}
