// Package web wires the Fiber application: templates, static assets, the
// request gate, the access logger and the page handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	loggerfiber "github.com/GoFolio-Admin/GoFolio-Admin/internal/logger/adapter/fiber"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/about"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/blogs"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/contact"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/dashboard"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/login"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/logout"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/profile"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/projects"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	manager      *auth.Manager
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: stay up but unhealthy long
	// enough for the LB to remove this pod from active targets.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: waiting %d seconds before stopping",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and API client.
func New(cfg *config.Config, client *backend.Client) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if client == nil {
		panic("backend client cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logging with request IDs
	app.Use(loggerfiber.New(loggerfiber.Config{Config: cfg.Log}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	store := &session.Store{
		TTL:    cfg.Webserver.Session.ExpiryTime,
		Secure: !cfg.DevMode,
	}

	manager := auth.NewManager(store, client, *cfg.Backend.TrustCacheOnNetworkError)

	// presence-only gate in front of the protected prefix
	app.Use(EdgeGate(store))

	service := &Service{
		cfg:     cfg,
		App:     app,
		manager: manager,
	}

	// init handlers (they register their own routes)
	login.Handler.Init(app, cfg, client, manager)
	logout.Handler.Init(app, cfg, client, manager)
	dashboard.Handler.Init(app, cfg, client, manager)
	profile.Handler.Init(app, cfg, client, manager)
	blogs.Handler.Init(app, cfg, client, manager)
	projects.Handler.Init(app, cfg, client, manager)
	about.Handler.Init(app, cfg, client, manager)
	contact.Handler.Init(app, cfg, client, manager)

	// signed-in visitors land on the dashboard, everyone else on the blog
	app.Get("/", func(c *fiber.Ctx) error {
		if manager.Resolve(c) != nil {
			return c.Redirect(dashboard.Path)
		}

		return c.Redirect(blogs.Path)
	})

	return service
}
