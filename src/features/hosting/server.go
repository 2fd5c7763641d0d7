package hosting

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/features/metrics"
	"github.com/contre95/mediastore/src/features/ui"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Server is the HTTP bridge between the host UI and the media store.
type Server struct {
	app  *fiber.App
	addr string
}

// NewServer creates a new HTTP server. gatherer may be nil when metrics are disabled.
func NewServer(cfg *config.Manager, mediaService *mediastore.Service, gatherer prometheus.Gatherer) *Server {
	engine := ui.NewEngine(cfg.Get().Logger.Level == "debug")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				slog.Error("Internal Server Error", "error", err)
			}
			return c.Status(code).SendString(err.Error())
		},
		AppName:               "MediaStore",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
		// Filenames may contain any character, so route params are matched unescaped.
		UnescapePath: true,
	})

	app.Use(RequestIDMiddleware())
	app.Use(LogAllRequestsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	mediastore.RegisterRoutes(app, mediaService)
	ui.RegisterRoutes(app, ui.NewHandler(cfg, mediaService))
	config.RegisterRoutes(app, cfg)
	if m := cfg.Get().Metrics; m.Enabled && gatherer != nil {
		metrics.RegisterRoutes(app, m.Path, gatherer)
	}

	srv := cfg.Get().Server
	return &Server{
		app:  app,
		addr: net.JoinHostPort(srv.Host, strconv.FormatUint(uint64(srv.Port), 10)),
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.addr
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	return s.app.Listen(s.addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
