package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/nhero-website/internal/config"
	"github.com/nhero-website/internal/delivery/http/handler"
	"github.com/nhero-website/internal/delivery/http/middleware"
	apperrors "github.com/nhero-website/internal/pkg/errors"
	"github.com/nhero-website/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	pageHandler       *handler.PageHandler
	submissionHandler *handler.SubmissionHandler
}

// NewServer wires middleware and routes.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pageHandler *handler.PageHandler,
	submissionHandler *handler.SubmissionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Nhero Website API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		pageHandler:       pageHandler,
		submissionHandler: submissionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check
	s.app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Submission endpoints - the paths are a public contract.
	s.app.Post("/api/contact", s.submissionHandler.Contact)
	s.app.Post("/api/business-quote", s.submissionHandler.BusinessQuote)
	s.app.Get("/api/captcha", s.submissionHandler.Captcha)

	// Link-in-bio page, exempt from locale prefixing.
	s.app.Get("/links", s.pageHandler.Links)

	// Localized page tree. The handlers validate the locale segment and
	// serve the branded not-found payload for anything outside the
	// supported set.
	s.app.Get("/:locale", s.pageHandler.Home)
	s.app.Get("/:locale/esperienze", s.pageHandler.Experiences)
	s.app.Get("/:locale/esperienze/:slug", s.pageHandler.Experience)
	s.app.Get("/:locale/menu", s.pageHandler.Menu)
	s.app.Get("/:locale/eventi", s.pageHandler.Events)
	s.app.Get("/:locale/eventi/:slug", s.pageHandler.Event)
	s.app.Get("/:locale/business", s.pageHandler.Business)
	s.app.Get("/:locale/contatti", s.pageHandler.Contacts)
	s.app.Get("/:locale/privacy", s.pageHandler.Static("privacy"))
	s.app.Get("/:locale/cookie", s.pageHandler.Static("cookie"))
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler maps anything escaping the handlers onto the error
// taxonomy. Unmatched routes arrive here as fiber 404s.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := apperrors.ErrInternalServer
		if e, ok := err.(*apperrors.AppError); ok {
			appErr = e
		} else if e, ok := err.(*fiber.Error); ok {
			switch e.Code {
			case fiber.StatusNotFound:
				appErr = apperrors.ErrPageNotFound
			case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed:
				appErr = apperrors.ErrInvalidRequest
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)

		return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{
			Error: appErr,
		})
	}
}
