package server

import (
	"fmt"

	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "storefront-gateway/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// limiter is nil when inbound rate limiting is disabled.
	limiter *IPRateLimiter
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "storefront-gateway",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + SessionHeader,
		ExposeHeaders: SessionHeader + ", X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	var limiter *IPRateLimiter
	if cfg.InboundRateLimit > 0 {
		limiter = NewIPRateLimiter(cfg.InboundRateLimit)
		app.Use(limiter.Handler())
	}

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return &Server{
		App:     app,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	if s.limiter != nil {
		s.limiter.Close()
	}
	return s.App.Shutdown()
}
