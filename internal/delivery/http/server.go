package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/config"
	"github.com/transit-backoffice/internal/delivery/http/handler"
	"github.com/transit-backoffice/internal/delivery/http/middleware"
	"github.com/transit-backoffice/internal/metrics"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	mapHandler     *handler.MapHandler
	statsHandler   *handler.StatsHandler
	serviceHandler *handler.ServiceHandler
	stopHandler    *handler.StopHandler
	laneHandler    *handler.LaneHandler
	routeHandler   *handler.RouteHandler
	zoneHandler    *handler.ZoneHandler
	iconHandler    *handler.IconHandler

	collector *metrics.Collector
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	collector *metrics.Collector,
	mapHandler *handler.MapHandler,
	statsHandler *handler.StatsHandler,
	serviceHandler *handler.ServiceHandler,
	stopHandler *handler.StopHandler,
	laneHandler *handler.LaneHandler,
	routeHandler *handler.RouteHandler,
	zoneHandler *handler.ZoneHandler,
	iconHandler *handler.IconHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Backoffice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		mapHandler:     mapHandler,
		statsHandler:   statsHandler,
		serviceHandler: serviceHandler,
		stopHandler:    stopHandler,
		laneHandler:    laneHandler,
		routeHandler:   routeHandler,
		zoneHandler:    zoneHandler,
		iconHandler:    iconHandler,
		collector:      collector,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	if s.collector != nil {
		s.app.Use(middleware.Metrics(s.collector))
	}
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Public map aggregation endpoint.
	s.app.Get("/api/map", s.mapHandler.GetMapData)

	if s.collector != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.collector.Handler()))
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	admin := api.Group("/admin")

	admin.Get("/stats", s.statsHandler.GetStatistics)

	services := admin.Group("/services")
	services.Get("/", s.serviceHandler.List)
	services.Post("/", s.serviceHandler.Create)
	services.Get("/:id", s.serviceHandler.GetByID)
	services.Put("/:id", s.serviceHandler.Update)
	services.Delete("/:id", s.serviceHandler.Delete)

	stops := admin.Group("/stops")
	stops.Get("/", s.stopHandler.List)
	stops.Post("/", s.stopHandler.Create)
	stops.Get("/:id", s.stopHandler.GetByID)
	stops.Put("/:id", s.stopHandler.Update)
	stops.Delete("/:id", s.stopHandler.Delete)

	lanes := admin.Group("/lanes")
	lanes.Get("/", s.laneHandler.List)
	lanes.Post("/", s.laneHandler.Create)
	lanes.Get("/:id", s.laneHandler.GetByID)
	lanes.Put("/:id", s.laneHandler.Update)
	lanes.Delete("/:id", s.laneHandler.Delete)

	routes := admin.Group("/routes")
	routes.Get("/", s.routeHandler.List)
	routes.Post("/", s.routeHandler.Create)
	routes.Get("/:id", s.routeHandler.GetByID)
	routes.Put("/:id", s.routeHandler.Update)
	routes.Delete("/:id", s.routeHandler.Delete)

	zones := admin.Group("/zones")
	zones.Get("/", s.zoneHandler.List)
	zones.Post("/", s.zoneHandler.Create)
	zones.Get("/:id", s.zoneHandler.GetByID)
	zones.Put("/:id", s.zoneHandler.Update)
	zones.Delete("/:id", s.zoneHandler.Delete)

	icons := admin.Group("/icons")
	icons.Get("/", s.iconHandler.List)
	icons.Post("/", s.iconHandler.Create)
	icons.Get("/:id", s.iconHandler.GetByID)
	icons.Put("/:id", s.iconHandler.Update)
	icons.Delete("/:id", s.iconHandler.Delete)
}

// App exposes the fiber instance for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
