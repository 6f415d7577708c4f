package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gridref-microservice/internal/config"
	"github.com/gridref-microservice/internal/delivery/http/handler"
	"github.com/gridref-microservice/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tileHandler     *handler.TileHandler
	utmHandler      *handler.UTMHandler
	mgrsHandler     *handler.MGRSHandler
	geometryHandler *handler.GeometryHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tileHandler *handler.TileHandler,
	utmHandler *handler.UTMHandler,
	mgrsHandler *handler.MGRSHandler,
	geometryHandler *handler.GeometryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Gridref Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		tileHandler:     tileHandler,
		utmHandler:      utmHandler,
		mgrsHandler:     mgrsHandler,
		geometryHandler: geometryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Tile routes
	api.Get("/tiles/:z/:x/:y/coords", s.tileHandler.GetTileCoords)
	api.Get("/tiles/:z/:x/:y/bounds", s.tileHandler.GetTileBounds)
	api.Get("/tiles/:z/:x/:y/polygon", s.tileHandler.GetTilePolygon)
	api.Post("/tiles/locate", s.tileHandler.LocateTile)

	// UTM routes
	api.Post("/utm/from-latlon", s.utmHandler.ToUTM)
	api.Post("/utm/to-latlon", s.utmHandler.FromUTM)

	// MGRS routes
	api.Post("/mgrs/encode", s.mgrsHandler.Encode)
	api.Get("/mgrs/:reference", s.mgrsHandler.Decode)
	api.Get("/mgrs/:reference/bounds", s.mgrsHandler.Bounds)

	// Geometry routes
	api.Post("/geometry/geojson-to-wkt", s.geometryHandler.GeoJSONToWKT)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
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
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
