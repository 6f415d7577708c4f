package main

// @title Gridref Microservice API
// @version 1.0.0
// @description Микросервис преобразования геопространственных координат. Предоставляет API для работы с тайлами Web Mercator (XYZ), проекцией UTM и ссылками MGRS, а также для конвертации геометрий GeoJSON в WKT.
// @description
// @description Основные возможности:
// @description - Преобразование тайловых координат XYZ в широту/долготу и обратно
// @description - Прямая и обратная проекция UTM (WGS84)
// @description - Кодирование и декодирование ссылок MGRS с настраиваемой точностью
// @description - Оценка географических границ тайлов и квадратов MGRS
// @description - Конвертация геометрий GeoJSON в WKT

// @contact.name API Support
// @contact.email support@gridref-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/gridref-microservice/docs"
	"github.com/gridref-microservice/internal/config"
	httpDelivery "github.com/gridref-microservice/internal/delivery/http"
	"github.com/gridref-microservice/internal/delivery/http/handler"
	"github.com/gridref-microservice/internal/pkg/logger"
	"github.com/gridref-microservice/internal/repository/cache"
	"github.com/gridref-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Gridref Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	convertUC := usecase.NewConvertUseCase(
		cacheRepo,
		log,
		cfg.Cache.BoundsCacheTTL,
		cfg.Cache.TileCacheTTL,
	)

	geometryUC := usecase.NewGeometryUseCase(log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	tileHandler := handler.NewTileHandler(convertUC, log)
	utmHandler := handler.NewUTMHandler(convertUC, log)
	mgrsHandler := handler.NewMGRSHandler(convertUC, log)
	geometryHandler := handler.NewGeometryHandler(geometryUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tileHandler,
		utmHandler,
		mgrsHandler,
		geometryHandler,
	)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
