package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/config"
	httpDelivery "github.com/transit-backoffice/internal/delivery/http"
	"github.com/transit-backoffice/internal/delivery/http/handler"
	"github.com/transit-backoffice/internal/metrics"
	"github.com/transit-backoffice/internal/pkg/logger"
	"github.com/transit-backoffice/internal/publisher"
	"github.com/transit-backoffice/internal/repository/cache"
	"github.com/transit-backoffice/internal/repository/postgres"
	"github.com/transit-backoffice/internal/usecase"
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

	log.Info("Starting Transit Backoffice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
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

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Metrics and change-event publisher
	collector := metrics.NewCollector()

	var changePub usecase.ChangePublisher
	var natsPub *publisher.NATSPublisher
	if cfg.NATS.Enabled {
		natsPub, err = publisher.NewNATSPublisher(cfg.NATS.URL, log, collector)
		if err != nil {
			// Change events are advisory; the API stays up without them.
			log.Error("Failed to connect to NATS, change events disabled", zap.Error(err))
		} else {
			changePub = natsPub
			defer natsPub.Close()
			log.Info("NATS connected", zap.String("url", cfg.NATS.URL))
		}
	}

	// 7. Initialize repositories
	mapRepo := postgres.NewMapRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	stopRepo := postgres.NewStopRepository(db)
	laneRepo := postgres.NewLaneRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	zoneRepo := postgres.NewZoneRepository(db)
	iconRepo := postgres.NewIconRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	log.Info("Repositories initialized")

	// 8. Initialize use cases
	mapUC := usecase.NewMapUseCase(mapRepo, log, collector)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL, collector)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, cacheRepo, changePub, log)
	stopUC := usecase.NewStopUseCase(stopRepo, cacheRepo, changePub, log)
	laneUC := usecase.NewLaneUseCase(laneRepo, cacheRepo, changePub, log)
	routeUC := usecase.NewRouteUseCase(routeRepo, cacheRepo, changePub, log)
	zoneUC := usecase.NewZoneUseCase(zoneRepo, cacheRepo, changePub, log)
	iconUC := usecase.NewIconUseCase(iconRepo, cacheRepo, changePub, log)
	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	mapHandler := handler.NewMapHandler(mapUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	serviceHandler := handler.NewServiceHandler(serviceUC, log)
	stopHandler := handler.NewStopHandler(stopUC, log)
	laneHandler := handler.NewLaneHandler(laneUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	zoneHandler := handler.NewZoneHandler(zoneUC, log)
	iconHandler := handler.NewIconHandler(iconUC, log)
	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		collector,
		mapHandler,
		statsHandler,
		serviceHandler,
		stopHandler,
		laneHandler,
		routeHandler,
		zoneHandler,
		iconHandler,
	)
	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
