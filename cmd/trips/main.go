package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/fleetops/shuttletrack/internal/pkg/config"
	"github.com/fleetops/shuttletrack/internal/pkg/database"
	"github.com/fleetops/shuttletrack/internal/pkg/health"
	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/pkg/middleware"
	natspkg "github.com/fleetops/shuttletrack/internal/pkg/nats"
	nsqpkg "github.com/fleetops/shuttletrack/internal/pkg/nsq"
	"github.com/fleetops/shuttletrack/services/trips/gateway"
	"github.com/fleetops/shuttletrack/services/trips/handler"
	"github.com/fleetops/shuttletrack/services/trips/repository"
	"github.com/fleetops/shuttletrack/services/trips/usecase"
)

const serviceName = "trips-service"

func main() {
	cfg := config.InitConfig("config/trips.env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting trips service",
		logger.String("environment", cfg.App.Environment),
		logger.String("version", cfg.App.Version))

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	nsqProducer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	tripRepo := repository.NewTripRepository(cfg, pgClient.GetDB())
	locationRepo := repository.NewLocationRepository(redisClient)
	tripGW := gateway.NewTripGW(natsClient, nsqProducer)

	tripUC, err := usecase.NewTripUC(cfg, tripRepo, locationRepo, tripGW)
	if err != nil {
		logger.Fatal("Failed to initialize trip use case", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", func(ctx context.Context) error {
		return pgClient.GetDB().PingContext(ctx)
	})
	healthSvc.AddChecker("redis", func(ctx context.Context) error {
		return redisClient.GetClient().Ping(ctx).Err()
	})
	healthSvc.AddChecker("nats", func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats connection lost")
		}
		return nil
	})
	health.RegisterEndpoints(e, serviceName, cfg.App.Version, healthSvc)

	apiKeyMW := middleware.NewAPIKeyMiddleware(&cfg.APIKey)
	h := handler.NewHandler(tripUC, cfg)
	h.RegisterRoutes(e, apiKeyMW)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("HTTP server listening", logger.String("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down trips service")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server gracefully", logger.Err(err))
	}
}
