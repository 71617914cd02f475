package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/circuitbreaker"
	"github.com/piresc/wakestop/internal/pkg/config"
	"github.com/piresc/wakestop/internal/pkg/database"
	"github.com/piresc/wakestop/internal/pkg/health"
	httpclient "github.com/piresc/wakestop/internal/pkg/http"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/middleware"
	"github.com/piresc/wakestop/internal/pkg/nats"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/internal/pkg/server"
	wspkg "github.com/piresc/wakestop/internal/pkg/websocket"
	"github.com/piresc/wakestop/services/tracker/gateway"
	"github.com/piresc/wakestop/services/tracker/handler"
	"github.com/piresc/wakestop/services/tracker/repository"
	"github.com/piresc/wakestop/services/tracker/usecase"
)

func main() {
	appName := "tracker-service"
	configPath := "config/tracker.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	logger.Info("NATS client initialized",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	// Repositories
	counterRepo := repository.NewCounterRepository(configs, postgresClient.GetDB())
	snapshotRepo := repository.NewSnapshotRepository(configs, redisClient)

	// Gateways
	callBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("call-backend"), zapLogger)
	callClient := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Services.CallBackendURL,
		Timeout: configs.Call.RequestTimeout,
		Breaker: callBreaker,
	})
	callBackendGW := gateway.NewCallBackendGW(callClient)
	notificationGW := gateway.NewNotificationGW(natsClient)

	// Usecase
	alarm := usecase.NewAlarmTrigger(configs, notificationGW, callBackendGW, counterRepo,
		usecase.JWTTokenSource(configs.JWT), usecase.WithNewRelic(nrApp))
	tripUC, err := usecase.NewTripUC(configs, alarm, counterRepo, snapshotRepo, notificationGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize trip use case", logger.Err(err))
	}

	// Handlers
	wsManager := wspkg.NewManager(configs.JWT)
	tripHandler := handler.NewHandler(tripUC, natsClient, wsManager, configs, nrApp)
	if err := tripHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// panic recovery must stay first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("call-backend", callBreaker)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	tripHandler.RegisterRoutes(e, redisClient.Client)

	// Components close in reverse order: stop intake first, flush trips, then drop connections
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register("trips", tripUC.Close)
	shutdownManager.Register("nats-consumers", func(context.Context) error {
		tripHandler.Close()
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("HTTP server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
