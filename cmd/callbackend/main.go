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
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/internal/pkg/nsq"
	"github.com/piresc/wakestop/internal/pkg/server"
	"github.com/piresc/wakestop/services/callbackend"
	"github.com/piresc/wakestop/services/callbackend/gateway"
	"github.com/piresc/wakestop/services/callbackend/handler"
	"github.com/piresc/wakestop/services/callbackend/repository"
	"github.com/piresc/wakestop/services/callbackend/usecase"
)

func main() {
	appName := "callbackend-service"
	configPath := "config/callbackend.env"
	configs := config.InitConfig(configPath)

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
		logger.String("debounce_scope", configs.Debounce.Scope),
		logger.String("debounce_backend", configs.Debounce.Backend),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))

	var redisClient *database.RedisClient
	if configs.Debounce.Backend == usecase.DebounceBackendRedis {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	}

	debouncer, err := usecase.NewDebouncer(configs.Debounce, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to create call debouncer", logger.Err(err))
	}

	// Repository
	phoneRepo := repository.NewPhoneRepository(configs, postgresClient.GetDB())

	// Gateways
	telephonyBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("telephony"), zapLogger)
	telephonyClient := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.Telephony.BaseURL,
		Timeout: configs.Telephony.Timeout,
		Breaker: telephonyBreaker,
	})
	telephonyGW := gateway.NewTelephonyGW(telephonyClient, configs.Telephony)
	healthService.AddChecker("telephony", telephonyBreaker)

	var auditGW callbackend.AuditGW
	if configs.NSQ.Enabled {
		producer, err := nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		shutdownManager.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
		auditGW = gateway.NewAuditGW(producer, configs.NSQ.Topic)
	}

	// Usecase
	callUC := usecase.NewCallUC(configs, debouncer, phoneRepo, telephonyGW, auditGW)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	handler.NewHandler(callUC, configs).RegisterRoutes(e)

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
