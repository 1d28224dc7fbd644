package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/config"
	"github.com/radityabs/rutevis/internal/pkg/database"
	"github.com/radityabs/rutevis/internal/pkg/health"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/middleware"
	natspkg "github.com/radityabs/rutevis/internal/pkg/nats"
	nrpkg "github.com/radityabs/rutevis/internal/pkg/newrelic"
	"github.com/radityabs/rutevis/services/planner/gateway"
	"github.com/radityabs/rutevis/services/planner/handler"
	httpHandler "github.com/radityabs/rutevis/services/planner/handler/http"
	"github.com/radityabs/rutevis/services/planner/repository"
	"github.com/radityabs/rutevis/services/planner/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "planner-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.Nextmv.APIKey == "" {
		zapLogger.Fatal("Nextmv API key is required")
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	plannerRepo := repository.NewPlannerRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	plannerGW := gateway.NewPlannerGW(configs, natsClient)

	// Initialize usecase
	plannerUC := usecase.NewPlannerUC(plannerRepo, plannerGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(plannerUC)
	pointHandler := httpHandler.NewPointHandler(plannerUC)
	vehicleHandler := httpHandler.NewVehicleHandler(plannerUC)
	optimizationHandler := httpHandler.NewOptimizationHandler(plannerUC)
	exportHandler := httpHandler.NewExportHandler(plannerUC)
	proxyHandler := httpHandler.NewProxyHandler(configs.Nextmv)

	h := handler.NewHandler(authHandler, pointHandler, vehicleHandler,
		optimizationHandler, exportHandler, proxyHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
