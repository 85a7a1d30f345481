package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finboard/internal/api"
	"finboard/internal/api/handlers"
	"finboard/internal/repository"
	"finboard/internal/service"
	"finboard/pkg/auth"
	"finboard/pkg/config"
	"finboard/pkg/logger"
	"finboard/pkg/postgres"

	"go.uber.org/zap"
)

// @title Finboard API
// @version 1.0
// @description Financial-management dashboard API: owner-scoped transactions, lookup tables and date-range queries

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finboard service")

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	lookupRepo := repository.NewLookupRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	lookupService := service.NewLookupService(lookupRepo, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	lookupHandler := handlers.NewLookupHandler(lookupService, appLogger)

	app := api.SetupRouter(authHandler, txHandler, lookupHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
