package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/handler"
	"github.com/posline/pos-report-service/internal/logger"
	"github.com/posline/pos-report-service/internal/repository/mysql"
	"github.com/posline/pos-report-service/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	provider := mysql.NewProvider(cfg.Database, appLogger)

	svcs := handler.Services{
		Auth:         service.NewAuthService(provider, appLogger),
		ActivityLogs: service.NewActivityLogService(provider, appLogger),
		SyncLogs:     service.NewSyncLogService(provider, appLogger),
		Sales:        service.NewSaleService(provider, appLogger),
		Incomes:      service.NewIncomeService(provider, appLogger),
		Suppliers:    service.NewSupplierService(provider, appLogger),
		Products:     service.NewProductService(provider, appLogger),
		Movements:    service.NewMovementService(provider, appLogger),
		Companies:    service.NewCompanyService(provider, appLogger),
	}

	if cfg.Logger.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, cfg.Database, provider, svcs)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("❌ HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("forced shutdown")
	}
	appLogger.Info().Msg("✅ Server stopped")
}
