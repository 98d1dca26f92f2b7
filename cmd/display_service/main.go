package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dialware/golang_services/internal/display_service/app"
	"github.com/dialware/golang_services/internal/display_service/catalog"
	"github.com/dialware/golang_services/internal/display_service/domain"
	"github.com/dialware/golang_services/internal/display_service/middleware"
	pgrepo "github.com/dialware/golang_services/internal/display_service/repository/postgres"
	httptransport "github.com/dialware/golang_services/internal/display_service/transport/http"
	"github.com/dialware/golang_services/internal/platform/config"
	"github.com/dialware/golang_services/internal/platform/database"
	"github.com/dialware/golang_services/internal/platform/logger"
)

const serviceName = "display_service"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel, serviceName)
	appLogger.Info("Display service starting...", "port", cfg.ServicePort)

	cat := catalog.New(cfg.DefaultLocale, appLogger)
	if cfg.LocaleDir != "" {
		if err := cat.LoadBundles(cfg.LocaleDir); err != nil {
			appLogger.Error("Failed to load locale bundles", "error", err, "dir", cfg.LocaleDir)
			os.Exit(1)
		}
	}

	var overrideRepo domain.LabelOverrideRepository
	if cfg.PostgresDSN != "" {
		dbPool, err := database.NewDBPool(context.Background(), cfg.PostgresDSN)
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		overrideRepo = pgrepo.NewPgLabelOverrideRepository(dbPool, appLogger)
		appLogger.Info("Display service connected to PostgreSQL database")
	} else {
		appLogger.Info("No Postgres DSN configured; label overrides are memory-only")
	}

	labelService, err := app.NewLabelService(cat, overrideRepo, appLogger)
	if err != nil {
		appLogger.Error("Failed to build label service", "error", err)
		os.Exit(1)
	}
	if _, err := labelService.LoadStoredOverrides(context.Background()); err != nil {
		appLogger.Error("Failed to load stored label overrides", "error", err)
		os.Exit(1)
	}

	validate := validator.New()
	labelHandler := httptransport.NewLabelHandler(labelService, appLogger, validate)
	adminHandler := httptransport.NewAdminHandler(labelService, appLogger, validate)
	adminAuth := middleware.AdminAuthMiddleware(middleware.AdminAuthConfig{
		JWTSecret:  cfg.AdminJWTSecret,
		APIKeyHash: cfg.AdminAPIKeyHash,
	}, appLogger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(httptransport.PrometheusMetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "Display service is healthy"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		labelHandler.RegisterRoutes(v1)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(adminAuth)
			adminHandler.RegisterRoutes(admin)
		})
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServicePort),
		Handler: r,
	}

	go func() {
		appLogger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("Display service stopped")
}
