package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/haircut-scheduler/internal/db"
	"github.com/BruksfildServices01/haircut-scheduler/internal/events"
	"github.com/BruksfildServices01/haircut-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/haircut-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/haircut-scheduler/internal/logger"
	"github.com/BruksfildServices01/haircut-scheduler/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.App.Env)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open database", zap.Error(err))
	}

	grid, err := cfg.Grid()
	if err != nil {
		lg.Fatal("invalid slot grid", zap.Error(err))
	}

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	catalog, err := cache.NewProviderCache(
		infraRepo.NewCatalogGormRepository(db),
		cfg.Cache.ProviderSize,
		lg,
	)
	if err != nil {
		lg.Fatal("failed to build provider cache", zap.Error(err))
	}

	publisher, err := events.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to start event publisher", zap.Error(err))
	}
	defer publisher.Close()

	auditLogger := audit.New(db)
	dispatcher := audit.NewDispatcher(lg, cfg.Audit.QueueSize, auditLogger, publisher)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Log:     lg,
		Repo:    appointmentRepo,
		Catalog: catalog,
		Audit:   dispatcher,
		Grid:    grid,

		AuditLogs: auditLogger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		lg.Warn("audit queue not drained", zap.Error(err))
	}
}
