package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/config"
	dbpkg "github.com/Ayush2004sharma/MedSync-Backend/internal/db"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/infra/cache"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/infra/memory"
	infraRepo "github.com/Ayush2004sharma/MedSync-Backend/internal/infra/repository"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/logger"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/middleware"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/routes"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/timezone"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *zap.Logger) error {
	deps := routes.Dependencies{
		Config: cfg,
		Log:    log,
		Loc:    timezone.Location(cfg.Booking.Timezone),
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		ledger    domain.Repository
		schedules schedule.Store
		sink      audit.Sink
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		ledger, schedules = store, store
		sink = audit.NewZapSink(log)

	default:
		db, err := dbpkg.NewDB(cfg.Database, log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if cfg.Database.MigrateOnStart {
			mg, err := dbpkg.NewMigrator(sqlDB, log)
			if err != nil {
				return err
			}
			if err := mg.Up(); err != nil {
				return err
			}
		}

		ledger = infraRepo.NewAppointmentGormRepository(db)
		schedules = infraRepo.NewScheduleGormRepository(db)
		sink = audit.NewGormSink(db)
		deps.Ping = sqlDB.PingContext
	}

	// ======================================================
	// REDIS (optional)
	// ======================================================
	var limiter middleware.Limiter = middleware.NewLocalLimiter(cfg.Booking.RateLimitRPS, cfg.Booking.RateLimitBurst)

	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer rdb.Close()
			schedules = cache.NewScheduleCache(schedules, rdb, cfg.Redis.ScheduleTTL, log)
			perMinute := int(cfg.Booking.RateLimitRPS * 60)
			if perMinute < cfg.Booking.RateLimitBurst {
				perMinute = cfg.Booking.RateLimitBurst
			}
			limiter = cache.NewWindowLimiter(rdb, perMinute, time.Minute)
		}
	}

	dispatcher := audit.NewDispatcher(sink, log, 256)
	defer dispatcher.Close()

	deps.Ledger = ledger
	deps.Schedules = schedules
	deps.Audit = dispatcher
	deps.Limiter = limiter

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.Storage.Driver),
			zap.String("timezone", deps.Loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-quit:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
