package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	appsync "github.com/channelsync/backend/internal/application/syncvalidation"
	"github.com/channelsync/backend/internal/infrastructure/audit"
	"github.com/channelsync/backend/internal/infrastructure/calendar"
	"github.com/channelsync/backend/internal/infrastructure/config"
	"github.com/channelsync/backend/internal/infrastructure/event"
	"github.com/channelsync/backend/internal/infrastructure/logger"
	"github.com/channelsync/backend/internal/infrastructure/persistence"
	"github.com/channelsync/backend/internal/infrastructure/platformconfig"
	"github.com/channelsync/backend/internal/infrastructure/scheduler"
	"github.com/channelsync/backend/internal/interfaces/http/handler"
	"github.com/channelsync/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access database pool", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	indonesiaCalendar, err := calendar.NewIndonesiaCalendar(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("failed to create calendar provider", zap.Error(err))
	}
	cachedCalendar := calendar.NewCachedCalendar(indonesiaCalendar, redisClient, indonesiaCalendar.Location(), cfg.Calendar.CacheTTL, log)

	eventBus := event.NewInMemoryEventBus(log)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}

	validationService := appsync.NewValidationService(
		persistence.NewGormChannelRepository(db),
		persistence.NewGormOrderRepository(db),
		persistence.NewGormOrderMappingRepository(db),
		platformconfig.NewStaticRegistry(cfg.Platforms),
		cachedCalendar,
		audit.NewZapAuditLog(log),
		eventBus,
		cfg.Calendar.Region,
		cfg.Calendar.Timezone,
		appsync.Thresholds{
			MaxBatchSize:           cfg.Validation.MaxBatchSize,
			PerOrderEstimate:       cfg.Validation.PerOrderEstimate,
			MaxEstimatedDuration:   cfg.Validation.MaxEstimatedDuration,
			MaxSyncDuration:        cfg.Validation.MaxSyncDuration,
			MaxOrderProcessingTime: cfg.Validation.MaxOrderProcessingTime,
		},
		log,
	)

	healthTenants := make([]uuid.UUID, 0, len(cfg.Health.Tenants))
	for _, raw := range cfg.Health.Tenants {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.Warn("skipping invalid tenant id in health config", zap.String("tenant_id", raw))
			continue
		}
		healthTenants = append(healthTenants, id)
	}
	healthScheduler := scheduler.NewHealthScheduler(validationService, healthTenants, cfg.Health.Interval, log)
	healthScheduler.Start(ctx)
	defer healthScheduler.Stop()

	engine := router.Setup(handler.NewValidationHandler(validationService), log)
	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: engine,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("event bus shutdown failed", zap.Error(err))
	}
}
