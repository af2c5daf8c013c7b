package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/application/syncvalidation"
)

// HealthScheduler periodically runs the validation health check for each
// configured tenant and logs degradations. It exists so unhealthy evaluator
// dimensions or platform provisioning gaps surface without waiting for the
// next sync run to fail.
type HealthScheduler struct {
	service  *syncvalidation.ValidationService
	tenants  []uuid.UUID
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewHealthScheduler creates a new HealthScheduler
func NewHealthScheduler(service *syncvalidation.ValidationService, tenants []uuid.UUID, interval time.Duration, logger *zap.Logger) *HealthScheduler {
	return &HealthScheduler{
		service:  service,
		tenants:  tenants,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the periodic health check loop
func (s *HealthScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(runCtx)
	s.logger.Info("validation health scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("tenants", len(s.tenants)),
	)
}

// Stop halts the loop and waits for the in-flight check to finish
func (s *HealthScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
	s.logger.Info("validation health scheduler stopped")
}

func (s *HealthScheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First check runs immediately rather than one interval in
	s.checkAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkAll(ctx)
		}
	}
}

func (s *HealthScheduler) checkAll(ctx context.Context) {
	for _, tenantID := range s.tenants {
		result := s.service.GetValidationHealthCheck(ctx, tenantID)
		if result.Healthy {
			s.logger.Debug("validation health check passed",
				zap.String("tenant_id", tenantID.String()),
			)
			continue
		}
		s.logger.Warn("validation health check degraded",
			zap.String("tenant_id", tenantID.String()),
			zap.Any("dimensions", result.Dimensions),
			zap.Strings("recommendations", result.Recommendations),
		)
	}
}
