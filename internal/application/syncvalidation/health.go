package syncvalidation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// Validation dimensions probed by the health check
const (
	dimensionBusinessContext = "business_context"
	dimensionPlatformConfig  = "platform_config"
	dimensionData            = "data"
	dimensionPerformance     = "performance"
	dimensionSecurity        = "security"
)

// GetValidationHealthCheck probes each rule evaluator in a lightweight
// self-test mode, with no real order data, plus a liveness probe per
// configured platform. It never raises: a failing or panicking probe simply
// counts as unhealthy.
func (s *ValidationService) GetValidationHealthCheck(ctx context.Context, tenantID uuid.UUID) *syncvalidation.HealthCheckResult {
	result := &syncvalidation.HealthCheckResult{
		Dimensions: make(map[string]bool),
		Platforms:  make(map[channel.PlatformCode]bool),
	}

	result.Dimensions[dimensionBusinessContext] = s.probe("business_context", func() error {
		_, err := s.calendar.InSensitivePeriod(ctx, s.region, s.now())
		return err
	})

	result.Dimensions[dimensionPlatformConfig] = s.probe("platform_config", func() error {
		if len(s.registry.ConfiguredPlatforms()) == 0 {
			return fmt.Errorf("no platforms configured")
		}
		return nil
	})

	result.Dimensions[dimensionData] = s.probe("data", func() error {
		// Empty lookups exercise the repositories without touching real
		// order data.
		if _, err := s.orders.FindByIDsForTenant(ctx, tenantID, nil); err != nil {
			return err
		}
		_, err := s.mappings.FindByLocalOrderIDs(ctx, tenantID, uuid.Nil, nil)
		return err
	})

	result.Dimensions[dimensionPerformance] = s.probe("performance", func() error {
		if s.thresholds.MaxBatchSize <= 0 || s.thresholds.MaxSyncDuration <= 0 ||
			s.thresholds.MaxOrderProcessingTime <= 0 || s.thresholds.PerOrderEstimate <= 0 {
			return fmt.Errorf("invalid performance thresholds")
		}
		return nil
	})

	// The security advisory is static configuration; the probe only has to
	// confirm the engine can produce it.
	result.Dimensions[dimensionSecurity] = s.probe("security", func() error {
		_, err := s.evaluateSecurity()
		return err
	})

	for _, code := range s.registry.ConfiguredPlatforms() {
		provisioning, known := s.registry.Provisioning(code)
		result.Platforms[code] = known && provisioning.IsComplete()
	}

	healthy := true
	for _, dimension := range []string{
		dimensionBusinessContext, dimensionPlatformConfig, dimensionData,
		dimensionPerformance, dimensionSecurity,
	} {
		if !result.Dimensions[dimension] {
			healthy = false
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Investigate the %s validation dimension", dimension))
		}
	}
	for _, code := range s.registry.ConfiguredPlatforms() {
		if !result.Platforms[code] {
			healthy = false
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Complete provisioning for platform %s", code.DisplayName()))
		}
	}
	result.Healthy = healthy

	return result
}

// probe runs one health probe, treating errors and panics as unhealthy
func (s *ValidationService) probe(name string, fn func() error) (healthy bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("health probe panicked",
				zap.String("probe", name),
				zap.Any("panic", r),
			)
			healthy = false
		}
	}()

	if err := fn(); err != nil {
		s.logger.Warn("health probe failed",
			zap.String("probe", name),
			zap.Error(err),
		)
		return false
	}
	return true
}
