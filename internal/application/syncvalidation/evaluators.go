package syncvalidation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// ---------------------------------------------------------------------------
// Pre-sync Evaluators
// ---------------------------------------------------------------------------

// evaluateDataIntegrity verifies the channel, the orders, and their platform
// mappings exist for the tenant. Orders entirely absent from the repository
// are an error; orders found but not yet mapped are only a warning, because
// a locally new order legitimately has no mapping yet.
func (s *ValidationService) evaluateDataIntegrity(
	ctx context.Context,
	tenantID, channelID uuid.UUID,
	orderIDs []uuid.UUID,
) (*evalOutput, error) {
	out := &evalOutput{checks: 3}

	ch, err := s.channels.FindByIDForTenant(ctx, tenantID, channelID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		out.errors = append(out.errors, syncvalidation.Finding{
			Code:           syncvalidation.CodeChannelNotFound,
			Severity:       syncvalidation.SeverityCritical,
			Category:       syncvalidation.CategoryData,
			Field:          "channelId",
			Value:          channelID.String(),
			Message:        fmt.Sprintf("Channel %s not found for tenant", channelID),
			Recommendation: "Verify the channel is connected and belongs to this tenant",
		})
	} else if !ch.IsEnabled {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeChannelSyncDisabled,
			Severity:       syncvalidation.SeverityHigh,
			Category:       syncvalidation.CategoryData,
			Field:          "channelId",
			Value:          channelID.String(),
			Message:        fmt.Sprintf("Synchronization is disabled for channel %s", ch.Name),
			Recommendation: "Enable synchronization for the channel before syncing",
		})
	}

	if len(orderIDs) == 0 {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeEmptyOrderBatch,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryData,
			Field:          "orderIds",
			Message:        "Order batch is empty; nothing to synchronize",
			Recommendation: "Provide at least one order ID for a meaningful sync",
		})
		return out, nil
	}

	orders, err := s.orders.FindByIDsForTenant(ctx, tenantID, orderIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[uuid.UUID]struct{}, len(orders))
	for _, o := range orders {
		found[o.ID] = struct{}{}
	}
	var missing []string
	for _, id := range orderIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		out.errors = append(out.errors, syncvalidation.Finding{
			Code:           syncvalidation.CodeOrdersNotFound,
			Severity:       syncvalidation.SeverityHigh,
			Category:       syncvalidation.CategoryData,
			Field:          "orderIds",
			Value:          strings.Join(missing, ","),
			Message:        fmt.Sprintf("%d order(s) not found for tenant", len(missing)),
			Recommendation: "Remove unknown order IDs from the batch",
		})
	}

	if len(orders) > 0 {
		mappings, err := s.mappings.FindByLocalOrderIDs(ctx, tenantID, channelID, orderIDs)
		if err != nil {
			return nil, err
		}
		mapped := make(map[uuid.UUID]struct{}, len(mappings))
		for _, m := range mappings {
			mapped[m.LocalOrderID] = struct{}{}
		}
		var unmapped []string
		for _, o := range orders {
			if _, ok := mapped[o.ID]; !ok {
				unmapped = append(unmapped, o.ID.String())
			}
		}
		if len(unmapped) > 0 {
			out.warnings = append(out.warnings, syncvalidation.Finding{
				Code:           syncvalidation.CodeOrderMappingMissing,
				Severity:       syncvalidation.SeverityMedium,
				Category:       syncvalidation.CategoryData,
				Field:          "orderIds",
				Value:          strings.Join(unmapped, ","),
				Message:        fmt.Sprintf("%d order(s) have no platform mapping yet", len(unmapped)),
				Recommendation: "Unmapped orders will be created on the platform during sync",
			})
		}
	}

	return out, nil
}

// evaluateBusinessContext computes the regional business context snapshot.
// Any collaborator failure is returned and converted to the system-error
// finding at the orchestrator boundary.
func (s *ValidationService) evaluateBusinessContext(ctx context.Context) (*evalOutput, error) {
	now := s.now()

	sensitive, err := s.calendar.InSensitivePeriod(ctx, s.region, now)
	if err != nil {
		return nil, err
	}
	holiday, err := s.calendar.IsHoliday(ctx, s.region, now)
	if err != nil {
		return nil, err
	}
	multiplier, err := s.calendar.SeasonalMultiplier(ctx, s.region, now)
	if err != nil {
		return nil, err
	}
	considerations, err := s.calendar.ActiveConsiderations(ctx, s.region, now)
	if err != nil {
		return nil, err
	}

	return &evalOutput{
		checks: 2,
		context: &syncvalidation.BusinessContextSnapshot{
			Timezone:               s.timezone,
			IsSensitivePeriod:      sensitive,
			IsHoliday:              holiday,
			SeasonalMultiplier:     multiplier,
			CulturalConsiderations: considerations,
			Compliance: syncvalidation.ComplianceFlags{
				DataLocalization:       true,
				PersonalDataProtection: true,
			},
		},
	}, nil
}

// evaluatePlatformConfig assembles the per-platform configuration verdicts.
// An incomplete configuration marks the platform invalid without failing the
// whole result; a configuration that is entirely absent is an error.
func (s *ValidationService) evaluatePlatformConfig(platforms []channel.PlatformCode) (*evalOutput, error) {
	out := &evalOutput{checks: len(platforms)}

	for _, code := range platforms {
		provisioning, known := s.registry.Provisioning(code)
		if !known || provisioning.IsEmpty() {
			out.errors = append(out.errors, syncvalidation.Finding{
				Code:           syncvalidation.CodePlatformConfigMissing,
				Severity:       syncvalidation.SeverityHigh,
				Category:       syncvalidation.CategoryPlatform,
				Field:          "platforms",
				Value:          code.String(),
				Message:        fmt.Sprintf("No configuration found for platform %s", code.DisplayName()),
				Recommendation: fmt.Sprintf("Provision %s configuration before syncing to it", code.DisplayName()),
			})
			out.platforms = append(out.platforms, syncvalidation.PlatformValidationResult{
				PlatformCode: code,
				IsValid:      false,
			})
			continue
		}

		checklist := syncvalidation.PlatformChecklist{
			RateLimits:    provisioning.RateLimitsConfigured,
			Auth:          provisioning.AuthConfigured,
			BusinessRules: provisioning.BusinessRulesConfigured,
			ErrorHandling: provisioning.ErrorHandlingConfigured,
		}
		valid := provisioning.IsComplete()
		if !valid {
			out.warnings = append(out.warnings, syncvalidation.Finding{
				Code:           syncvalidation.CodePlatformConfigIncomplete,
				Severity:       syncvalidation.SeverityMedium,
				Category:       syncvalidation.CategoryPlatform,
				Field:          "platforms",
				Value:          code.String(),
				Message:        fmt.Sprintf("Configuration for platform %s is incomplete", code.DisplayName()),
				Recommendation: fmt.Sprintf("Complete %s provisioning: rate limits, auth, business rules, error handling", code.DisplayName()),
			})
		}
		out.platforms = append(out.platforms, syncvalidation.PlatformValidationResult{
			PlatformCode:  code,
			Configuration: checklist,
			IsValid:       valid,
		})
	}

	return out, nil
}

// evaluatePreSyncPerformance applies advisory thresholds to the batch size
// and the estimated sync duration. Performance findings are never errors
// before a sync.
func (s *ValidationService) evaluatePreSyncPerformance(batchSize int) (*evalOutput, error) {
	out := &evalOutput{checks: 2}

	if batchSize > s.thresholds.MaxBatchSize {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeBatchSizeExceeded,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "orderIds",
			Value:          fmt.Sprintf("%d", batchSize),
			Message:        fmt.Sprintf("Batch of %d orders exceeds the recommended maximum of %d", batchSize, s.thresholds.MaxBatchSize),
			Recommendation: "Split the sync into smaller batches",
		})
	}

	estimated := time.Duration(batchSize) * s.thresholds.PerOrderEstimate
	if estimated > s.thresholds.MaxEstimatedDuration {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncDurationHigh,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "orderIds",
			Value:          estimated.String(),
			Message:        fmt.Sprintf("Estimated sync duration %s exceeds %s", estimated, s.thresholds.MaxEstimatedDuration),
			Recommendation: "Reduce the batch size to keep sync duration bounded",
		})
	}

	return out, nil
}

// evaluateSecurity emits the standing regional data-protection advisory.
// It is not conditional on a defect.
func (s *ValidationService) evaluateSecurity() (*evalOutput, error) {
	return &evalOutput{
		checks: 1,
		warnings: []syncvalidation.Finding{{
			Code:            syncvalidation.CodeDataProtectionCompliance,
			Severity:        syncvalidation.SeverityLow,
			Category:        syncvalidation.CategoryData,
			Message:         "Order data contains personal data subject to the regional protection regime",
			Recommendation:  "Ensure order data handling complies with UU PDP personal data protection requirements",
			RegionalContext: true,
		}},
	}, nil
}

// ---------------------------------------------------------------------------
// Post-sync Evaluators
// ---------------------------------------------------------------------------

// evaluateSyncResultStructure checks the required sections of a sync result.
// A missing success flag or summary invalidates the result; a missing
// business context is advisory only.
func (s *ValidationService) evaluateSyncResultStructure(result *syncvalidation.StandardSyncResult) (*evalOutput, error) {
	out := &evalOutput{checks: 3}

	if result.Success == nil {
		out.errors = append(out.errors, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncResultMissingSuccess,
			Severity:       syncvalidation.SeverityHigh,
			Category:       syncvalidation.CategoryData,
			Field:          "success",
			Message:        "Sync result is missing the success flag",
			Recommendation: "Report an explicit boolean success flag from the sync job",
		})
	}

	if result.Summary == nil {
		out.errors = append(out.errors, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncResultMissingSummary,
			Severity:       syncvalidation.SeverityHigh,
			Category:       syncvalidation.CategoryData,
			Field:          "summary",
			Message:        "Sync result is missing the summary counts",
			Recommendation: "Report total, synced, failed, skipped and conflicted counts from the sync job",
		})
	} else if !result.Summary.IsConsistent() {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncSummaryInconsistent,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryData,
			Field:          "summary",
			Message:        "Sync summary counts do not sum to the total order count",
			Recommendation: "Reconcile the sync job's outcome accounting",
		})
	}

	if result.BusinessContext == nil {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:            syncvalidation.CodeSyncResultMissingBusinessContext,
			Severity:        syncvalidation.SeverityMedium,
			Category:        syncvalidation.CategoryBusiness,
			Field:           "businessContext",
			Message:         "Sync result carries no captured business context",
			Recommendation:  "Capture the regional business context at sync time",
			RegionalContext: true,
		})
	}

	return out, nil
}

// evaluatePostSyncPerformance applies advisory thresholds to the sync run's
// telemetry. A slow but successful sync is not invalid, so every finding
// here is a warning.
func (s *ValidationService) evaluatePostSyncPerformance(metrics syncvalidation.SyncPerformanceMetrics) (*evalOutput, error) {
	out := &evalOutput{checks: 4}

	if metrics.TotalDuration > s.thresholds.MaxSyncDuration {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncPerformanceSlow,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "totalDuration",
			Value:          metrics.TotalDuration.String(),
			Message:        fmt.Sprintf("Sync took %s, above the %s threshold", metrics.TotalDuration, s.thresholds.MaxSyncDuration),
			Recommendation: "Reduce batch sizes or schedule syncs outside peak hours",
		})
	}

	if metrics.AverageOrderProcessingTime > s.thresholds.MaxOrderProcessingTime {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncPerformanceOrderProcessingSlow,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "averageOrderProcessingTime",
			Value:          metrics.AverageOrderProcessingTime.String(),
			Message:        fmt.Sprintf("Average order processing took %s, above the %s threshold", metrics.AverageOrderProcessingTime, s.thresholds.MaxOrderProcessingTime),
			Recommendation: "Profile per-order processing in the sync job",
		})
	}

	if metrics.RateLimitHits > 0 {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncPerformanceRateLimitHits,
			Severity:       syncvalidation.SeverityMedium,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "rateLimitHits",
			Value:          fmt.Sprintf("%d", metrics.RateLimitHits),
			Message:        fmt.Sprintf("Platform rate limits were hit %d time(s) during sync", metrics.RateLimitHits),
			Recommendation: "Lower the request rate or spread syncs over a longer window",
		})
	}

	if metrics.CircuitBreakerTriggered {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:           syncvalidation.CodeSyncPerformanceCircuitBreaker,
			Severity:       syncvalidation.SeverityHigh,
			Category:       syncvalidation.CategoryPerformance,
			Field:          "circuitBreakerTriggered",
			Message:        "The circuit breaker opened during sync",
			Recommendation: "Check platform availability before the next sync attempt",
		})
	}

	return out, nil
}

// evaluateConflicts audits the sync result's conflict list after removing
// duplicate (order, type) pairs.
func (s *ValidationService) evaluateConflicts(result *syncvalidation.StandardSyncResult) (*evalOutput, error) {
	conflicts := syncvalidation.DedupeConflicts(result.Conflicts)
	return &evalOutput{
		checks:   1,
		warnings: syncvalidation.AuditConflicts(conflicts),
	}, nil
}

// evaluatePostSyncBusinessRules checks the sync run against the regional
// calendar: a sync executed inside a sensitive high-demand period should
// have been seasonally optimized.
func (s *ValidationService) evaluatePostSyncBusinessRules(
	ctx context.Context,
	result *syncvalidation.StandardSyncResult,
	rules syncvalidation.BusinessRulesConfig,
) (*evalOutput, error) {
	out, err := s.evaluateBusinessContext(ctx)
	if err != nil {
		return nil, err
	}

	if rules.SensitivePeriodAware &&
		out.context != nil && out.context.IsSensitivePeriod &&
		result.BusinessContext != nil && !result.BusinessContext.SyncOptimized {
		out.warnings = append(out.warnings, syncvalidation.Finding{
			Code:            syncvalidation.CodeRamadanSyncNotOptimized,
			Severity:        syncvalidation.SeverityMedium,
			Category:        syncvalidation.CategoryBusiness,
			Field:           "businessContext",
			Message:         "Sync ran during a sensitive high-demand period without seasonal optimization",
			Recommendation:  "Enable seasonal sync optimization during Ramadan and other high-demand periods",
			RegionalContext: true,
		})
	}

	return out, nil
}
