package syncvalidation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/domain/shared"
	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// ---------------------------------------------------------------------------
// Thresholds
// ---------------------------------------------------------------------------

// Thresholds holds the tunable limits applied by the performance evaluator
type Thresholds struct {
	// MaxBatchSize is the advisory limit on orders per sync batch
	MaxBatchSize int
	// PerOrderEstimate is the assumed processing time per order when
	// estimating pre-sync duration
	PerOrderEstimate time.Duration
	// MaxEstimatedDuration is the advisory pre-sync estimate limit
	MaxEstimatedDuration time.Duration
	// MaxSyncDuration is the advisory post-sync total duration limit
	MaxSyncDuration time.Duration
	// MaxOrderProcessingTime is the advisory post-sync per-order limit
	MaxOrderProcessingTime time.Duration
}

// DefaultThresholds returns the standard validation thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxBatchSize:           50,
		PerOrderEstimate:       500 * time.Millisecond,
		MaxEstimatedDuration:   30 * time.Second,
		MaxSyncDuration:        30 * time.Second,
		MaxOrderProcessingTime: 5 * time.Second,
	}
}

// ---------------------------------------------------------------------------
// ValidationService
// ---------------------------------------------------------------------------

// ValidationService orchestrates the two-phase sync validation pipeline.
// Each invocation is a pure function of its inputs plus read-only lookups;
// no validation state is persisted. The public operations never return an
// error for syntactically valid input: collaborator faults degrade into a
// VALIDATION_SYSTEM_ERROR finding on the result instead.
type ValidationService struct {
	channels   channel.ChannelRepository
	orders     channel.OrderRepository
	mappings   channel.OrderMappingRepository
	registry   channel.PlatformConfigRegistry
	calendar   syncvalidation.CalendarProvider
	audit      syncvalidation.AuditLog
	events     shared.EventPublisher
	region     string
	timezone   string
	thresholds Thresholds
	logger     *zap.Logger
	now        func() time.Time
}

// NewValidationService creates a new ValidationService
func NewValidationService(
	channels channel.ChannelRepository,
	orders channel.OrderRepository,
	mappings channel.OrderMappingRepository,
	registry channel.PlatformConfigRegistry,
	calendar syncvalidation.CalendarProvider,
	audit syncvalidation.AuditLog,
	events shared.EventPublisher,
	region string,
	timezone string,
	thresholds Thresholds,
	logger *zap.Logger,
) *ValidationService {
	return &ValidationService{
		channels:   channels,
		orders:     orders,
		mappings:   mappings,
		registry:   registry,
		calendar:   calendar,
		audit:      audit,
		events:     events,
		region:     region,
		timezone:   timezone,
		thresholds: thresholds,
		logger:     logger,
		now:        time.Now,
	}
}

// evalOutput collects everything one rule evaluator produced
type evalOutput struct {
	errors    []syncvalidation.Finding
	warnings  []syncvalidation.Finding
	platforms []syncvalidation.PlatformValidationResult
	context   *syncvalidation.BusinessContextSnapshot
	checks    int
}

// evaluator is one independent, stateless check over a narrow input slice
type evaluator struct {
	name string
	run  func(ctx context.Context) (*evalOutput, error)
}

// ---------------------------------------------------------------------------
// Public Operations
// ---------------------------------------------------------------------------

// ValidatePreSync decides whether a batch of orders is safe to synchronize
// against a channel. The returned error is non-nil only for precondition
// violations on the identifiers themselves.
func (s *ValidationService) ValidatePreSync(
	ctx context.Context,
	tenantID, channelID uuid.UUID,
	orderIDs []uuid.UUID,
	options syncvalidation.ValidationOptions,
) (*syncvalidation.ValidationResult, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidTenant
	}
	if channelID == uuid.Nil {
		return nil, shared.ErrInvalidChannel
	}

	var evaluators []evaluator
	if options.ValidateData {
		evaluators = append(evaluators, evaluator{"data", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluateDataIntegrity(ctx, tenantID, channelID, orderIDs)
		}})
	}
	if options.ValidateBusinessContext {
		evaluators = append(evaluators, evaluator{"business_context", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluateBusinessContext(ctx)
		}})
	}
	if options.ValidatePlatformConfig {
		evaluators = append(evaluators, evaluator{"platform_config", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluatePlatformConfig(options.Platforms)
		}})
	}
	if options.ValidatePerformance {
		evaluators = append(evaluators, evaluator{"performance", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluatePreSyncPerformance(len(orderIDs))
		}})
	}
	if options.ValidateSecurity {
		evaluators = append(evaluators, evaluator{"security", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluateSecurity()
		}})
	}

	result := s.aggregate(s.fanOut(ctx, evaluators))
	s.emit(ctx, tenantID, channelID, syncvalidation.ValidationTypePreSync, result)
	return result, nil
}

// ValidatePostSync audits the completed result of a sync attempt for
// structural correctness, performance pathology, and state conflicts.
func (s *ValidationService) ValidatePostSync(
	ctx context.Context,
	tenantID, channelID uuid.UUID,
	syncResult *syncvalidation.StandardSyncResult,
	options syncvalidation.ValidationOptions,
) (*syncvalidation.ValidationResult, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidTenant
	}
	if channelID == uuid.Nil {
		return nil, shared.ErrInvalidChannel
	}
	if syncResult == nil {
		return nil, shared.ErrInvalidInput
	}

	var evaluators []evaluator
	if options.ValidateData {
		evaluators = append(evaluators, evaluator{"structure", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluateSyncResultStructure(syncResult)
		}})
		evaluators = append(evaluators, evaluator{"conflicts", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluateConflicts(syncResult)
		}})
	}
	if options.ValidatePerformance {
		evaluators = append(evaluators, evaluator{"performance", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluatePostSyncPerformance(syncResult.Performance)
		}})
	}
	if options.ValidateBusinessContext {
		evaluators = append(evaluators, evaluator{"business_rules", func(ctx context.Context) (*evalOutput, error) {
			return s.evaluatePostSyncBusinessRules(ctx, syncResult, options.BusinessRules)
		}})
	}

	result := s.aggregate(s.fanOut(ctx, evaluators))
	s.emit(ctx, tenantID, channelID, syncvalidation.ValidationTypePostSync, result)
	return result, nil
}

// ---------------------------------------------------------------------------
// Fan-out and Aggregation
// ---------------------------------------------------------------------------

// fanOut runs the evaluators concurrently and joins their outputs in the
// original evaluator order, so aggregation is deterministic regardless of
// scheduling.
func (s *ValidationService) fanOut(ctx context.Context, evaluators []evaluator) []*evalOutput {
	outputs := make([]*evalOutput, len(evaluators))

	var wg sync.WaitGroup
	for i, ev := range evaluators {
		wg.Add(1)
		go func(i int, ev evaluator) {
			defer wg.Done()
			outputs[i] = s.runEvaluator(ctx, ev)
		}(i, ev)
	}
	wg.Wait()

	return outputs
}

// runEvaluator invokes one evaluator behind the catch-at-boundary contract:
// a returned error or a panic becomes a single VALIDATION_SYSTEM_ERROR
// finding and is never allowed to escape to the caller.
func (s *ValidationService) runEvaluator(ctx context.Context, ev evaluator) (out *evalOutput) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("validation evaluator panicked",
				zap.String("evaluator", ev.name),
				zap.Any("panic", r),
			)
			out = systemErrorOutput(fmt.Sprintf("%s evaluator panicked: %v", ev.name, r))
		}
	}()

	result, err := ev.run(ctx)
	if err != nil {
		s.logger.Error("validation evaluator failed",
			zap.String("evaluator", ev.name),
			zap.Error(err),
		)
		return systemErrorOutput(fmt.Sprintf("%s evaluator failed: %v", ev.name, err))
	}
	return result
}

// systemErrorOutput converts an internal fault into the single finding the
// engine is allowed to surface for it.
func systemErrorOutput(message string) *evalOutput {
	return &evalOutput{
		errors: []syncvalidation.Finding{{
			Code:           syncvalidation.CodeValidationSystemError,
			Severity:       syncvalidation.SeverityCritical,
			Category:       syncvalidation.CategoryPlatform,
			Message:        message,
			Recommendation: "Investigate the validation system fault before retrying the sync",
		}},
		checks: 1,
	}
}

// aggregate merges evaluator outputs into the final verdict
func (s *ValidationService) aggregate(outputs []*evalOutput) *syncvalidation.ValidationResult {
	var (
		errors    []syncvalidation.Finding
		warnings  []syncvalidation.Finding
		platforms []syncvalidation.PlatformValidationResult
		context   *syncvalidation.BusinessContextSnapshot
		total     int
	)

	for _, out := range outputs {
		if out == nil {
			continue
		}
		errors = append(errors, out.errors...)
		warnings = append(warnings, out.warnings...)
		platforms = append(platforms, out.platforms...)
		if out.context != nil {
			context = out.context
		}
		total += out.checks
	}

	errors = syncvalidation.ClassifyFindings(errors)
	warnings = syncvalidation.ClassifyFindings(warnings)

	failed := len(errors)
	passed := total - failed
	if passed < 0 {
		passed = 0
	}

	return &syncvalidation.ValidationResult{
		IsValid:         len(errors) == 0,
		Errors:          errors,
		Warnings:        warnings,
		BusinessContext: context,
		Platforms:       platforms,
		Performance: syncvalidation.PerformanceCounters{
			TotalChecks:  total,
			PassedChecks: passed,
			FailedChecks: failed,
		},
		Recommendations: syncvalidation.BuildRecommendations(errors, warnings),
	}
}

// emit writes the audit entry and publishes the completion event. Both are
// fire-and-forget: their failure never fails the validation itself.
func (s *ValidationService) emit(
	ctx context.Context,
	tenantID, channelID uuid.UUID,
	validationType string,
	result *syncvalidation.ValidationResult,
) {
	level := syncvalidation.AuditLevelInfo
	message := fmt.Sprintf("%s validation completed: valid", validationType)
	if !result.IsValid {
		level = syncvalidation.AuditLevelError
		message = fmt.Sprintf("%s validation completed: %d error(s)", validationType, len(result.Errors))
	}

	s.audit.Record(ctx, syncvalidation.AuditEntry{
		TenantID:       tenantID,
		ChannelID:      channelID,
		ValidationType: validationType,
		Level:          level,
		Message:        message,
		ErrorCount:     len(result.Errors),
		WarningCount:   len(result.Warnings),
	})

	event := syncvalidation.NewValidationCompletedEvent(tenantID, channelID, validationType, result)
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish validation completed event",
			zap.String("tenant_id", tenantID.String()),
			zap.String("channel_id", channelID.String()),
			zap.String("validation_type", validationType),
			zap.Error(err),
		)
	}

	s.logger.Info("sync validation completed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("channel_id", channelID.String()),
		zap.String("validation_type", validationType),
		zap.Bool("is_valid", result.IsValid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)),
	)
}
