package syncvalidation

// Finding codes produced by the validation engine. Codes are stable
// identifiers consumed by operators and downstream tooling.
const (
	// Pre-sync data validation
	CodeChannelNotFound     = "CHANNEL_NOT_FOUND"
	CodeOrdersNotFound      = "ORDERS_NOT_FOUND"
	CodeOrderMappingMissing = "ORDER_MAPPING_MISSING"
	CodeEmptyOrderBatch     = "EMPTY_ORDER_BATCH"
	CodeChannelSyncDisabled = "CHANNEL_SYNC_DISABLED"

	// Pre-sync performance validation
	CodeBatchSizeExceeded = "BATCH_SIZE_EXCEEDED"
	CodeSyncDurationHigh  = "SYNC_DURATION_HIGH"

	// Pre-sync security validation
	CodeDataProtectionCompliance = "DATA_PROTECTION_COMPLIANCE"

	// Platform configuration validation
	CodePlatformConfigMissing    = "PLATFORM_CONFIG_MISSING"
	CodePlatformConfigIncomplete = "PLATFORM_CONFIG_INCOMPLETE"

	// Post-sync structural validation
	CodeSyncResultMissingSuccess         = "SYNC_RESULT_MISSING_SUCCESS"
	CodeSyncResultMissingSummary         = "SYNC_RESULT_MISSING_SUMMARY"
	CodeSyncResultMissingBusinessContext = "SYNC_RESULT_MISSING_BUSINESS_CONTEXT"
	CodeSyncSummaryInconsistent          = "SYNC_SUMMARY_INCONSISTENT"

	// Post-sync performance validation
	CodeSyncPerformanceSlow                = "SYNC_PERFORMANCE_SLOW"
	CodeSyncPerformanceOrderProcessingSlow = "SYNC_PERFORMANCE_ORDER_PROCESSING_SLOW"
	CodeSyncPerformanceRateLimitHits       = "SYNC_PERFORMANCE_RATE_LIMIT_HITS"
	CodeSyncPerformanceCircuitBreaker      = "SYNC_PERFORMANCE_CIRCUIT_BREAKER"

	// Post-sync conflict validation
	CodeConflictMissingIndonesianContext = "CONFLICT_MISSING_INDONESIAN_CONTEXT"
	CodeCriticalConflictDeferred         = "CRITICAL_CONFLICT_DEFERRED"

	// Post-sync business-rule validation
	CodeRamadanSyncNotOptimized = "RAMADAN_SYNC_NOT_OPTIMIZED"

	// Internal fault containment
	CodeValidationSystemError = "VALIDATION_SYSTEM_ERROR"
)

// RecommendationCriticalErrors is prepended to the recommendation list
// whenever a critical error is present.
const RecommendationCriticalErrors = "Address critical errors before proceeding with sync operation"
