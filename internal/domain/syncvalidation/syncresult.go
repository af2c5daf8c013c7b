package syncvalidation

import (
	"encoding/json"
	"time"
)

// ---------------------------------------------------------------------------
// StandardSyncResult
// ---------------------------------------------------------------------------
//
// StandardSyncResult is produced by the external sync job and consumed
// read-only by post-sync validation. Required sections are pointers so that a
// malformed result arriving off the wire can be detected as a structural
// finding instead of silently defaulting.

// SyncSummary holds the per-batch order counts
type SyncSummary struct {
	// TotalOrders is the number of orders in the sync batch
	TotalOrders int `json:"total_orders"`
	// SyncedOrders is the number of orders synchronized successfully
	SyncedOrders int `json:"synced_orders"`
	// FailedOrders is the number of orders that failed to synchronize
	FailedOrders int `json:"failed_orders"`
	// SkippedOrders is the number of orders skipped
	SkippedOrders int `json:"skipped_orders"`
	// ConflictedOrders is the number of orders with detected conflicts
	ConflictedOrders int `json:"conflicted_orders"`
}

// IsConsistent returns true if the outcome counts sum to the total
func (s SyncSummary) IsConsistent() bool {
	return s.SyncedOrders+s.FailedOrders+s.SkippedOrders+s.ConflictedOrders == s.TotalOrders
}

// OrderOutcome records the per-order result of a sync attempt
type OrderOutcome struct {
	// OrderID is the local order ID
	OrderID string `json:"order_id"`
	// PlatformOrderID is the order ID on the platform, if known
	PlatformOrderID string `json:"platform_order_id,omitempty"`
	// Synced indicates the order synchronized successfully
	Synced bool `json:"synced"`
	// ErrorMessage carries the failure reason when Synced is false
	ErrorMessage string `json:"error_message,omitempty"`
}

// SyncPerformanceMetrics holds the performance telemetry of a sync run.
// Sync jobs report durations on the wire as integer milliseconds; the
// custom JSON methods convert to and from time.Duration.
type SyncPerformanceMetrics struct {
	// TotalDuration is the wall-clock duration of the sync run
	TotalDuration time.Duration
	// AverageOrderProcessingTime is the mean per-order processing time
	AverageOrderProcessingTime time.Duration
	// APICallCount is the number of platform API calls made
	APICallCount int
	// RateLimitHits is the number of platform rate-limit responses
	RateLimitHits int
	// RetryCount is the number of retried operations
	RetryCount int
	// CircuitBreakerTriggered indicates the circuit breaker opened
	CircuitBreakerTriggered bool
}

// syncPerformanceMetricsJSON is the wire form of SyncPerformanceMetrics,
// with durations as integer milliseconds
type syncPerformanceMetricsJSON struct {
	TotalDurationMs              int64 `json:"total_duration"`
	AverageOrderProcessingTimeMs int64 `json:"average_order_processing_time"`
	APICallCount                 int   `json:"api_call_count"`
	RateLimitHits                int   `json:"rate_limit_hits"`
	RetryCount                   int   `json:"retry_count"`
	CircuitBreakerTriggered      bool  `json:"circuit_breaker_triggered"`
}

// MarshalJSON encodes the durations as integer milliseconds
func (m SyncPerformanceMetrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(syncPerformanceMetricsJSON{
		TotalDurationMs:              m.TotalDuration.Milliseconds(),
		AverageOrderProcessingTimeMs: m.AverageOrderProcessingTime.Milliseconds(),
		APICallCount:                 m.APICallCount,
		RateLimitHits:                m.RateLimitHits,
		RetryCount:                   m.RetryCount,
		CircuitBreakerTriggered:      m.CircuitBreakerTriggered,
	})
}

// UnmarshalJSON decodes durations given as integer milliseconds
func (m *SyncPerformanceMetrics) UnmarshalJSON(data []byte) error {
	var wire syncPerformanceMetricsJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.TotalDuration = time.Duration(wire.TotalDurationMs) * time.Millisecond
	m.AverageOrderProcessingTime = time.Duration(wire.AverageOrderProcessingTimeMs) * time.Millisecond
	m.APICallCount = wire.APICallCount
	m.RateLimitHits = wire.RateLimitHits
	m.RetryCount = wire.RetryCount
	m.CircuitBreakerTriggered = wire.CircuitBreakerTriggered
	return nil
}

// SyncBusinessContext is the business context captured by the sync job
type SyncBusinessContext struct {
	// Timezone is the timezone the sync ran under
	Timezone string `json:"timezone"`
	// IsSensitivePeriod indicates the sync ran during a sensitive period
	IsSensitivePeriod bool `json:"is_sensitive_period"`
	// SyncOptimized indicates seasonal sync optimizations were applied
	SyncOptimized bool `json:"sync_optimized"`
}

// StandardSyncResult is the completed result of a sync run
type StandardSyncResult struct {
	// Success indicates the overall run outcome; nil means the field was
	// missing or malformed
	Success *bool `json:"success"`
	// Summary holds the order counts; nil means the section was missing
	Summary *SyncSummary `json:"summary"`
	// Orders holds the per-order outcomes
	Orders []OrderOutcome `json:"orders,omitempty"`
	// Conflicts holds the detected state conflicts
	Conflicts []ConflictObject `json:"conflicts,omitempty"`
	// Performance holds the run's performance telemetry
	Performance SyncPerformanceMetrics `json:"performance"`
	// BusinessContext is the context captured at sync time; nil means the
	// section was missing
	BusinessContext *SyncBusinessContext `json:"business_context"`
}
