package syncvalidation

import "github.com/channelsync/backend/internal/domain/channel"

// PlatformChecklist is the per-platform configuration checklist
type PlatformChecklist struct {
	// RateLimits indicates request rate limits are configured
	RateLimits bool `json:"rate_limits"`
	// Auth indicates authentication is configured
	Auth bool `json:"auth"`
	// BusinessRules indicates platform business rules are configured
	BusinessRules bool `json:"business_rules"`
	// ErrorHandling indicates error handling is configured
	ErrorHandling bool `json:"error_handling"`
}

// PlatformValidationResult is the per-platform configuration verdict
type PlatformValidationResult struct {
	// PlatformCode identifies the platform
	PlatformCode channel.PlatformCode `json:"platform_code"`
	// Configuration is the configuration checklist
	Configuration PlatformChecklist `json:"configuration"`
	// IsValid is true when the checklist is fully satisfied
	IsValid bool `json:"is_valid"`
}

// PerformanceCounters aggregates check accounting for one invocation.
// FailedChecks always equals the number of errors in the result.
type PerformanceCounters struct {
	// TotalChecks is the number of checks attempted across all dimensions
	TotalChecks int `json:"total_checks"`
	// PassedChecks is the number of checks that passed
	PassedChecks int `json:"passed_checks"`
	// FailedChecks is the number of checks that produced an error
	FailedChecks int `json:"failed_checks"`
}

// ValidationResult is the final verdict of one orchestrator invocation
type ValidationResult struct {
	// IsValid is true iff the result contains no errors
	IsValid bool `json:"is_valid"`
	// Errors are the findings that invalidate the result
	Errors []Finding `json:"errors"`
	// Warnings are advisory findings
	Warnings []Finding `json:"warnings"`
	// BusinessContext is the regional context captured for the invocation
	BusinessContext *BusinessContextSnapshot `json:"business_context,omitempty"`
	// Platforms holds the per-platform configuration verdicts
	Platforms []PlatformValidationResult `json:"platforms,omitempty"`
	// Performance is the check accounting for the invocation
	Performance PerformanceCounters `json:"performance"`
	// Recommendations is the deduplicated recommendation list derived
	// from errors and warnings
	Recommendations []string `json:"recommendations,omitempty"`
}

// HasCriticalError returns true if any error carries critical severity
func (r *ValidationResult) HasCriticalError() bool {
	for _, f := range r.Errors {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// ErrorCodes returns the set of error codes present in the result
func (r *ValidationResult) ErrorCodes() []string {
	codes := make([]string, 0, len(r.Errors))
	for _, f := range r.Errors {
		codes = append(codes, f.Code)
	}
	return codes
}

// WarningCodes returns the set of warning codes present in the result
func (r *ValidationResult) WarningCodes() []string {
	codes := make([]string, 0, len(r.Warnings))
	for _, f := range r.Warnings {
		codes = append(codes, f.Code)
	}
	return codes
}

// HealthCheckResult is the rollup produced by the health aggregator
type HealthCheckResult struct {
	// Healthy is the AND of all dimension and platform probes
	Healthy bool `json:"healthy"`
	// Dimensions maps each validation dimension to its probe outcome
	Dimensions map[string]bool `json:"dimensions"`
	// Platforms maps each configured platform to its probe outcome
	Platforms map[channel.PlatformCode]bool `json:"platforms"`
	// Recommendations is non-empty exactly when Healthy is false
	Recommendations []string `json:"recommendations,omitempty"`
}
