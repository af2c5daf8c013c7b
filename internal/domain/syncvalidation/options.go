package syncvalidation

import "github.com/channelsync/backend/internal/domain/channel"

// BusinessRulesConfig selects which regional business rules apply
type BusinessRulesConfig struct {
	// RespectBusinessHours gates checks on the tenant's business hours
	RespectBusinessHours bool `json:"respect_business_hours"`
	// SensitivePeriodAware gates checks on culturally sensitive
	// high-demand periods (e.g. Ramadan, harbolnas)
	SensitivePeriodAware bool `json:"sensitive_period_aware"`
}

// ValidationOptions selects which validation dimensions to run.
// It is an immutable input to the orchestrator.
type ValidationOptions struct {
	// ValidateBusinessContext enables the business context evaluator
	ValidateBusinessContext bool `json:"validate_business_context"`
	// ValidatePlatformConfig enables the platform configuration evaluator
	ValidatePlatformConfig bool `json:"validate_platform_config"`
	// ValidateData enables the data integrity evaluator
	ValidateData bool `json:"validate_data"`
	// ValidatePerformance enables the performance evaluator
	ValidatePerformance bool `json:"validate_performance"`
	// ValidateSecurity enables the security evaluator
	ValidateSecurity bool `json:"validate_security"`
	// Platforms lists the target platforms for configuration checks
	Platforms []channel.PlatformCode `json:"platforms,omitempty"`
	// BusinessRules selects the applicable regional business rules
	BusinessRules BusinessRulesConfig `json:"business_rules"`
}

// DefaultOptions returns options with every dimension enabled
func DefaultOptions() ValidationOptions {
	return ValidationOptions{
		ValidateBusinessContext: true,
		ValidatePlatformConfig:  true,
		ValidateData:            true,
		ValidatePerformance:     true,
		ValidateSecurity:        true,
		BusinessRules: BusinessRulesConfig{
			RespectBusinessHours: true,
			SensitivePeriodAware: true,
		},
	}
}
