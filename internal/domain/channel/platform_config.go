package channel

// PlatformProvisioning describes which integration concerns are configured
// for a platform. It is static configuration, not runtime state.
type PlatformProvisioning struct {
	// RateLimitsConfigured indicates request rate limits are provisioned
	RateLimitsConfigured bool
	// AuthConfigured indicates API credentials are provisioned
	AuthConfigured bool
	// BusinessRulesConfigured indicates platform business rules are provisioned
	BusinessRulesConfigured bool
	// ErrorHandlingConfigured indicates error handling policy is provisioned
	ErrorHandlingConfigured bool
}

// IsComplete returns true if every provisioning concern is configured
func (p PlatformProvisioning) IsComplete() bool {
	return p.RateLimitsConfigured && p.AuthConfigured &&
		p.BusinessRulesConfigured && p.ErrorHandlingConfigured
}

// IsEmpty returns true if no provisioning concern is configured at all
func (p PlatformProvisioning) IsEmpty() bool {
	return !p.RateLimitsConfigured && !p.AuthConfigured &&
		!p.BusinessRulesConfigured && !p.ErrorHandlingConfigured
}

// PlatformConfigRegistry answers provisioning questions about platforms.
// Implementations are backed by static configuration.
type PlatformConfigRegistry interface {
	// Provisioning returns the provisioning state for a platform. The
	// second return value is false when the platform is unknown to the
	// registry (configuration entirely absent).
	Provisioning(code PlatformCode) (PlatformProvisioning, bool)

	// ConfiguredPlatforms returns the platforms known to the registry
	ConfiguredPlatforms() []PlatformCode
}
