package syncvalidation

// ComplianceFlags records the outcome of regional compliance checks
type ComplianceFlags struct {
	// DataLocalization indicates order data is held in-region
	DataLocalization bool `json:"data_localization"`
	// PersonalDataProtection indicates the tenant's personal-data-protection
	// regime (e.g. UU PDP) is being observed
	PersonalDataProtection bool `json:"personal_data_protection"`
}

// BusinessContextSnapshot captures the regional business context at the
// moment of an orchestrator invocation. It is computed fresh per invocation
// and never persisted.
type BusinessContextSnapshot struct {
	// Timezone is the tenant's configured IANA timezone
	Timezone string `json:"timezone"`
	// IsSensitivePeriod indicates "now" falls in a culturally sensitive
	// high-demand period
	IsSensitivePeriod bool `json:"is_sensitive_period"`
	// IsHoliday indicates "now" is a recognized public holiday
	IsHoliday bool `json:"is_holiday"`
	// SeasonalMultiplier is the expected demand multiplier for the period
	SeasonalMultiplier float64 `json:"seasonal_multiplier"`
	// CulturalConsiderations lists the considerations active for the period
	CulturalConsiderations []string `json:"cultural_considerations,omitempty"`
	// Compliance records the regional compliance check results
	Compliance ComplianceFlags `json:"compliance"`
}
