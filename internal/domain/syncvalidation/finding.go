package syncvalidation

// ---------------------------------------------------------------------------
// Severity represents how serious a finding is
// ---------------------------------------------------------------------------

// Severity represents how serious a finding is, independent of whether the
// finding is an error or a warning.
type Severity string

const (
	// SeverityCritical indicates the finding must be addressed immediately
	SeverityCritical Severity = "critical"
	// SeverityHigh indicates the finding needs prompt attention
	SeverityHigh Severity = "high"
	// SeverityMedium indicates the finding should be reviewed
	SeverityMedium Severity = "medium"
	// SeverityLow indicates the finding is informational
	SeverityLow Severity = "low"
)

// IsValid returns true if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// Rank returns a numeric rank for ordering findings, lower is more severe
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// ---------------------------------------------------------------------------
// Category represents the dimension a finding belongs to
// ---------------------------------------------------------------------------

// Category represents the validation dimension a finding belongs to
type Category string

const (
	// CategoryData covers data integrity checks
	CategoryData Category = "data"
	// CategoryPlatform covers platform configuration and internal faults
	CategoryPlatform Category = "platform"
	// CategoryPerformance covers performance thresholds
	CategoryPerformance Category = "performance"
	// CategorySecurity covers security and compliance checks
	CategorySecurity Category = "security"
	// CategoryBusiness covers regional business-rule checks
	CategoryBusiness Category = "business"
)

// IsValid returns true if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryData, CategoryPlatform, CategoryPerformance, CategorySecurity, CategoryBusiness:
		return true
	default:
		return false
	}
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// ---------------------------------------------------------------------------
// Finding
// ---------------------------------------------------------------------------

// Finding is the atomic unit produced by a rule evaluator. Whether a finding
// invalidates the result is decided by which list it lands in: findings in
// ValidationResult.Errors invalidate, findings in Warnings are advisory.
type Finding struct {
	// Code is the stable identifier of the finding
	Code string `json:"code"`
	// Severity is how serious the finding is
	Severity Severity `json:"severity"`
	// Category is the validation dimension the finding belongs to
	Category Category `json:"category"`
	// Field names the input field the finding refers to, if any
	Field string `json:"field,omitempty"`
	// Value carries the offending value, if any
	Value string `json:"value,omitempty"`
	// Message is the human-readable description
	Message string `json:"message"`
	// Recommendation suggests how to address the finding
	Recommendation string `json:"recommendation,omitempty"`
	// RegionalContext marks findings driven by regional business rules
	RegionalContext bool `json:"regional_context,omitempty"`
}
