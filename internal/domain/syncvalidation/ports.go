package syncvalidation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Collaborator Ports
// ---------------------------------------------------------------------------

// AuditLevel is the level an audit entry is recorded at
type AuditLevel string

const (
	// AuditLevelInfo records a successful validation
	AuditLevelInfo AuditLevel = "INFO"
	// AuditLevelError records a failed validation
	AuditLevelError AuditLevel = "ERROR"
)

// AuditEntry is one record written to the audit sink per invocation
type AuditEntry struct {
	// TenantID is the tenant the validation ran for
	TenantID uuid.UUID
	// ChannelID is the channel the validation ran for
	ChannelID uuid.UUID
	// ValidationType is "pre_sync" or "post_sync"
	ValidationType string
	// Level is INFO when the result is valid, ERROR otherwise
	Level AuditLevel
	// Message is the human-readable summary
	Message string
	// ErrorCount is the number of errors in the result
	ErrorCount int
	// WarningCount is the number of warnings in the result
	WarningCount int
}

// AuditLog is the audit sink collaborator. Recording is fire-and-forget
// from the engine's perspective: a failing sink must not fail validation.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry)
}

// CalendarProvider answers regional business-calendar questions for a
// tenant's region. Failures here are the designated trigger for
// VALIDATION_SYSTEM_ERROR.
type CalendarProvider interface {
	// InSensitivePeriod reports whether the given instant falls within a
	// culturally sensitive high-demand period for the region
	InSensitivePeriod(ctx context.Context, region string, at time.Time) (bool, error)

	// IsHoliday reports whether the given instant is a recognized public
	// holiday for the region
	IsHoliday(ctx context.Context, region string, at time.Time) (bool, error)

	// SeasonalMultiplier returns the expected demand multiplier for the
	// given instant (1.0 outside any seasonal window)
	SeasonalMultiplier(ctx context.Context, region string, at time.Time) (float64, error)

	// ActiveConsiderations returns the cultural considerations that apply
	// at the given instant (e.g. adjusted business hours during Ramadan)
	ActiveConsiderations(ctx context.Context, region string, at time.Time) ([]string, error)
}
