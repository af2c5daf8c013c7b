package syncvalidation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/channelsync/backend/internal/domain/channel"
)

// ---------------------------------------------------------------------------
// Conflict Types
// ---------------------------------------------------------------------------

// ConflictType classifies a disagreement between local and platform state
type ConflictType string

const (
	// ConflictTypeStatusMismatch indicates the order status differs
	ConflictTypeStatusMismatch ConflictType = "STATUS_MISMATCH"
	// ConflictTypeAmountMismatch indicates the order amount differs
	ConflictTypeAmountMismatch ConflictType = "AMOUNT_MISMATCH"
)

// IsValid returns true if the conflict type is valid
func (t ConflictType) IsValid() bool {
	switch t {
	case ConflictTypeStatusMismatch, ConflictTypeAmountMismatch:
		return true
	default:
		return false
	}
}

// String returns the string representation of ConflictType
func (t ConflictType) String() string {
	return string(t)
}

// ConflictResolution is the disposition assigned to a conflict
type ConflictResolution string

const (
	// ResolutionPlatformWins adopts the platform-reported state
	ResolutionPlatformWins ConflictResolution = "PLATFORM_WINS"
	// ResolutionLocalWins keeps the locally recorded state
	ResolutionLocalWins ConflictResolution = "LOCAL_WINS"
	// ResolutionDefer leaves the conflict for manual resolution
	ResolutionDefer ConflictResolution = "DEFER"
	// ResolutionMerge combines both states field by field
	ResolutionMerge ConflictResolution = "MERGE"
)

// IsValid returns true if the resolution is valid
func (r ConflictResolution) IsValid() bool {
	switch r {
	case ResolutionPlatformWins, ResolutionLocalWins, ResolutionDefer, ResolutionMerge:
		return true
	default:
		return false
	}
}

// String returns the string representation of ConflictResolution
func (r ConflictResolution) String() string {
	return string(r)
}

// BusinessImpact assesses the consequences of a conflict
type BusinessImpact struct {
	// Critical indicates the conflict must not be left unresolved
	Critical bool `json:"critical"`
	// CustomerFacing indicates the buyer can observe the discrepancy
	CustomerFacing bool `json:"customer_facing"`
	// AffectsShipping indicates fulfilment state is involved
	AffectsShipping bool `json:"affects_shipping"`
	// AffectsPayment indicates financial state is involved
	AffectsPayment bool `json:"affects_payment"`
}

// ConflictObject is a detected disagreement between the locally recorded
// order state and the platform-reported state, plus its resolution label.
// The resolver never mutates order state; applying the resolution is the
// calling job's responsibility.
type ConflictObject struct {
	// OrderID is the local order ID
	OrderID string `json:"order_id"`
	// ExternalOrderID is the order ID on the platform
	ExternalOrderID string `json:"external_order_id"`
	// LocalStatus is the locally recorded status
	LocalStatus channel.OrderStatus `json:"local_status"`
	// ExternalStatus is the platform-reported status
	ExternalStatus channel.OrderStatus `json:"external_status"`
	// PlatformCode identifies the platform
	PlatformCode channel.PlatformCode `json:"platform_code"`
	// ConflictType classifies the disagreement
	ConflictType ConflictType `json:"conflict_type"`
	// Resolution is the assigned disposition
	Resolution ConflictResolution `json:"resolution"`
	// ResolutionStrategy is the rationale for the disposition
	ResolutionStrategy string `json:"resolution_strategy"`
	// RequiresImmediateAttention flags conflicts an operator must act on now
	RequiresImmediateAttention bool `json:"requires_immediate_attention,omitempty"`
	// BusinessImpact is the impact assessment
	BusinessImpact BusinessImpact `json:"business_impact"`
	// RegionalContext is the optional regional annotation
	RegionalContext string `json:"regional_context,omitempty"`
}

// ---------------------------------------------------------------------------
// Conflict Detector
// ---------------------------------------------------------------------------

// OrderState is the slice of order state the detector compares
type OrderState struct {
	// OrderID is the local order ID
	OrderID string
	// ExternalOrderID is the order ID on the platform
	ExternalOrderID string
	// Status is the order status
	Status channel.OrderStatus
	// TotalAmount is the order amount
	TotalAmount decimal.Decimal
}

// DetectConflicts compares a local order state against the platform-reported
// state and returns the typed conflicts, already resolved under the fixed
// policy table. It is a pure function: same inputs, same conflicts.
func DetectConflicts(local, external OrderState, platformCode channel.PlatformCode) []ConflictObject {
	var conflicts []ConflictObject

	if local.Status != external.Status {
		conflicts = append(conflicts, newConflict(local, external, platformCode, ConflictTypeStatusMismatch))
	}
	if !local.TotalAmount.Equal(external.TotalAmount) {
		conflicts = append(conflicts, newConflict(local, external, platformCode, ConflictTypeAmountMismatch))
	}

	return conflicts
}

func newConflict(local, external OrderState, platformCode channel.PlatformCode, conflictType ConflictType) ConflictObject {
	impact := AssessBusinessImpact(conflictType, local.Status, external.Status)
	resolution, strategy, immediate := ResolveConflict(conflictType, impact)

	return ConflictObject{
		OrderID:                    local.OrderID,
		ExternalOrderID:            external.ExternalOrderID,
		LocalStatus:                local.Status,
		ExternalStatus:             external.Status,
		PlatformCode:               platformCode,
		ConflictType:               conflictType,
		Resolution:                 resolution,
		ResolutionStrategy:         strategy,
		RequiresImmediateAttention: immediate,
		BusinessImpact:             impact,
	}
}

// AssessBusinessImpact derives the impact of a conflict from the statuses
// involved on either side.
func AssessBusinessImpact(conflictType ConflictType, local, external channel.OrderStatus) BusinessImpact {
	affectsPayment := conflictType == ConflictTypeAmountMismatch ||
		local.AffectsPayment() || external.AffectsPayment()
	affectsShipping := local.AffectsShipping() || external.AffectsShipping()
	customerFacing := affectsShipping || external.IsFinal()

	return BusinessImpact{
		Critical:        affectsPayment || (external.IsFinal() && !local.IsFinal()),
		CustomerFacing:  customerFacing,
		AffectsShipping: affectsShipping,
		AffectsPayment:  affectsPayment,
	}
}

// ---------------------------------------------------------------------------
// Conflict Resolver
// ---------------------------------------------------------------------------

// ResolveConflict maps a conflict type and its impact assessment to a
// resolution under the fixed policy table. The mapping is deterministic:
// a given (type, impact) pair always yields the same resolution.
//
// Policy:
//   - status mismatch, payment-affecting and critical: DEFER. Financial
//     discrepancies are never auto-resolved.
//   - status mismatch, critical but not payment-affecting: the platform wins
//     and the conflict is flagged for immediate attention.
//   - status mismatch, not critical: the platform wins. The platform is the
//     source of truth for shipping-adjacent state.
//   - amount mismatch: DEFER, always.
func ResolveConflict(conflictType ConflictType, impact BusinessImpact) (ConflictResolution, string, bool) {
	switch conflictType {
	case ConflictTypeStatusMismatch:
		if impact.Critical && impact.AffectsPayment {
			return ResolutionDefer,
				"Financial discrepancy detected; deferred for manual review, never auto-resolved",
				true
		}
		if impact.Critical {
			return ResolutionPlatformWins,
				"Platform is source of truth for customer-facing state; flagged for immediate attention",
				true
		}
		return ResolutionPlatformWins,
			"Platform is source of truth for shipping-adjacent order state",
			false

	case ConflictTypeAmountMismatch:
		return ResolutionDefer,
			"Order amounts disagree; financial discrepancies require manual reconciliation",
			true

	default:
		// Unknown conflict types are never auto-resolved
		return ResolutionDefer,
			fmt.Sprintf("Unrecognized conflict type %q; deferred for manual review", conflictType),
			true
	}
}

// DedupeConflicts removes duplicate (orderID, conflictType) pairs, keeping
// the first occurrence. Order of the surviving conflicts is preserved.
func DedupeConflicts(conflicts []ConflictObject) []ConflictObject {
	type key struct {
		orderID      string
		conflictType ConflictType
	}
	seen := make(map[key]struct{}, len(conflicts))
	result := make([]ConflictObject, 0, len(conflicts))
	for _, c := range conflicts {
		k := key{c.OrderID, c.ConflictType}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, c)
	}
	return result
}

// ---------------------------------------------------------------------------
// Conflict Auditor
// ---------------------------------------------------------------------------

// AuditConflicts inspects already-resolved conflicts from a sync result and
// returns advisory findings. Conflicts never invalidate a result on their
// own; the audit only surfaces dispositions that deserve operator attention.
func AuditConflicts(conflicts []ConflictObject) []Finding {
	var findings []Finding

	for _, c := range conflicts {
		if c.RegionalContext == "" {
			findings = append(findings, Finding{
				Code:            CodeConflictMissingIndonesianContext,
				Severity:        SeverityLow,
				Category:        CategoryBusiness,
				Field:           "conflicts",
				Value:           c.OrderID,
				Message:         fmt.Sprintf("Conflict on order %s carries no regional context annotation", c.OrderID),
				Recommendation:  "Annotate conflicts with regional business context for Indonesian operations",
				RegionalContext: true,
			})
		}
		if c.BusinessImpact.Critical && c.Resolution == ResolutionDefer {
			findings = append(findings, Finding{
				Code:           CodeCriticalConflictDeferred,
				Severity:       SeverityHigh,
				Category:       CategoryBusiness,
				Field:          "conflicts",
				Value:          c.OrderID,
				Message:        fmt.Sprintf("Critical conflict on order %s was deferred", c.OrderID),
				Recommendation: "Resolve critical conflicts immediately instead of deferring them",
			})
		}
	}

	return findings
}
