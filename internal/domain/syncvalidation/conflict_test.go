package syncvalidation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/channelsync/backend/internal/domain/channel"
)

func TestDetectConflicts_NoDifference(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-001",
		Status:      channel.OrderStatusPaid,
		TotalAmount: decimal.NewFromInt(250000),
	}
	external := OrderState{
		ExternalOrderID: "SPX-9001",
		Status:          channel.OrderStatusPaid,
		TotalAmount:     decimal.NewFromInt(250000),
	}

	conflicts := DetectConflicts(local, external, channel.PlatformCodeShopee)

	assert.Empty(t, conflicts)
}

func TestDetectConflicts_AmountScaleDoesNotConflict(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-001",
		Status:      channel.OrderStatusPaid,
		TotalAmount: decimal.RequireFromString("250000.00"),
	}
	external := OrderState{
		ExternalOrderID: "SPX-9001",
		Status:          channel.OrderStatusPaid,
		TotalAmount:     decimal.RequireFromString("250000"),
	}

	conflicts := DetectConflicts(local, external, channel.PlatformCodeShopee)

	assert.Empty(t, conflicts)
}

func TestDetectConflicts_StatusMismatch(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-001",
		Status:      channel.OrderStatusPaid,
		TotalAmount: decimal.NewFromInt(250000),
	}
	external := OrderState{
		ExternalOrderID: "SPX-9001",
		Status:          channel.OrderStatusShipped,
		TotalAmount:     decimal.NewFromInt(250000),
	}

	conflicts := DetectConflicts(local, external, channel.PlatformCodeShopee)

	if assert.Len(t, conflicts, 1) {
		c := conflicts[0]
		assert.Equal(t, ConflictTypeStatusMismatch, c.ConflictType)
		assert.Equal(t, "ORD-001", c.OrderID)
		assert.Equal(t, "SPX-9001", c.ExternalOrderID)
		assert.Equal(t, channel.OrderStatusPaid, c.LocalStatus)
		assert.Equal(t, channel.OrderStatusShipped, c.ExternalStatus)
		assert.Equal(t, channel.PlatformCodeShopee, c.PlatformCode)
		// shipping-adjacent state follows the platform
		assert.Equal(t, ResolutionPlatformWins, c.Resolution)
		assert.False(t, c.RequiresImmediateAttention)
		assert.True(t, c.BusinessImpact.AffectsShipping)
		assert.False(t, c.BusinessImpact.AffectsPayment)
	}
}

func TestDetectConflicts_AmountMismatchAlwaysDefers(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-002",
		Status:      channel.OrderStatusPaid,
		TotalAmount: decimal.NewFromInt(250000),
	}
	external := OrderState{
		ExternalOrderID: "SPX-9002",
		Status:          channel.OrderStatusPaid,
		TotalAmount:     decimal.NewFromInt(245000),
	}

	conflicts := DetectConflicts(local, external, channel.PlatformCodeLazada)

	if assert.Len(t, conflicts, 1) {
		c := conflicts[0]
		assert.Equal(t, ConflictTypeAmountMismatch, c.ConflictType)
		assert.Equal(t, ResolutionDefer, c.Resolution)
		assert.True(t, c.RequiresImmediateAttention)
		assert.True(t, c.BusinessImpact.Critical)
		assert.True(t, c.BusinessImpact.AffectsPayment)
	}
}

func TestDetectConflicts_BothMismatches(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-003",
		Status:      channel.OrderStatusPaid,
		TotalAmount: decimal.NewFromInt(100000),
	}
	external := OrderState{
		ExternalOrderID: "TKP-0003",
		Status:          channel.OrderStatusCancelled,
		TotalAmount:     decimal.NewFromInt(90000),
	}

	conflicts := DetectConflicts(local, external, channel.PlatformCodeTokopedia)

	if assert.Len(t, conflicts, 2) {
		assert.Equal(t, ConflictTypeStatusMismatch, conflicts[0].ConflictType)
		assert.Equal(t, ConflictTypeAmountMismatch, conflicts[1].ConflictType)
		// a cancellation disagreement is financial and must not auto-resolve
		assert.Equal(t, ResolutionDefer, conflicts[0].Resolution)
		assert.True(t, conflicts[0].BusinessImpact.Critical)
		assert.True(t, conflicts[0].BusinessImpact.AffectsPayment)
	}
}

func TestDetectConflicts_Deterministic(t *testing.T) {
	local := OrderState{
		OrderID:     "ORD-004",
		Status:      channel.OrderStatusPacked,
		TotalAmount: decimal.NewFromInt(75000),
	}
	external := OrderState{
		ExternalOrderID: "SPX-9004",
		Status:          channel.OrderStatusDelivered,
		TotalAmount:     decimal.NewFromInt(75000),
	}

	first := DetectConflicts(local, external, channel.PlatformCodeShopee)
	second := DetectConflicts(local, external, channel.PlatformCodeShopee)

	assert.Equal(t, first, second)
}

func TestAssessBusinessImpact_FinalExternalStatus(t *testing.T) {
	impact := AssessBusinessImpact(ConflictTypeStatusMismatch, channel.OrderStatusShipped, channel.OrderStatusCompleted)

	// a completed order the local side has not caught up with is critical
	// and customer facing, but carries no financial consequence
	assert.True(t, impact.Critical)
	assert.True(t, impact.CustomerFacing)
	assert.True(t, impact.AffectsShipping)
	assert.False(t, impact.AffectsPayment)
}

func TestAssessBusinessImpact_RefundInProgress(t *testing.T) {
	impact := AssessBusinessImpact(ConflictTypeStatusMismatch, channel.OrderStatusPaid, channel.OrderStatusRefunding)

	assert.True(t, impact.Critical)
	assert.True(t, impact.AffectsPayment)
	assert.False(t, impact.AffectsShipping)
}

func TestAssessBusinessImpact_NonCritical(t *testing.T) {
	impact := AssessBusinessImpact(ConflictTypeStatusMismatch, channel.OrderStatusPending, channel.OrderStatusPaid)

	assert.False(t, impact.Critical)
	assert.False(t, impact.CustomerFacing)
	assert.False(t, impact.AffectsShipping)
	assert.False(t, impact.AffectsPayment)
}

func TestResolveConflict_PolicyTable(t *testing.T) {
	tests := []struct {
		name              string
		conflictType      ConflictType
		impact            BusinessImpact
		wantResolution    ConflictResolution
		wantImmediate     bool
	}{
		{
			name:           "critical payment status mismatch defers",
			conflictType:   ConflictTypeStatusMismatch,
			impact:         BusinessImpact{Critical: true, AffectsPayment: true},
			wantResolution: ResolutionDefer,
			wantImmediate:  true,
		},
		{
			name:           "critical non-payment status mismatch follows platform",
			conflictType:   ConflictTypeStatusMismatch,
			impact:         BusinessImpact{Critical: true, CustomerFacing: true},
			wantResolution: ResolutionPlatformWins,
			wantImmediate:  true,
		},
		{
			name:           "non-critical status mismatch follows platform",
			conflictType:   ConflictTypeStatusMismatch,
			impact:         BusinessImpact{AffectsShipping: true},
			wantResolution: ResolutionPlatformWins,
			wantImmediate:  false,
		},
		{
			name:           "amount mismatch defers regardless of impact",
			conflictType:   ConflictTypeAmountMismatch,
			impact:         BusinessImpact{},
			wantResolution: ResolutionDefer,
			wantImmediate:  true,
		},
		{
			name:           "unknown type defers",
			conflictType:   ConflictType("INVENTORY_MISMATCH"),
			impact:         BusinessImpact{},
			wantResolution: ResolutionDefer,
			wantImmediate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, strategy, immediate := ResolveConflict(tt.conflictType, tt.impact)
			assert.Equal(t, tt.wantResolution, resolution)
			assert.Equal(t, tt.wantImmediate, immediate)
			assert.NotEmpty(t, strategy)
		})
	}
}

func TestDedupeConflicts(t *testing.T) {
	a := ConflictObject{OrderID: "ORD-001", ConflictType: ConflictTypeStatusMismatch}
	b := ConflictObject{OrderID: "ORD-001", ConflictType: ConflictTypeAmountMismatch}
	c := ConflictObject{OrderID: "ORD-002", ConflictType: ConflictTypeStatusMismatch}

	deduped := DedupeConflicts([]ConflictObject{a, b, a, c, b})

	assert.Equal(t, []ConflictObject{a, b, c}, deduped)
}

func TestDedupeConflicts_Empty(t *testing.T) {
	assert.Empty(t, DedupeConflicts(nil))
}

func TestAuditConflicts(t *testing.T) {
	conflicts := []ConflictObject{
		{
			OrderID:         "ORD-001",
			ConflictType:    ConflictTypeStatusMismatch,
			Resolution:      ResolutionPlatformWins,
			RegionalContext: "harbolnas peak",
		},
		{
			OrderID:        "ORD-002",
			ConflictType:   ConflictTypeAmountMismatch,
			Resolution:     ResolutionDefer,
			BusinessImpact: BusinessImpact{Critical: true, AffectsPayment: true},
		},
	}

	findings := AuditConflicts(conflicts)

	if assert.Len(t, findings, 2) {
		// ORD-002 lacks regional context and is a deferred critical conflict
		assert.Equal(t, CodeConflictMissingIndonesianContext, findings[0].Code)
		assert.Equal(t, "ORD-002", findings[0].Value)
		assert.True(t, findings[0].RegionalContext)
		assert.Equal(t, CodeCriticalConflictDeferred, findings[1].Code)
		assert.Equal(t, "ORD-002", findings[1].Value)
		assert.Equal(t, SeverityHigh, findings[1].Severity)
	}
}

func TestAuditConflicts_CleanConflicts(t *testing.T) {
	conflicts := []ConflictObject{
		{
			OrderID:         "ORD-001",
			ConflictType:    ConflictTypeStatusMismatch,
			Resolution:      ResolutionPlatformWins,
			RegionalContext: "regular period",
		},
	}

	assert.Empty(t, AuditConflicts(conflicts))
}

func TestConflictType_IsValid(t *testing.T) {
	assert.True(t, ConflictTypeStatusMismatch.IsValid())
	assert.True(t, ConflictTypeAmountMismatch.IsValid())
	assert.False(t, ConflictType("PRICE_DRIFT").IsValid())
}

func TestConflictResolution_IsValid(t *testing.T) {
	assert.True(t, ResolutionPlatformWins.IsValid())
	assert.True(t, ResolutionLocalWins.IsValid())
	assert.True(t, ResolutionDefer.IsValid())
	assert.True(t, ResolutionMerge.IsValid())
	assert.False(t, ConflictResolution("COIN_FLIP").IsValid())
}
