package channel

import (
	"context"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Read-only Repository Ports
// ---------------------------------------------------------------------------
//
// The validation engine only ever reads channel state. Missing records are a
// first-class result: lookups return nil (or a shorter slice) rather than an
// error, so callers can classify absence as a finding instead of unwinding.

// ChannelRepository provides read access to channels
type ChannelRepository interface {
	// FindByIDForTenant returns the channel, or nil if it does not exist
	// for the tenant
	FindByIDForTenant(ctx context.Context, tenantID, channelID uuid.UUID) (*Channel, error)
}

// OrderRepository provides read access to local channel orders
type OrderRepository interface {
	// FindByIDsForTenant returns the orders that exist for the tenant.
	// IDs with no matching order are simply absent from the result.
	FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, orderIDs []uuid.UUID) ([]ChannelOrder, error)
}

// OrderMappingRepository provides read access to local-platform order bindings
type OrderMappingRepository interface {
	// FindByLocalOrderIDs returns the mappings that exist for the given
	// local orders. Unmapped orders are simply absent from the result.
	FindByLocalOrderIDs(ctx context.Context, tenantID, channelID uuid.UUID, orderIDs []uuid.UUID) ([]OrderMapping, error)
}
