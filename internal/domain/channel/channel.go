package channel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Channel represents a tenant's connection to a marketplace platform
type Channel struct {
	// ID is the unique identifier of the channel
	ID uuid.UUID
	// TenantID is the tenant this channel belongs to
	TenantID uuid.UUID
	// PlatformCode identifies which marketplace this channel connects to
	PlatformCode PlatformCode
	// Name is the tenant-assigned channel name (e.g. the shop name)
	Name string
	// IsEnabled indicates whether synchronization is enabled for this channel
	IsEnabled bool
	// AuthExpiresAt is when the platform authorization expires
	AuthExpiresAt *time.Time
	// CreatedAt is when the channel was connected
	CreatedAt time.Time
	// UpdatedAt is when the channel was last updated
	UpdatedAt time.Time
}

// IsAuthValid returns true if the channel authorization has not expired
func (c *Channel) IsAuthValid(now time.Time) bool {
	if c.AuthExpiresAt == nil {
		return true
	}
	return c.AuthExpiresAt.After(now)
}

// ChannelOrder is the local record of an order that belongs to a channel
type ChannelOrder struct {
	// ID is the unique identifier of the local order
	ID uuid.UUID
	// TenantID is the tenant this order belongs to
	TenantID uuid.UUID
	// ChannelID is the channel the order was sold through
	ChannelID uuid.UUID
	// OrderNumber is the local order number
	OrderNumber string
	// Status is the locally recorded order status
	Status OrderStatus
	// TotalAmount is the total order amount
	TotalAmount decimal.Decimal
	// ItemCount is the number of line items on the order
	ItemCount int
	// CreatedAt is when the order was created locally
	CreatedAt time.Time
	// UpdatedAt is when the order was last updated locally
	UpdatedAt time.Time
}

// OrderMapping binds a local order to its platform counterpart
type OrderMapping struct {
	// ID is the unique identifier of the mapping
	ID uuid.UUID
	// TenantID is the tenant this mapping belongs to
	TenantID uuid.UUID
	// ChannelID is the channel the mapping belongs to
	ChannelID uuid.UUID
	// LocalOrderID is the local order ID
	LocalOrderID uuid.UUID
	// PlatformOrderID is the order ID on the platform
	PlatformOrderID string
	// LastSyncedAt is when the mapping was last reconciled with the platform
	LastSyncedAt *time.Time
	// CreatedAt is when the mapping was created
	CreatedAt time.Time
}
