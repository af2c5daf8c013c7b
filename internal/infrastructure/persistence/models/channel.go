package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/channelsync/backend/internal/domain/channel"
)

// ChannelModel is the persistence model for the Channel domain entity.
type ChannelModel struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key"`
	TenantID      uuid.UUID            `gorm:"type:uuid;not null;index:idx_channels_tenant,priority:1"`
	PlatformCode  channel.PlatformCode `gorm:"type:varchar(20);not null"`
	Name          string               `gorm:"type:varchar(255);not null"`
	IsEnabled     bool                 `gorm:"not null;default:true"`
	AuthExpiresAt *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ChannelModel) TableName() string {
	return "channels"
}

// ToDomain converts the persistence model to a domain Channel entity.
func (m *ChannelModel) ToDomain() *channel.Channel {
	return &channel.Channel{
		ID:            m.ID,
		TenantID:      m.TenantID,
		PlatformCode:  m.PlatformCode,
		Name:          m.Name,
		IsEnabled:     m.IsEnabled,
		AuthExpiresAt: m.AuthExpiresAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Channel entity.
func (m *ChannelModel) FromDomain(c *channel.Channel) {
	m.ID = c.ID
	m.TenantID = c.TenantID
	m.PlatformCode = c.PlatformCode
	m.Name = c.Name
	m.IsEnabled = c.IsEnabled
	m.AuthExpiresAt = c.AuthExpiresAt
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ChannelOrderModel is the persistence model for the ChannelOrder entity.
type ChannelOrderModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key"`
	TenantID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_channel_orders_tenant,priority:1"`
	ChannelID   uuid.UUID           `gorm:"type:uuid;not null;index:idx_channel_orders_channel,priority:1"`
	OrderNumber string              `gorm:"type:varchar(64);not null"`
	Status      channel.OrderStatus `gorm:"type:varchar(20);not null"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	ItemCount   int                 `gorm:"not null;default:0"`
	CreatedAt   time.Time           `gorm:"not null"`
	UpdatedAt   time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ChannelOrderModel) TableName() string {
	return "channel_orders"
}

// ToDomain converts the persistence model to a domain ChannelOrder entity.
func (m *ChannelOrderModel) ToDomain() *channel.ChannelOrder {
	return &channel.ChannelOrder{
		ID:          m.ID,
		TenantID:    m.TenantID,
		ChannelID:   m.ChannelID,
		OrderNumber: m.OrderNumber,
		Status:      m.Status,
		TotalAmount: m.TotalAmount,
		ItemCount:   m.ItemCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain ChannelOrder entity.
func (m *ChannelOrderModel) FromDomain(o *channel.ChannelOrder) {
	m.ID = o.ID
	m.TenantID = o.TenantID
	m.ChannelID = o.ChannelID
	m.OrderNumber = o.OrderNumber
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.ItemCount = o.ItemCount
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
}

// OrderMappingModel is the persistence model for the OrderMapping entity.
type OrderMappingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index:idx_order_mappings_tenant,priority:1"`
	ChannelID       uuid.UUID `gorm:"type:uuid;not null;index:idx_order_mappings_channel,priority:1"`
	LocalOrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_order_mappings_local_order,priority:1"`
	PlatformOrderID string    `gorm:"type:varchar(100);not null"`
	LastSyncedAt    *time.Time
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderMappingModel) TableName() string {
	return "order_mappings"
}

// ToDomain converts the persistence model to a domain OrderMapping entity.
func (m *OrderMappingModel) ToDomain() *channel.OrderMapping {
	return &channel.OrderMapping{
		ID:              m.ID,
		TenantID:        m.TenantID,
		ChannelID:       m.ChannelID,
		LocalOrderID:    m.LocalOrderID,
		PlatformOrderID: m.PlatformOrderID,
		LastSyncedAt:    m.LastSyncedAt,
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain OrderMapping entity.
func (m *OrderMappingModel) FromDomain(om *channel.OrderMapping) {
	m.ID = om.ID
	m.TenantID = om.TenantID
	m.ChannelID = om.ChannelID
	m.LocalOrderID = om.LocalOrderID
	m.PlatformOrderID = om.PlatformOrderID
	m.LastSyncedAt = om.LastSyncedAt
	m.CreatedAt = om.CreatedAt
}
