package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByIDsForTenant returns the orders that exist for the tenant. IDs with
// no matching order are absent from the result rather than an error.
func (r *GormOrderRepository) FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, orderIDs []uuid.UUID) ([]channel.ChannelOrder, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	var orderModels []models.ChannelOrderModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, orderIDs).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]channel.ChannelOrder, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

var _ channel.OrderRepository = (*GormOrderRepository)(nil)
