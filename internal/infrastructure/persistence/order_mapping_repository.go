package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/infrastructure/persistence/models"
)

// GormOrderMappingRepository implements OrderMappingRepository using GORM
type GormOrderMappingRepository struct {
	db *gorm.DB
}

// NewGormOrderMappingRepository creates a new GormOrderMappingRepository
func NewGormOrderMappingRepository(db *gorm.DB) *GormOrderMappingRepository {
	return &GormOrderMappingRepository{db: db}
}

// FindByLocalOrderIDs returns the mappings that exist for the given local
// orders. Unmapped orders are absent from the result rather than an error.
func (r *GormOrderMappingRepository) FindByLocalOrderIDs(ctx context.Context, tenantID, channelID uuid.UUID, orderIDs []uuid.UUID) ([]channel.OrderMapping, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	var mappingModels []models.OrderMappingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND channel_id = ? AND local_order_id IN ?", tenantID, channelID, orderIDs).
		Order("created_at ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	mappings := make([]channel.OrderMapping, len(mappingModels))
	for i, model := range mappingModels {
		mappings[i] = *model.ToDomain()
	}
	return mappings, nil
}

var _ channel.OrderMappingRepository = (*GormOrderMappingRepository)(nil)
