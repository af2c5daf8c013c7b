package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/infrastructure/persistence/models"
)

// GormChannelRepository implements ChannelRepository using GORM
type GormChannelRepository struct {
	db *gorm.DB
}

// NewGormChannelRepository creates a new GormChannelRepository
func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// FindByIDForTenant finds a channel by ID within a tenant. A missing channel
// is a first-class nil result, not an error.
func (r *GormChannelRepository) FindByIDForTenant(ctx context.Context, tenantID, channelID uuid.UUID) (*channel.Channel, error) {
	var model models.ChannelModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", channelID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ channel.ChannelRepository = (*GormChannelRepository)(nil)
