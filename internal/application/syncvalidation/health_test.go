package syncvalidation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/channelsync/backend/internal/domain/channel"
)

func healthyMocks(m *serviceMocks) {
	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{channel.PlatformCodeShopee})
	m.registry.On("Provisioning", channel.PlatformCodeShopee).Return(completeProvisioning(), true)
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)
}

func TestGetValidationHealthCheck_AllHealthy(t *testing.T) {
	service, m := newTestService()
	healthyMocks(m)

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.True(t, result.Healthy)
	assert.Equal(t, map[string]bool{
		"business_context": true,
		"platform_config":  true,
		"data":             true,
		"performance":      true,
		"security":         true,
	}, result.Dimensions)
	assert.Equal(t, map[channel.PlatformCode]bool{
		channel.PlatformCodeShopee: true,
	}, result.Platforms)
	assert.Empty(t, result.Recommendations)
}

func TestGetValidationHealthCheck_CalendarDown(t *testing.T) {
	service, m := newTestService()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, errors.New("redis unavailable"))
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{channel.PlatformCodeShopee})
	m.registry.On("Provisioning", channel.PlatformCodeShopee).Return(completeProvisioning(), true)
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.False(t, result.Healthy)
	assert.False(t, result.Dimensions["business_context"])
	assert.True(t, result.Dimensions["data"])
	assert.Contains(t, result.Recommendations, "Investigate the business_context validation dimension")
}

func TestGetValidationHealthCheck_CalendarPanicContained(t *testing.T) {
	service, m := newTestService()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).
		Run(func(args mock.Arguments) { panic("boom") }).
		Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{})
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.False(t, result.Healthy)
	assert.False(t, result.Dimensions["business_context"])
}

func TestGetValidationHealthCheck_NoPlatformsConfigured(t *testing.T) {
	service, m := newTestService()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{})
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.False(t, result.Healthy)
	assert.False(t, result.Dimensions["platform_config"])
	assert.Empty(t, result.Platforms)
}

func TestGetValidationHealthCheck_IncompletePlatform(t *testing.T) {
	service, m := newTestService()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{
		channel.PlatformCodeShopee, channel.PlatformCodeLazada,
	})
	m.registry.On("Provisioning", channel.PlatformCodeShopee).Return(completeProvisioning(), true)
	m.registry.On("Provisioning", channel.PlatformCodeLazada).Return(channel.PlatformProvisioning{AuthConfigured: true}, true)
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.False(t, result.Healthy)
	assert.True(t, result.Platforms[channel.PlatformCodeShopee])
	assert.False(t, result.Platforms[channel.PlatformCodeLazada])
	assert.Contains(t, result.Recommendations, "Complete provisioning for platform Lazada")
}

func TestGetValidationHealthCheck_RepositoryDown(t *testing.T) {
	service, m := newTestService()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{channel.PlatformCodeShopee})
	m.registry.On("Provisioning", channel.PlatformCodeShopee).Return(completeProvisioning(), true)
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	result := service.GetValidationHealthCheck(context.Background(), uuid.New())

	assert.False(t, result.Healthy)
	assert.False(t, result.Dimensions["data"])
	assert.Contains(t, result.Recommendations, "Investigate the data validation dimension")
}
