package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	appsync "github.com/channelsync/backend/internal/application/syncvalidation"
	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/domain/shared"
	"github.com/channelsync/backend/internal/domain/syncvalidation"
	"github.com/channelsync/backend/internal/interfaces/http/dto"
)

// MockChannelRepository implements channel.ChannelRepository for testing
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) FindByIDForTenant(ctx context.Context, tenantID, channelID uuid.UUID) (*channel.Channel, error) {
	args := m.Called(ctx, tenantID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Channel), args.Error(1)
}

// MockOrderRepository implements channel.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, orderIDs []uuid.UUID) ([]channel.ChannelOrder, error) {
	args := m.Called(ctx, tenantID, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]channel.ChannelOrder), args.Error(1)
}

// MockOrderMappingRepository implements channel.OrderMappingRepository for testing
type MockOrderMappingRepository struct {
	mock.Mock
}

func (m *MockOrderMappingRepository) FindByLocalOrderIDs(ctx context.Context, tenantID, channelID uuid.UUID, orderIDs []uuid.UUID) ([]channel.OrderMapping, error) {
	args := m.Called(ctx, tenantID, channelID, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]channel.OrderMapping), args.Error(1)
}

// MockPlatformConfigRegistry implements channel.PlatformConfigRegistry for testing
type MockPlatformConfigRegistry struct {
	mock.Mock
}

func (m *MockPlatformConfigRegistry) Provisioning(code channel.PlatformCode) (channel.PlatformProvisioning, bool) {
	args := m.Called(code)
	return args.Get(0).(channel.PlatformProvisioning), args.Bool(1)
}

func (m *MockPlatformConfigRegistry) ConfiguredPlatforms() []channel.PlatformCode {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]channel.PlatformCode)
}

// MockCalendarProvider implements syncvalidation.CalendarProvider for testing
type MockCalendarProvider struct {
	mock.Mock
}

func (m *MockCalendarProvider) InSensitivePeriod(ctx context.Context, region string, at time.Time) (bool, error) {
	args := m.Called(ctx, region, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockCalendarProvider) IsHoliday(ctx context.Context, region string, at time.Time) (bool, error) {
	args := m.Called(ctx, region, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockCalendarProvider) SeasonalMultiplier(ctx context.Context, region string, at time.Time) (float64, error) {
	args := m.Called(ctx, region, at)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCalendarProvider) ActiveConsiderations(ctx context.Context, region string, at time.Time) ([]string, error) {
	args := m.Called(ctx, region, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAuditLog implements syncvalidation.AuditLog for testing
type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Record(ctx context.Context, entry syncvalidation.AuditEntry) {
	m.Called(ctx, entry)
}

// MockEventPublisher implements shared.EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type handlerMocks struct {
	channels *MockChannelRepository
	orders   *MockOrderRepository
	mappings *MockOrderMappingRepository
	registry *MockPlatformConfigRegistry
	calendar *MockCalendarProvider
}

func setupHandler() (*gin.Engine, *handlerMocks) {
	gin.SetMode(gin.TestMode)

	m := &handlerMocks{
		channels: new(MockChannelRepository),
		orders:   new(MockOrderRepository),
		mappings: new(MockOrderMappingRepository),
		registry: new(MockPlatformConfigRegistry),
		calendar: new(MockCalendarProvider),
	}
	audit := new(MockAuditLog)
	audit.On("Record", mock.Anything, mock.Anything).Return().Maybe()
	events := new(MockEventPublisher)
	events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	service := appsync.NewValidationService(
		m.channels, m.orders, m.mappings, m.registry, m.calendar,
		audit, events,
		"ID", "Asia/Jakarta",
		appsync.DefaultThresholds(),
		zap.NewNop(),
	)

	h := NewValidationHandler(service)
	engine := gin.New()
	engine.POST("/api/v1/sync/validate/pre", h.ValidatePreSync)
	engine.POST("/api/v1/sync/validate/post", h.ValidatePostSync)
	engine.GET("/api/v1/sync/validate/health", h.GetHealthCheck)
	return engine, m
}

func performJSON(engine *gin.Engine, method, path, tenant string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestValidationHandler_ValidatePreSync_Success(t *testing.T) {
	engine, m := setupHandler()
	tenantID := uuid.New()
	channelID := uuid.New()
	orderID := uuid.New()

	m.channels.On("FindByIDForTenant", mock.Anything, tenantID, channelID).Return(&channel.Channel{
		ID:           channelID,
		TenantID:     tenantID,
		PlatformCode: channel.PlatformCodeShopee,
		Name:         "Toko Sinar Jaya",
		IsEnabled:    true,
	}, nil)
	m.orders.On("FindByIDsForTenant", mock.Anything, tenantID, []uuid.UUID{orderID}).Return([]channel.ChannelOrder{
		{ID: orderID, TenantID: tenantID, ChannelID: channelID, Status: channel.OrderStatusPaid},
	}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, tenantID, channelID, []uuid.UUID{orderID}).Return([]channel.OrderMapping{
		{LocalOrderID: orderID},
	}, nil)

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/pre", tenantID.String(), gin.H{
		"channel_id": channelID.String(),
		"order_ids":  []string{orderID.String()},
		"options":    gin.H{"validate_data": true},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	assert.NoError(t, err)
	var result syncvalidation.ValidationResult
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.IsValid)
	assert.Equal(t, 3, result.Performance.TotalChecks)
}

func TestValidationHandler_ValidatePreSync_MissingTenantHeader(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/pre", "", gin.H{
		"channel_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestValidationHandler_ValidatePreSync_InvalidChannelID(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/pre", uuid.New().String(), gin.H{
		"channel_id": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationHandler_ValidatePreSync_InvalidOrderID(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/pre", uuid.New().String(), gin.H{
		"channel_id": uuid.New().String(),
		"order_ids":  []string{"not-a-uuid"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationHandler_ValidatePostSync_Success(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/post", uuid.New().String(), gin.H{
		"channel_id": uuid.New().String(),
		"sync_result": gin.H{
			"success": true,
			"summary": gin.H{
				"total_orders":  1,
				"synced_orders": 1,
			},
			"business_context": gin.H{
				"timezone":       "Asia/Jakarta",
				"sync_optimized": true,
			},
		},
		"options": gin.H{"validate_data": true},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestValidationHandler_ValidatePostSync_PerformanceWireMilliseconds(t *testing.T) {
	engine, _ := setupHandler()

	// sync jobs report durations as integer milliseconds on the wire
	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/post", uuid.New().String(), gin.H{
		"channel_id": uuid.New().String(),
		"sync_result": gin.H{
			"success": true,
			"summary": gin.H{
				"total_orders":  2,
				"synced_orders": 2,
			},
			"performance": gin.H{
				"total_duration":                45000,
				"average_order_processing_time": 8000,
				"rate_limit_hits":               3,
				"circuit_breaker_triggered":     true,
			},
			"business_context": gin.H{
				"timezone":       "Asia/Jakarta",
				"sync_optimized": true,
			},
		},
		"options": gin.H{"validate_performance": true},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	assert.NoError(t, err)
	var result syncvalidation.ValidationResult
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.IsValid)
	assert.ElementsMatch(t, []string{
		syncvalidation.CodeSyncPerformanceSlow,
		syncvalidation.CodeSyncPerformanceOrderProcessingSlow,
		syncvalidation.CodeSyncPerformanceRateLimitHits,
		syncvalidation.CodeSyncPerformanceCircuitBreaker,
	}, result.WarningCodes())
}

func TestValidationHandler_ValidatePostSync_MissingSyncResult(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/post", uuid.New().String(), gin.H{
		"channel_id": uuid.New().String(),
	})

	// binding:"required" rejects the absent sync_result section
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationHandler_ValidatePostSync_NilChannelIsBadRequest(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodPost, "/api/v1/sync/validate/post", uuid.New().String(), gin.H{
		"channel_id": uuid.Nil.String(),
		"sync_result": gin.H{
			"success": true,
			"summary": gin.H{"total_orders": 0},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestRespondServiceError_MapsErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"precondition", shared.ErrInvalidChannel, http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			respondServiceError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var resp dto.Response
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestValidationHandler_GetHealthCheck(t *testing.T) {
	engine, m := setupHandler()

	m.calendar.On("InSensitivePeriod", mock.Anything, "ID", mock.Anything).Return(false, nil)
	m.registry.On("ConfiguredPlatforms").Return([]channel.PlatformCode{channel.PlatformCodeShopee})
	m.registry.On("Provisioning", channel.PlatformCodeShopee).Return(channel.PlatformProvisioning{
		RateLimitsConfigured:    true,
		AuthConfigured:          true,
		BusinessRulesConfigured: true,
		ErrorHandlingConfigured: true,
	}, true)
	m.orders.On("FindByIDsForTenant", mock.Anything, mock.Anything, mock.Anything).Return([]channel.ChannelOrder{}, nil)
	m.mappings.On("FindByLocalOrderIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]channel.OrderMapping{}, nil)

	w := performJSON(engine, http.MethodGet, "/api/v1/sync/validate/health", uuid.New().String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	assert.NoError(t, err)
	var result syncvalidation.HealthCheckResult
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.Healthy)
}

func TestValidationHandler_GetHealthCheck_MissingTenantHeader(t *testing.T) {
	engine, _ := setupHandler()

	w := performJSON(engine, http.MethodGet, "/api/v1/sync/validate/health", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
