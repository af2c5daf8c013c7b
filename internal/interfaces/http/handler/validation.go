package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appsync "github.com/channelsync/backend/internal/application/syncvalidation"
	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/domain/shared"
	"github.com/channelsync/backend/internal/domain/syncvalidation"
	"github.com/channelsync/backend/internal/infrastructure/logger"
	"github.com/channelsync/backend/internal/interfaces/http/dto"
)

// ValidationHandler exposes the sync validation engine over HTTP. The
// handlers are thin: tenant resolution, binding, and delegation.
type ValidationHandler struct {
	service *appsync.ValidationService
}

// NewValidationHandler creates a new ValidationHandler
func NewValidationHandler(service *appsync.ValidationService) *ValidationHandler {
	return &ValidationHandler{service: service}
}

// getTenantID extracts the tenant ID from the request headers
func getTenantID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("X-Tenant-ID")
	if raw == "" {
		return uuid.Nil, errors.New("missing X-Tenant-ID header")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("invalid tenant header",
			zap.String("tenant_id", raw),
			zap.Error(err),
		)
	}
	return id, err
}

// respondServiceError maps service errors to HTTP responses. Precondition
// violations are the caller's fault; anything else is unexpected.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidTenant),
		errors.Is(err, shared.ErrInvalidChannel),
		errors.Is(err, shared.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
	default:
		logger.FromContext(c.Request.Context()).Error("validation service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "validation failed"))
	}
}

// optionsRequest mirrors ValidationOptions for request binding
type optionsRequest struct {
	ValidateBusinessContext bool     `json:"validate_business_context"`
	ValidatePlatformConfig  bool     `json:"validate_platform_config"`
	ValidateData            bool     `json:"validate_data"`
	ValidatePerformance     bool     `json:"validate_performance"`
	ValidateSecurity        bool     `json:"validate_security"`
	Platforms               []string `json:"platforms"`
	RespectBusinessHours    bool     `json:"respect_business_hours"`
	SensitivePeriodAware    bool     `json:"sensitive_period_aware"`
}

func (r *optionsRequest) toDomain() syncvalidation.ValidationOptions {
	platforms := make([]channel.PlatformCode, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		platforms = append(platforms, channel.PlatformCode(p))
	}
	return syncvalidation.ValidationOptions{
		ValidateBusinessContext: r.ValidateBusinessContext,
		ValidatePlatformConfig:  r.ValidatePlatformConfig,
		ValidateData:            r.ValidateData,
		ValidatePerformance:     r.ValidatePerformance,
		ValidateSecurity:        r.ValidateSecurity,
		Platforms:               platforms,
		BusinessRules: syncvalidation.BusinessRulesConfig{
			RespectBusinessHours: r.RespectBusinessHours,
			SensitivePeriodAware: r.SensitivePeriodAware,
		},
	}
}

// preSyncRequest is the request body for pre-sync validation
type preSyncRequest struct {
	ChannelID string         `json:"channel_id" binding:"required"`
	OrderIDs  []string       `json:"order_ids"`
	Options   optionsRequest `json:"options"`
}

// postSyncRequest is the request body for post-sync validation
type postSyncRequest struct {
	ChannelID  string                             `json:"channel_id" binding:"required"`
	SyncResult *syncvalidation.StandardSyncResult `json:"sync_result" binding:"required"`
	Options    optionsRequest                     `json:"options"`
}

// ValidatePreSync handles POST /api/v1/sync/validate/pre
func (h *ValidationHandler) ValidatePreSync(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return
	}

	var req preSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return
	}

	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, "invalid channel_id"))
		return
	}

	orderIDs := make([]uuid.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, "invalid order id: "+raw))
			return
		}
		orderIDs = append(orderIDs, id)
	}

	result, err := h.service.ValidatePreSync(c.Request.Context(), tenantID, channelID, orderIDs, req.Options.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// ValidatePostSync handles POST /api/v1/sync/validate/post
func (h *ValidationHandler) ValidatePostSync(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return
	}

	var req postSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return
	}

	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, "invalid channel_id"))
		return
	}

	result, err := h.service.ValidatePostSync(c.Request.Context(), tenantID, channelID, req.SyncResult, req.Options.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetHealthCheck handles GET /api/v1/sync/validate/health
func (h *ValidationHandler) GetHealthCheck(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return
	}

	result := h.service.GetValidationHealthCheck(c.Request.Context(), tenantID)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
