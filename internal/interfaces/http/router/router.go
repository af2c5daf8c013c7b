package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/infrastructure/logger"
	"github.com/channelsync/backend/internal/interfaces/http/handler"
)

// Setup builds the gin engine with all routes registered
func Setup(validation *handler.ValidationHandler, log *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	api := engine.Group("/api/v1")
	{
		validate := api.Group("/sync/validate")
		{
			validate.POST("/pre", validation.ValidatePreSync)
			validate.POST("/post", validation.ValidatePostSync)
			validate.GET("/health", validation.GetHealthCheck)
		}
	}

	return engine
}

// requestLogger attaches a request-scoped logger to the request context and
// logs each request on completion. The tenant header is carried as a log
// field so downstream log lines are attributable without re-parsing it.
func requestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx, log := logger.WithRequestID(c.Request.Context(), base, requestID)
		if tenantID := c.GetHeader("X-Tenant-ID"); tenantID != "" {
			ctx, log = logger.WithTenantID(ctx, log, tenantID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
