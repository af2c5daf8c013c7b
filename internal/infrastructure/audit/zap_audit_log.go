package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// ZapAuditLog writes audit entries through a dedicated zap logger. The sink
// is fire-and-forget: nothing it does can fail a validation run.
type ZapAuditLog struct {
	logger *zap.Logger
}

// NewZapAuditLog creates a new ZapAuditLog
func NewZapAuditLog(logger *zap.Logger) *ZapAuditLog {
	return &ZapAuditLog{
		logger: logger.Named("audit"),
	}
}

// Record writes one audit entry
func (a *ZapAuditLog) Record(ctx context.Context, entry syncvalidation.AuditEntry) {
	fields := []zap.Field{
		zap.String("tenant_id", entry.TenantID.String()),
		zap.String("channel_id", entry.ChannelID.String()),
		zap.String("validation_type", entry.ValidationType),
		zap.Int("error_count", entry.ErrorCount),
		zap.Int("warning_count", entry.WarningCount),
	}

	if entry.Level == syncvalidation.AuditLevelError {
		a.logger.Error(entry.Message, fields...)
		return
	}
	a.logger.Info(entry.Message, fields...)
}

var _ syncvalidation.AuditLog = (*ZapAuditLog)(nil)
