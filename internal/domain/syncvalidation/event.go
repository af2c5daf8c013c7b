package syncvalidation

import (
	"github.com/google/uuid"

	"github.com/channelsync/backend/internal/domain/shared"
)

// EventTypeValidationCompleted is emitted once per orchestrator invocation
const EventTypeValidationCompleted = "sync.validation.completed"

// Validation types carried on the completed event
const (
	// ValidationTypePreSync marks a pre-sync validation run
	ValidationTypePreSync = "pre_sync"
	// ValidationTypePostSync marks a post-sync validation run
	ValidationTypePostSync = "post_sync"
)

// ValidationCompletedEvent is published after every validation run
type ValidationCompletedEvent struct {
	shared.BaseDomainEvent
	// ChannelID is the channel the validation ran for
	ChannelID uuid.UUID `json:"channel_id"`
	// ValidationType is "pre_sync" or "post_sync"
	ValidationType string `json:"validation_type"`
	// Result is the full validation result
	Result *ValidationResult `json:"result"`
}

// NewValidationCompletedEvent creates a new validation completed event
func NewValidationCompletedEvent(tenantID, channelID uuid.UUID, validationType string, result *ValidationResult) *ValidationCompletedEvent {
	return &ValidationCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeValidationCompleted, "SyncValidation", channelID, tenantID),
		ChannelID:       channelID,
		ValidationType:  validationType,
		Result:          result,
	}
}
