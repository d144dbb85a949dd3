package usecase

import (
	"backoffice/pkg/logger"
	"backoffice/pkg/queue"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/repo/persistent"
)

const defaultActivityLimit = 10

type ActivityLogUseCase interface {
	// Fetch returns the most recent entries, newest first, joined with the
	// acting user's display identity.
	Fetch(limit int) ([]entity.ActivityLog, error)

	// Record writes an audit entry. Failures are logged, never propagated:
	// an audit miss must not fail the mutation that triggered it.
	Record(userID, action, resourceType, resourceID string)
}

type activityLogUseCase struct {
	logs        persistent.ActivityLogRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewActivityLogUseCase(
	logs persistent.ActivityLogRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) ActivityLogUseCase {
	return &activityLogUseCase{
		logs:        logs,
		queueClient: queueClient,
		logger:      log,
	}
}

func (uc *activityLogUseCase) Fetch(limit int) ([]entity.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return uc.logs.ListRecent(limit)
}

func (uc *activityLogUseCase) Record(userID, action, resourceType, resourceID string) {
	logEntry := &entity.ActivityLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}

	if err := uc.logs.Create(logEntry); err != nil {
		uc.logger.Error("Failed to record activity %s for user %s: %v", action, userID, err)
		return
	}

	// Fan the event out to downstream consumers via RabbitMQ
	if uc.queueClient != nil {
		go func() {
			event := map[string]interface{}{
				"id":            logEntry.ID,
				"user_id":       userID,
				"action":        action,
				"resource_type": resourceType,
				"resource_id":   resourceID,
			}
			if err := uc.queueClient.PublishAuditEvent(event); err != nil {
				uc.logger.Error("Failed to publish audit event to RabbitMQ: %v", err)
			}
		}()
	}
}
