package persistent

import (
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	ListRecent(limit int) ([]entity.ActivityLog, error)
	Create(logEntry *entity.ActivityLog) error
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) ListRecent(limit int) ([]entity.ActivityLog, error) {
	var rows []model.ActivityLogRow

	err := r.db.Table("activity_logs").
		Select("activity_logs.*, users.username AS username, users.full_name AS full_name").
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	entries := make([]entity.ActivityLog, len(rows))
	for i := range rows {
		entries[i] = *ToActivityLogEntity(&rows[i])
	}
	return entries, nil
}

func (r *activityLogRepository) Create(logEntry *entity.ActivityLog) error {
	logModel := &model.ActivityLogModel{
		ID:           logEntry.ID,
		UserID:       logEntry.UserID,
		Action:       logEntry.Action,
		ResourceType: stringPtr(logEntry.ResourceType),
		ResourceID:   stringPtr(logEntry.ResourceID),
	}
	if err := r.db.Create(logModel).Error; err != nil {
		return translateError(err)
	}

	logEntry.ID = logModel.ID
	logEntry.CreatedAt = logModel.CreatedAt
	return nil
}
