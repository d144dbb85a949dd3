package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogModel struct {
	ID           string  `gorm:"type:uuid;primary_key"`
	UserID       string  `gorm:"type:uuid;index;not null"`
	Action       string  `gorm:"not null"`
	ResourceType *string
	ResourceID   *string
	CreatedAt    time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// ActivityLogRow is the joined projection read by the activity log query:
// the entry plus the acting user's display identity at query time. Username
// and FullName are nil when the user has been deleted.
type ActivityLogRow struct {
	ActivityLogModel
	Username *string
	FullName *string
}
