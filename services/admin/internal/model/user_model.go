package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string     `gorm:"type:uuid;primary_key"`
	Email       string     `gorm:"uniqueIndex;not null"`
	Username    *string    `gorm:"uniqueIndex"`
	FullName    *string
	Role        string     `gorm:"type:varchar(50);default:'user'"`
	AvatarURL   *string
	IsActive    bool       `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
