package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Username    *string    `gorm:"uniqueIndex" json:"username"`
	FullName    *string    `json:"full_name"`
	Role        string     `gorm:"type:varchar(50);default:'user'" json:"role"`
	AvatarURL   *string    `json:"avatar_url"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
