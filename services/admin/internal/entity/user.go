package entity

import "time"

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	AvatarURL   string     `json:"avatar_url"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// UserUpdate carries the fields an administrator may change. Nil means
// "leave unchanged". Email is owned by the identity provider and is not
// editable here.
type UserUpdate struct {
	Username  *string `json:"username"`
	FullName  *string `json:"full_name"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}
