package entity

import (
	"encoding/json"
	"time"
)

type Role struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Permissions PermissionSet `json:"permissions"`
	UserCount   int           `json:"user_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RoleUpdate carries the fields a role mutation may change. Nil means
// "leave unchanged". Permissions stays raw so legacy payloads reach
// NormalizePermissions intact instead of being decoded into the typed shape.
type RoleUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Permissions json.RawMessage `json:"permissions"`
}

// Built-in role names. These roles always exist, cannot be renamed and
// cannot be deleted; their description and permissions stay editable.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

func IsBuiltInRole(name string) bool {
	switch name {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// RoleLabel returns the display label for a role name.
func RoleLabel(role string) string {
	labels := map[string]string{
		RoleAdmin:  "Administrator",
		RoleEditor: "Editor",
		RoleUser:   "User",
	}
	if label, ok := labels[role]; ok {
		return label
	}
	return role
}
