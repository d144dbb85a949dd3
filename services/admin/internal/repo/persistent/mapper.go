package persistent

import (
	"encoding/json"

	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		Username:    stringValue(m.Username),
		FullName:    stringValue(m.FullName),
		Role:        m.Role,
		AvatarURL:   stringValue(m.AvatarURL),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Email:       e.Email,
		Username:    stringPtr(e.Username),
		FullName:    stringPtr(e.FullName),
		Role:        e.Role,
		AvatarURL:   stringPtr(e.AvatarURL),
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		LastLoginAt: e.LastLoginAt,
	}
}

func ToRoleEntity(m *model.RoleModel) *entity.Role {
	if m == nil {
		return nil
	}

	// Persisted permission payloads pass through the normalization gate on
	// every read; legacy shapes never escape the repo layer.
	return &entity.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: stringValue(m.Description),
		Permissions: entity.NormalizePermissions(json.RawMessage(m.Permissions)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToRoleModel(e *entity.Role) *model.RoleModel {
	if e == nil {
		return nil
	}

	permissions, err := json.Marshal(e.Permissions)
	if err != nil {
		permissions = []byte("{}")
	}

	return &model.RoleModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: stringPtr(e.Description),
		Permissions: string(permissions),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToActivityLogEntity(row *model.ActivityLogRow) *entity.ActivityLog {
	if row == nil {
		return nil
	}

	actor := entity.Actor{
		Username: stringValue(row.Username),
		FullName: stringValue(row.FullName),
	}
	if row.Username == nil && row.FullName == nil {
		// Join target gone: the acting user was deleted after the entry
		// was recorded.
		actor.Username = entity.ActorPlaceholder
	}

	return &entity.ActivityLog{
		ID:           row.ID,
		UserID:       row.UserID,
		Action:       row.Action,
		ResourceType: stringValue(row.ResourceType),
		ResourceID:   stringValue(row.ResourceID),
		CreatedAt:    row.CreatedAt,
		Actor:        actor,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
