package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/repo/persistent"
)

type RoleUseCase interface {
	// List returns all roles, name ascending, each annotated with the
	// number of users in the supplied snapshot referencing it.
	List(users []entity.User) ([]entity.Role, error)

	Create(actorID, name, description string, permissions json.RawMessage) (*entity.Role, error)
	Update(actorID, id string, upd entity.RoleUpdate) (*entity.Role, error)
	Delete(actorID, id string) error
}

type roleUseCase struct {
	roles    persistent.RoleRepository
	activity ActivityLogUseCase
	logger   *logger.Logger
}

func NewRoleUseCase(
	roles persistent.RoleRepository,
	activity ActivityLogUseCase,
	log *logger.Logger,
) RoleUseCase {
	return &roleUseCase{
		roles:    roles,
		activity: activity,
		logger:   log,
	}
}

func (uc *roleUseCase) List(users []entity.User) ([]entity.Role, error) {
	roles, err := uc.roles.List()
	if err != nil {
		return nil, err
	}

	// user_count is derived from the snapshot, never stored
	counts := make(map[string]int, len(roles))
	for _, user := range users {
		counts[user.Role]++
	}
	for i := range roles {
		roles[i].UserCount = counts[roles[i].Name]
	}

	return roles, nil
}

func (uc *roleUseCase) Create(actorID, name, description string, permissions json.RawMessage) (*entity.Role, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", entity.ErrValidation)
	}

	role := &entity.Role{
		Name:        name,
		Description: description,
		Permissions: entity.NormalizePermissions(permissions),
	}

	if err := uc.roles.Create(role); err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActionCreateRole, "role", role.ID)
	return role, nil
}

func (uc *roleUseCase) Update(actorID, id string, upd entity.RoleUpdate) (*entity.Role, error) {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if upd.Name != nil && *upd.Name != role.Name {
		if entity.IsBuiltInRole(role.Name) {
			return nil, fmt.Errorf("%w: %s cannot be renamed", entity.ErrProtectedRole, role.Name)
		}
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: role name is required", entity.ErrValidation)
		}
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if len(upd.Permissions) > 0 {
		// Externally supplied payloads go through the same normalization
		// gate as Create; legacy encodings included.
		encoded, err := json.Marshal(entity.NormalizePermissions(upd.Permissions))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
		}
		fields["permissions"] = string(encoded)
	}

	updated, err := uc.roles.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActionUpdateRole, "role", id)
	return updated, nil
}

func (uc *roleUseCase) Delete(actorID, id string) error {
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return err
	}

	// Checked before any persistence call
	if entity.IsBuiltInRole(role.Name) {
		return fmt.Errorf("%w: %s cannot be deleted", entity.ErrProtectedRole, role.Name)
	}

	if err := uc.roles.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(actorID, entity.ActionDeleteRole, "role", id)
	return nil
}
