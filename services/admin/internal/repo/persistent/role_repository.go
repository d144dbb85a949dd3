package persistent

import (
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	List() ([]entity.Role, error)
	GetByID(id string) (*entity.Role, error)
	Create(role *entity.Role) error
	UpdateFields(id string, fields map[string]interface{}) (*entity.Role, error)
	Delete(id string) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List() ([]entity.Role, error) {
	var roleModels []model.RoleModel
	if err := r.db.Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, translateError(err)
	}

	roles := make([]entity.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = *ToRoleEntity(&roleModels[i])
	}
	return roles, nil
}

func (r *roleRepository) GetByID(id string) (*entity.Role, error) {
	var roleModel model.RoleModel
	if err := r.db.Where("id = ?", id).First(&roleModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToRoleEntity(&roleModel), nil
}

func (r *roleRepository) Create(role *entity.Role) error {
	roleModel := ToRoleModel(role)
	if err := r.db.Create(roleModel).Error; err != nil {
		return translateError(err)
	}
	*role = *ToRoleEntity(roleModel)
	return nil
}

func (r *roleRepository) UpdateFields(id string, fields map[string]interface{}) (*entity.Role, error) {
	result := r.db.Model(&model.RoleModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return r.GetByID(id)
}

func (r *roleRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.RoleModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
