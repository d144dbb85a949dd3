package persistent

import (
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	List() ([]entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByIDs(ids []string) ([]entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateFields(id string, fields map[string]interface{}) (*entity.User, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, translateError(err)
	}

	users := make([]entity.User, len(userModels))
	for i := range userModels {
		users[i] = *ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByIDs(ids []string) ([]entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, translateError(err)
	}

	users := make([]entity.User, len(userModels))
	for i := range userModels {
		users[i] = *ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) (*entity.User, error) {
	result := r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return r.GetByID(id)
}

func (r *userRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *userRepository) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.Where("id IN ?", ids).Delete(&model.UserModel{}).Error)
}
