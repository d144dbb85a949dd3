package usecase

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/repo/persistent"
)

type UserUseCase interface {
	// List refreshes and returns the directory snapshot, newest first.
	List() ([]entity.User, error)

	// Search filters the last fetched snapshot. query matches
	// case-insensitively against email, username and full name; roleFilter
	// "all" (or "") is a no-op, anything else is an exact role match.
	Search(query, roleFilter string) []entity.User

	Get(id string) (*entity.User, error)

	// Update writes the provided fields plus a refreshed update timestamp
	// and returns the updated record. Callers refresh the snapshot
	// explicitly; mutations do not.
	Update(actorID, id string, upd entity.UserUpdate) (*entity.User, error)

	// UpdateWithAvatar runs the avatar pipeline on image, then applies upd
	// with the resolved URL. A pipeline failure leaves the record unchanged.
	UpdateWithAvatar(actorID, id string, upd entity.UserUpdate, image io.Reader) (*entity.User, error)

	Delete(actorID, id string) error
	DeleteMany(actorID string, ids []string) error
}

type userUseCase struct {
	users    persistent.UserRepository
	avatars  *AvatarPipeline
	activity ActivityLogUseCase
	logger   *logger.Logger

	mu       sync.RWMutex
	snapshot []entity.User
}

func NewUserUseCase(
	users persistent.UserRepository,
	avatars *AvatarPipeline,
	activity ActivityLogUseCase,
	log *logger.Logger,
) UserUseCase {
	return &userUseCase{
		users:    users,
		avatars:  avatars,
		activity: activity,
		logger:   log,
	}
}

func (uc *userUseCase) List() ([]entity.User, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.snapshot = users
	uc.mu.Unlock()

	return users, nil
}

func (uc *userUseCase) Search(query, roleFilter string) []entity.User {
	uc.mu.RLock()
	snapshot := uc.snapshot
	uc.mu.RUnlock()

	q := strings.ToLower(query)

	filtered := make([]entity.User, 0, len(snapshot))
	for _, user := range snapshot {
		if q != "" &&
			!strings.Contains(strings.ToLower(user.Email), q) &&
			!strings.Contains(strings.ToLower(user.Username), q) &&
			!strings.Contains(strings.ToLower(user.FullName), q) {
			continue
		}
		if roleFilter != "" && roleFilter != "all" && user.Role != roleFilter {
			continue
		}
		filtered = append(filtered, user)
	}
	return filtered
}

func (uc *userUseCase) Get(id string) (*entity.User, error) {
	return uc.users.GetByID(id)
}

func (uc *userUseCase) Update(actorID, id string, upd entity.UserUpdate) (*entity.User, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if upd.Username != nil {
		fields["username"] = nullableString(*upd.Username)
	}
	if upd.FullName != nil {
		fields["full_name"] = nullableString(*upd.FullName)
	}
	if upd.Role != nil {
		if *upd.Role == "" {
			return nil, fmt.Errorf("%w: role must not be empty", entity.ErrValidation)
		}
		fields["role"] = *upd.Role
	}
	if upd.AvatarURL != nil {
		fields["avatar_url"] = nullableString(*upd.AvatarURL)
	}
	if upd.IsActive != nil {
		fields["is_active"] = *upd.IsActive
	}

	user, err := uc.users.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}

	uc.activity.Record(actorID, entity.ActionUpdateProfile, "user", id)
	return user, nil
}

func (uc *userUseCase) UpdateWithAvatar(actorID, id string, upd entity.UserUpdate, image io.Reader) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uc.avatars.Upload(id, image, user.AvatarURL)
	if err != nil {
		// Pipeline failure: the record stays untouched
		return nil, err
	}

	upd.AvatarURL = &avatarURL
	return uc.Update(actorID, id, upd)
}

func (uc *userUseCase) Delete(actorID, id string) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}

	uc.cleanupAvatar(user)

	if err := uc.users.Delete(id); err != nil {
		return err
	}

	uc.activity.Record(actorID, entity.ActionDeleteUser, "user", id)
	return nil
}

func (uc *userUseCase) DeleteMany(actorID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	users, err := uc.users.GetByIDs(ids)
	if err != nil {
		return err
	}

	// Release every owned asset before the single batched deletion
	for i := range users {
		uc.cleanupAvatar(&users[i])
	}

	if err := uc.users.DeleteMany(ids); err != nil {
		return err
	}

	for _, id := range ids {
		uc.activity.Record(actorID, entity.ActionDeleteUser, "user", id)
	}
	return nil
}

// cleanupAvatar is best-effort: a stray blob is an acceptable cost, the user
// record stays the source of truth.
func (uc *userUseCase) cleanupAvatar(user *entity.User) {
	if user.AvatarURL == "" {
		return
	}
	if err := uc.avatars.DeleteFromStorage(user.AvatarURL); err != nil {
		uc.logger.Warn("Failed to delete avatar for user %s: %v", user.ID, err)
	}
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
