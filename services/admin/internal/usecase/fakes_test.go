package usecase

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"backoffice/services/admin/internal/entity"
)

// eventLog records the order of storage and repository calls so tests can
// assert pipeline sequencing.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type stubStorage struct {
	log        *eventLog
	objects    map[string][]byte
	failUpload bool
	failDelete bool
}

func newStubStorage(log *eventLog) *stubStorage {
	return &stubStorage{
		log:     log,
		objects: make(map[string][]byte),
	}
}

func (s *stubStorage) Upload(key string, reader io.Reader, contentType string) error {
	s.log.add("upload:" + key)
	if s.failUpload {
		return fmt.Errorf("storage unavailable")
	}
	if _, exists := s.objects[key]; exists {
		return fmt.Errorf("object already exists at %s", key)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *stubStorage) PublicURL(key string) string {
	s.log.add("resolve:" + key)
	return "http://localhost:9000/avatars/" + key
}

func (s *stubStorage) Delete(key string) error {
	s.log.add("delete:" + key)
	if s.failDelete {
		return fmt.Errorf("storage unavailable")
	}
	delete(s.objects, key)
	return nil
}

func (s *stubStorage) KeyFromURL(url string) string {
	parts := strings.SplitN(url, "/avatars/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}
	return strings.SplitN(parts[1], "?", 2)[0]
}

type stubUserRepo struct {
	log     *eventLog
	users   map[string]entity.User
	byName  map[string]string
	lookups int
	findErr error
}

func newStubUserRepo(log *eventLog, users ...entity.User) *stubUserRepo {
	repo := &stubUserRepo{
		log:    log,
		users:  make(map[string]entity.User),
		byName: make(map[string]string),
	}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.Username != "" {
			repo.byName[user.Username] = user.ID
		}
	}
	return repo
}

func (r *stubUserRepo) List() ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &user, nil
}

func (r *stubUserRepo) GetByIDs(ids []string) ([]entity.User, error) {
	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *stubUserRepo) GetByUsername(username string) (*entity.User, error) {
	r.lookups++
	if r.findErr != nil {
		return nil, r.findErr
	}
	id, ok := r.byName[username]
	if !ok {
		return nil, entity.ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

func (r *stubUserRepo) UpdateFields(id string, fields map[string]interface{}) (*entity.User, error) {
	r.log.add("update:" + id)
	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if username, ok := fields["username"]; ok {
		if value, ok := username.(string); ok {
			if other, taken := r.byName[value]; taken && other != id {
				return nil, entity.ErrUniqueViolation
			}
			user.Username = value
		} else {
			user.Username = ""
		}
	}
	if fullName, ok := fields["full_name"].(string); ok {
		user.FullName = fullName
	}
	if role, ok := fields["role"].(string); ok {
		user.Role = role
	}
	if avatarURL, ok := fields["avatar_url"]; ok {
		if value, ok := avatarURL.(string); ok {
			user.AvatarURL = value
		} else {
			user.AvatarURL = ""
		}
	}
	if isActive, ok := fields["is_active"].(bool); ok {
		user.IsActive = isActive
	}
	r.users[id] = user
	return &user, nil
}

func (r *stubUserRepo) Delete(id string) error {
	r.log.add("delete_user:" + id)
	if _, ok := r.users[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) DeleteMany(ids []string) error {
	r.log.add(fmt.Sprintf("delete_users:%d", len(ids)))
	for _, id := range ids {
		delete(r.users, id)
	}
	return nil
}

type stubRoleRepo struct {
	roles  map[string]entity.Role
	byName map[string]string
}

func newStubRoleRepo(roles ...entity.Role) *stubRoleRepo {
	repo := &stubRoleRepo{
		roles:  make(map[string]entity.Role),
		byName: make(map[string]string),
	}
	for _, role := range roles {
		repo.roles[role.ID] = role
		repo.byName[role.Name] = role.ID
	}
	return repo
}

func (r *stubRoleRepo) List() ([]entity.Role, error) {
	roles := make([]entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *stubRoleRepo) GetByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &role, nil
}

func (r *stubRoleRepo) Create(role *entity.Role) error {
	if _, taken := r.byName[role.Name]; taken {
		return entity.ErrUniqueViolation
	}
	if role.ID == "" {
		role.ID = fmt.Sprintf("role-%d", len(r.roles)+1)
	}
	r.roles[role.ID] = *role
	r.byName[role.Name] = role.ID
	return nil
}

func (r *stubRoleRepo) UpdateFields(id string, fields map[string]interface{}) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		if other, taken := r.byName[name]; taken && other != id {
			return nil, entity.ErrUniqueViolation
		}
		delete(r.byName, role.Name)
		role.Name = name
		r.byName[name] = id
	}
	if description, ok := fields["description"].(string); ok {
		role.Description = description
	}
	if permissions, ok := fields["permissions"].(string); ok {
		role.Permissions = entity.NormalizePermissions(json.RawMessage(permissions))
	}
	r.roles[id] = role
	return &role, nil
}

func (r *stubRoleRepo) Delete(id string) error {
	role, ok := r.roles[id]
	if !ok {
		return entity.ErrNotFound
	}
	delete(r.byName, role.Name)
	delete(r.roles, id)
	return nil
}

type stubActivityRepo struct {
	entries   []entity.ActivityLog
	createErr error
}

func (r *stubActivityRepo) ListRecent(limit int) ([]entity.ActivityLog, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func (r *stubActivityRepo) Create(logEntry *entity.ActivityLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	logEntry.ID = fmt.Sprintf("log-%d", len(r.entries)+1)
	r.entries = append(r.entries, *logEntry)
	return nil
}
