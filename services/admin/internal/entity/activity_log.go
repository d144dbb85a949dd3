package entity

import "time"

// ActorPlaceholder is shown when the acting user no longer exists.
const ActorPlaceholder = "Deleted user"

// Known action codes. The set is open: entries may carry codes recorded by
// other services.
const (
	ActionLogin         = "login"
	ActionLogout        = "logout"
	ActionUpdateProfile = "update_profile"
	ActionCreateRole    = "create_role"
	ActionUpdateRole    = "update_role"
	ActionDeleteRole    = "delete_role"
	ActionDeleteUser    = "delete_user"
)

type ActivityLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	CreatedAt    time.Time `json:"created_at"`
	Actor        Actor     `json:"users"`
}

// Actor is the denormalized display identity of the acting user, joined at
// read time rather than stored on the entry.
type Actor struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// ActionLabel returns the display label for an action code. Unknown codes
// are returned as-is.
func ActionLabel(action string) string {
	labels := map[string]string{
		ActionLogin:         "Signed in",
		ActionLogout:        "Signed out",
		"create_post":       "Created post",
		"update_post":       "Updated post",
		"delete_post":       "Deleted post",
		"create_comment":    "Commented",
		ActionUpdateProfile: "Updated profile",
		ActionCreateRole:    "Created role",
		ActionUpdateRole:    "Updated role",
		ActionDeleteRole:    "Deleted role",
		ActionDeleteUser:    "Deleted user",
	}
	if label, ok := labels[action]; ok {
		return label
	}
	return action
}
