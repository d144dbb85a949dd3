package entity

import "encoding/json"

// PermissionSet is the canonical capability tree attached to a role. Every
// field is always populated; absent or malformed persisted values map to
// false.
type PermissionSet struct {
	Dashboard bool               `json:"dashboard"`
	Users     bool               `json:"users"`
	Content   ContentPermissions `json:"content"`
	Media     bool               `json:"media"`
	Settings  bool               `json:"settings"`
}

type ContentPermissions struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// DefaultPermissions returns the all-false canonical shape.
func DefaultPermissions() PermissionSet {
	return PermissionSet{}
}

// AllPermissions returns the fully granted shape.
func AllPermissions() PermissionSet {
	return PermissionSet{
		Dashboard: true,
		Users:     true,
		Content: ContentPermissions{
			Read:   true,
			Write:  true,
			Update: true,
			Delete: true,
		},
		Media:    true,
		Settings: true,
	}
}

// NormalizePermissions projects any persisted or externally supplied payload
// into the canonical shape. It fails closed: any missing or malformed field
// becomes false. The legacy encoding {"all": "true"} (string or bool) grants
// every capability. The projection is idempotent and has no side effects.
func NormalizePermissions(raw json.RawMessage) PermissionSet {
	if len(raw) == 0 {
		return DefaultPermissions()
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return DefaultPermissions()
	}

	if all, ok := payload["all"]; ok && isTrueFlag(all) {
		return AllPermissions()
	}

	perms := PermissionSet{
		Dashboard: boolField(payload, "dashboard"),
		Users:     boolField(payload, "users"),
		Media:     boolField(payload, "media"),
		Settings:  boolField(payload, "settings"),
	}

	if contentRaw, ok := payload["content"]; ok {
		var content map[string]json.RawMessage
		if err := json.Unmarshal(contentRaw, &content); err == nil {
			perms.Content = ContentPermissions{
				Read:   boolField(content, "read"),
				Write:  boolField(content, "write"),
				Update: boolField(content, "update"),
				Delete: boolField(content, "delete"),
			}
		}
	}

	return perms
}

// isTrueFlag accepts the legacy all-flag spellings: true and "true".
func isTrueFlag(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true"
	}
	return false
}

func boolField(payload map[string]json.RawMessage, key string) bool {
	raw, ok := payload[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}
