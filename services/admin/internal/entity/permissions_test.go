package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPermissions_AllFalse(t *testing.T) {
	perms := DefaultPermissions()

	assert.False(t, perms.Dashboard)
	assert.False(t, perms.Users)
	assert.False(t, perms.Media)
	assert.False(t, perms.Settings)
	assert.False(t, perms.Content.Read)
	assert.False(t, perms.Content.Write)
	assert.False(t, perms.Content.Update)
	assert.False(t, perms.Content.Delete)
}

func TestNormalizePermissions_Empty(t *testing.T) {
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(nil))
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`{}`)))
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`null`)))
}

func TestNormalizePermissions_Malformed(t *testing.T) {
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`"garbage"`)))
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`[1,2,3]`)))
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`{"dashboard": "yes"}`)))
}

func TestNormalizePermissions_LegacyAllFlag(t *testing.T) {
	// Both legacy spellings grant everything
	assert.Equal(t, AllPermissions(), NormalizePermissions(json.RawMessage(`{"all": "true"}`)))
	assert.Equal(t, AllPermissions(), NormalizePermissions(json.RawMessage(`{"all": true}`)))
}

func TestNormalizePermissions_LegacyAllFlag_NotTrue(t *testing.T) {
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`{"all": "false"}`)))
	assert.Equal(t, DefaultPermissions(), NormalizePermissions(json.RawMessage(`{"all": 1}`)))
}

func TestNormalizePermissions_Partial(t *testing.T) {
	perms := NormalizePermissions(json.RawMessage(`{"dashboard": true, "content": {"read": true}}`))

	assert.True(t, perms.Dashboard)
	assert.True(t, perms.Content.Read)
	assert.False(t, perms.Users)
	assert.False(t, perms.Content.Write)
	assert.False(t, perms.Content.Delete)
}

func TestNormalizePermissions_Idempotent(t *testing.T) {
	inputs := []json.RawMessage{
		nil,
		json.RawMessage(`{}`),
		json.RawMessage(`{"all": "true"}`),
		json.RawMessage(`{"dashboard": true, "content": {"write": true}, "settings": true}`),
		json.RawMessage(`{"content": "broken"}`),
	}

	for _, input := range inputs {
		once := NormalizePermissions(input)

		encoded, err := json.Marshal(once)
		assert.NoError(t, err)

		twice := NormalizePermissions(encoded)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizePermissions_OutputFullyPopulated(t *testing.T) {
	encoded, err := json.Marshal(NormalizePermissions(json.RawMessage(`{"users": true}`)))
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(encoded, &decoded))

	for _, key := range []string{"dashboard", "users", "content", "media", "settings"} {
		assert.Contains(t, decoded, key)
	}

	var content map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(decoded["content"], &content))
	for _, key := range []string{"read", "write", "update", "delete"} {
		assert.Contains(t, content, key)
	}
}
