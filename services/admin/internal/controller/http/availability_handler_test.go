package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticLookup struct {
	taken map[string]bool
}

func (l *staticLookup) GetByUsername(username string) (*entity.User, error) {
	if l.taken[username] {
		return &entity.User{Username: username}, nil
	}
	return nil, entity.ErrNotFound
}

func newAvailabilityRouter(lookup usecase.UsernameLookup) *gin.Engine {
	checker := usecase.NewUsernameChecker(lookup, usecase.DefaultDebounce)
	handler := NewAvailabilityHandler(checker, logger.New())

	router := setupTestRouter()
	router.GET("/users/check-username", handler.CheckUsername)
	return router
}

func checkUsername(t *testing.T, router *gin.Engine, username string) map[string]interface{} {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/check-username?username="+username, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return response
}

func TestCheckUsername_Available(t *testing.T) {
	router := newAvailabilityRouter(&staticLookup{})

	response := checkUsername(t, router, "alice123")

	assert.Equal(t, "available", response["availability"])
	assert.Equal(t, true, response["available"])
}

func TestCheckUsername_Taken(t *testing.T) {
	router := newAvailabilityRouter(&staticLookup{taken: map[string]bool{"alice123": true}})

	response := checkUsername(t, router, "alice123")

	assert.Equal(t, "taken", response["availability"])
	assert.Equal(t, false, response["available"])
}

func TestCheckUsername_TooShort(t *testing.T) {
	router := newAvailabilityRouter(&staticLookup{})

	response := checkUsername(t, router, "a")

	assert.Equal(t, "unknown", response["availability"])
	assert.Equal(t, false, response["available"])
}
