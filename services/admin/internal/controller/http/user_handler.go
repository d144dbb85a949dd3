package http

import (
	"net/http"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsers godoc
// @Summary      List users
// @Description  Get the user directory, newest first. Optional q filters by email, username or full name; role filters by exact role ("all" disables the filter).
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search query"
// @Param        role query string false "Role filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.List()
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		respondError(c, err)
		return
	}

	query := c.Query("q")
	role := c.Query("role")
	if query != "" || role != "" {
		users = h.userUseCase.Search(query, role)
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Partially update a user's profile. Omitted fields are left unchanged; email is not editable.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body entity.UserUpdate true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actorID := c.GetString("user_id")
	userID := c.Param("id")

	var upd entity.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.Update(actorID, userID, upd)
	if err != nil {
		h.logger.Error("Failed to update user %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar godoc
// @Summary      Upload user avatar
// @Description  Replace the user's avatar. The image is cropped square, compressed and stored; the previous avatar is removed.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        avatar formData file true "Avatar image (jpg/png)"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /users/{id}/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	actorID := c.GetString("user_id")
	userID := c.Param("id")

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer src.Close()

	user, err := h.userUseCase.UpdateWithAvatar(actorID, userID, entity.UserUpdate{}, src)
	if err != nil {
		h.logger.Error("Failed to upload avatar for user %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Delete a user and release their avatar from storage.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID := c.GetString("user_id")
	userID := c.Param("id")

	if err := h.userUseCase.Delete(actorID, userID); err != nil {
		h.logger.Error("Failed to delete user %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// BulkDeleteUsers godoc
// @Summary      Delete multiple users
// @Description  Delete a batch of users in one call. Avatars are released before the records are removed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkDeleteRequest true "User IDs"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /users/bulk-delete [post]
func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	actorID := c.GetString("user_id")

	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.DeleteMany(actorID, req.IDs); err != nil {
		h.logger.Error("Failed to bulk delete users: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Users deleted successfully", "count": len(req.IDs)})
}
