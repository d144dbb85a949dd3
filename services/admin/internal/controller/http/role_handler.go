package http

import (
	"encoding/json"
	"net/http"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleUseCase usecase.RoleUseCase
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewRoleHandler(roleUseCase usecase.RoleUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *RoleHandler {
	return &RoleHandler{
		roleUseCase: roleUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListRoles godoc
// @Summary      List roles
// @Description  Get all roles, name ascending, each with the number of users currently holding it.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	users, err := h.userUseCase.List()
	if err != nil {
		h.logger.Error("Failed to fetch users for role counts: %v", err)
		respondError(c, err)
		return
	}

	roles, err := h.roleUseCase.List(users)
	if err != nil {
		h.logger.Error("Failed to list roles: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles, "count": len(roles)})
}

type CreateRoleRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Permissions json.RawMessage `json:"permissions"`
}

// CreateRole godoc
// @Summary      Create role
// @Description  Create a custom role. Permissions are normalized to the full permission tree; missing sections default to denied.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRoleRequest true "Role data"
// @Success      201  {object}  entity.Role
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	actorID := c.GetString("user_id")

	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := h.roleUseCase.Create(actorID, req.Name, req.Description, req.Permissions)
	if err != nil {
		h.logger.Error("Failed to create role %s: %v", req.Name, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

// UpdateRole godoc
// @Summary      Update role
// @Description  Update a role's name, description or permissions. Built-in roles (admin, editor, user) cannot be renamed.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role ID"
// @Param        request body entity.RoleUpdate true "Fields to update"
// @Success      200  {object}  entity.Role
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	actorID := c.GetString("user_id")
	roleID := c.Param("id")

	var upd entity.RoleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := h.roleUseCase.Update(actorID, roleID, upd)
	if err != nil {
		h.logger.Error("Failed to update role %s: %v", roleID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRole godoc
// @Summary      Delete role
// @Description  Delete a custom role. Built-in roles (admin, editor, user) cannot be deleted.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Role ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	actorID := c.GetString("user_id")
	roleID := c.Param("id")

	if err := h.roleUseCase.Delete(actorID, roleID); err != nil {
		h.logger.Error("Failed to delete role %s: %v", roleID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}
