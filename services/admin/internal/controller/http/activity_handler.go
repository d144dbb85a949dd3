package http

import (
	"net/http"
	"strconv"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUseCase usecase.ActivityLogUseCase
	logger          *logger.Logger
}

func NewActivityHandler(activityUseCase usecase.ActivityLogUseCase, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
		logger:          logger,
	}
}

// ListActivity godoc
// @Summary      Recent activity
// @Description  Get the most recent audit entries, newest first, with the acting user's display identity. Entries whose actor was deleted carry a placeholder.
// @Tags         activity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of entries to return (default 10, max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	entries, err := h.activityUseCase.Fetch(limit)
	if err != nil {
		h.logger.Error("Failed to fetch activity log: %v", err)
		respondError(c, err)
		return
	}

	formatted := make([]map[string]interface{}, len(entries))
	for i, entry := range entries {
		formatted[i] = map[string]interface{}{
			"id":            entry.ID,
			"user_id":       entry.UserID,
			"action":        entry.Action,
			"action_label":  entity.ActionLabel(entry.Action),
			"resource_type": entry.ResourceType,
			"resource_id":   entry.ResourceID,
			"created_at":    entry.CreatedAt,
			"users":         entry.Actor,
		}
	}

	c.JSON(http.StatusOK, gin.H{"activity": formatted, "count": len(formatted)})
}
