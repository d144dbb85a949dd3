package http

import (
	"net/http"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	checker *usecase.UsernameChecker
	logger  *logger.Logger
}

func NewAvailabilityHandler(checker *usecase.UsernameChecker, logger *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		checker: checker,
		logger:  logger,
	}
}

// CheckUsername godoc
// @Summary      Check username availability
// @Description  Probe whether a username is free. Candidates shorter than two characters and lookup failures both report "unknown". Clients debounce keystrokes; each request here hits the store directly.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username query string true "Username candidate"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/check-username [get]
func (h *AvailabilityHandler) CheckUsername(c *gin.Context) {
	candidate := c.Query("username")

	result := h.checker.Probe(candidate)

	c.JSON(http.StatusOK, gin.H{
		"username":     candidate,
		"availability": result.String(),
		"available":    result == usecase.AvailabilityAvailable,
	})
}
