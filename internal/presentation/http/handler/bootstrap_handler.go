package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainwise/posnext-api/internal/application/service"
	"github.com/brainwise/posnext-api/internal/presentation/http/dto/response"
)

// BootstrapHandler serves the one-shot POS startup payload
type BootstrapHandler struct {
	bootstrapService *service.BootstrapService
}

// NewBootstrapHandler creates a new bootstrap handler
func NewBootstrapHandler(bootstrapService *service.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{bootstrapService: bootstrapService}
}

// GetInitialData handles the POS bootstrap request
// @Summary Get Initial Data
// @Description Get all data the POS frontend needs on startup in one call
// @Tags bootstrap
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.InitialData
// @Failure 401 {object} response.APIResponse
// @Router /pos/initial-data [get]
func (h *BootstrapHandler) GetInitialData(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	data, err := h.bootstrapService.GetInitialData(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The payload carries its own success flag and fixed top-level keys, so
	// it is returned as-is rather than wrapped in the standard envelope.
	c.JSON(http.StatusOK, data)
}
