package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type configHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// RegisterConfigRoutes registers the /config routes.
func RegisterConfigRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &configHandler{settingsService: settingsService}
	rg.GET("/config", h.getConfig)
	rg.PUT("/config", h.updateConfig)
}

// getConfig godoc
// @Summary Get business settings
// @Tags config
// @Produce json
// @Success 200 {object} dto.BusinessConfigResponse
// @Security BearerAuth
// @Router /api/config [get]
func (h *configHandler) getConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cfg, err := h.settingsService.GetBusinessConfig(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load config")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessConfigResponse(cfg))
}

// updateConfig godoc
// @Summary Update business settings
// @Description Applies the known keys present in the body. Unknown keys are ignored.
// @Tags config
// @Accept json
// @Produce json
// @Param config body dto.UpdateBusinessConfigRequest true "Settings to change"
// @Success 200 {object} dto.BusinessConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/config [put]
func (h *configHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBusinessConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format: "+err.Error(), err)
		return
	}

	cfg, err := h.settingsService.UpdateBusinessConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update config")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessConfigResponse(cfg))
}
