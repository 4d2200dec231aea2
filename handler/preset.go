package handler

import (
	"net/http"

	"github.com/AnTengye/contractstudio/middleware"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/logger"
	"github.com/AnTengye/contractstudio/service"
	"github.com/gin-gonic/gin"
)

type PresetHandler struct {
	presets *service.PresetStore
}

func NewPresetHandler(presets *service.PresetStore) *PresetHandler {
	return &PresetHandler{presets: presets}
}

// List returns the tenant's budget presets
func (h *PresetHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	c.JSON(http.StatusOK, gin.H{
		"presets": h.presets.List(tenant),
	})
}

// Create stores a new budget preset
func (h *PresetHandler) Create(c *gin.Context) {
	var item model.BudgetItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tenant := middleware.GetTenant(c)
	saved := h.presets.Add(tenant, item)

	logger.Info(c.Request.Context(), "preset created",
		"preset_id", saved.ID,
		"description", saved.Description,
	)

	c.JSON(http.StatusCreated, saved)
}

func (h *PresetHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	if err := h.presets.Delete(tenant, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preset deleted"})
}
