package controller

import (
	"net/http"

	"archviz/models"

	"github.com/gin-gonic/gin"
)

const settingsNotFound = "Settings not found"

func (h *Handler) GetSettings(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	settings, err := h.settings.Get(ctx, models.SettingsKey)
	if err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings writes the single settings document, creating it when
// missing. It always targets SettingsKey so a second document cannot appear.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := bindBody(c, models.SettingsSchema, &settings); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	settings.ID = models.SettingsKey

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.settings.Upsert(ctx, models.SettingsKey, settings); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
