package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateSettings godoc
// @Summary Update site settings
// @Description Replaces every section of the singleton; the admin form always submits the full document
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Param settings body models.SettingsRequest true "Settings document"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/settings [put]
func UpdateSettings(c *gin.Context) {
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings, err := repository.Get().UpdateSettings(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Failed to update settings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated successfully", settings))
}
