package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetSettings godoc
// @Summary Get site settings
// @Description The settings singleton is created with defaults on first read, so this never returns 404
// @Tags Admin - Settings
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/settings [get]
func GetSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings, err := repository.Get().GetSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched successfully", settings))
}
