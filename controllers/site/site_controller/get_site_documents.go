package site_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetSettings godoc
// @Summary Get site settings for the public shell
// @Description Auto-created with defaults on first read; never 404s
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/settings [get]
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

// GetContent godoc
// @Summary Get a page content document
// @Tags Public
// @Produce json
// @Param type path string true "Page type (home, about, contact, footer)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/content/{type} [get]
func GetContent(c *gin.Context) {
	pageType := c.Param("type")
	if !models.IsValidContentType(pageType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown page type: "+pageType))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	content, err := repository.Get().GetContent(ctx, pageType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch content"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Content fetched successfully", content))
}
