package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetContent godoc
// @Summary Get a page content document
// @Description One document per page type (home, about, contact, footer); created with defaults on first read
// @Tags Admin - Content
// @Produce json
// @Param type path string true "Page type"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/content/{type} [get]
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
