package gallery_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetGalleryItems godoc
// @Summary Get all gallery items
// @Description Sorted by display order, then creation time
// @Tags Admin - Gallery
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/gallery [get]
func GetGalleryItems(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := repository.Get().GetGalleryItems(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery items"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery items fetched successfully", items))
}
