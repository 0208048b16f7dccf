package gallery_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetGalleryItemByID godoc
// @Summary Get a gallery item by ID
// @Tags Admin - Gallery
// @Produce json
// @Param id path string true "Gallery item ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/gallery/{id} [get]
func GetGalleryItemByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, err := repository.Get().GetGalleryItemByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Gallery item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery item fetched successfully", item))
}
