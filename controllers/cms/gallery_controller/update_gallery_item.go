package gallery_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateGalleryItem godoc
// @Summary Update a gallery item
// @Description Partial update; only the provided fields change
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID (UUID)"
// @Param item body models.UpdateGalleryItemRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/gallery/{id} [put]
func UpdateGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery item ID"))
		return
	}

	var req models.UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, err := repository.Get().UpdateGalleryItem(ctx, id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update gallery item"))
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Gallery item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery item updated successfully", item))
}
