package gallery_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// CreateGalleryItem godoc
// @Summary Create a gallery item
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Param item body models.GalleryItemRequest true "Gallery item details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/gallery [post]
func CreateGalleryItem(c *gin.Context) {
	var req models.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	item := models.GalleryItem{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		Order:    req.Order,
	}

	if err := repository.Get().CreateGalleryItem(ctx, &item); err != nil {
		log.Printf("[ERROR] Failed to create gallery item: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create gallery item"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Gallery item created successfully", item))
}
