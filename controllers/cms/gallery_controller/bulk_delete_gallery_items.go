package gallery_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/utils"
)

// BulkDeleteGalleryItems godoc
// @Summary Delete multiple gallery items
// @Description Unknown IDs are skipped; the response reports how many rows were removed
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Param ids body models.BulkDeleteRequest true "Gallery item IDs"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/gallery/bulk-delete [post]
func BulkDeleteGalleryItems(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one gallery item id is required"))
		return
	}

	ids := utils.ParseUUIDList(req.IDs)
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No valid gallery item ids provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteGalleryItems(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete gallery items"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery items deleted successfully", gin.H{"deleted": deleted}))
}
