package testimonial_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/utils"
)

// BulkDeleteTestimonials godoc
// @Summary Delete multiple testimonials
// @Description Unknown IDs are skipped; the response reports how many rows were removed
// @Tags Admin - Testimonials
// @Accept json
// @Produce json
// @Param ids body models.BulkDeleteRequest true "Testimonial IDs"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/testimonials/bulk-delete [post]
func BulkDeleteTestimonials(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one testimonial id is required"))
		return
	}

	ids := utils.ParseUUIDList(req.IDs)
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No valid testimonial ids provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteTestimonials(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials deleted successfully", gin.H{"deleted": deleted}))
}
