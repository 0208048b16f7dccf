package testimonial_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetTestimonials godoc
// @Summary Get all testimonials
// @Description Newest first
// @Tags Admin - Testimonials
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/testimonials [get]
func GetTestimonials(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	testimonials, err := repository.Get().GetTestimonials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched successfully", testimonials))
}
