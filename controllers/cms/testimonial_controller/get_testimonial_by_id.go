package testimonial_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetTestimonialByID godoc
// @Summary Get a testimonial by ID
// @Tags Admin - Testimonials
// @Produce json
// @Param id path string true "Testimonial ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/testimonials/{id} [get]
func GetTestimonialByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	testimonial, err := repository.Get().GetTestimonialByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if testimonial == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial fetched successfully", testimonial))
}
