package testimonial_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Description Partial update; only the provided fields change
// @Tags Admin - Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID (UUID)"
// @Param testimonial body models.UpdateTestimonialRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/testimonials/{id} [put]
func UpdateTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid testimonial ID"))
		return
	}

	var req models.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	testimonial, err := repository.Get().UpdateTestimonial(ctx, id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial"))
		return
	}
	if testimonial == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial updated successfully", testimonial))
}
