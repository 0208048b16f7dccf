package testimonial_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Description Rating defaults to 5 when omitted
// @Tags Admin - Testimonials
// @Accept json
// @Produce json
// @Param testimonial body models.TestimonialRequest true "Testimonial details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/testimonials [post]
func CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Rating == 0 {
		req.Rating = 5
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	testimonial := models.Testimonial{
		Name:     req.Name,
		Title:    req.Title,
		Company:  req.Company,
		Content:  req.Content,
		Image:    req.Image,
		Rating:   req.Rating,
		Featured: req.Featured,
	}

	if err := repository.Get().CreateTestimonial(ctx, &testimonial); err != nil {
		log.Printf("[ERROR] Failed to create testimonial: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create testimonial"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Testimonial created successfully", testimonial))
}
