package site_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetGallery godoc
// @Summary List gallery items in display order
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/gallery [get]
func GetGallery(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := repository.Get().GetGalleryItems(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery fetched successfully", items))
}

// GetClients godoc
// @Summary List client logos in display order
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/clients [get]
func GetClients(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	clients, err := repository.Get().GetClients(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch clients"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Clients fetched successfully", clients))
}

// GetTestimonials godoc
// @Summary List testimonials, newest first
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/testimonials [get]
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
