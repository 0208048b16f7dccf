package site_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetCategories godoc
// @Summary List categories for the public catalog sidebar
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := repository.Get().GetCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}

// GetServices godoc
// @Summary List services for the public services page
// @Tags Public
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/services [get]
func GetServices(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	services, err := repository.Get().GetServices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services fetched successfully", services))
}
