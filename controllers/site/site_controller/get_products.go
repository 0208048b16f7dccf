package site_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetProducts godoc
// @Summary List products for the public catalog
// @Description Supports category, search, featured, limit and skip query parameters
// @Tags Public
// @Produce json
// @Param category query string false "Filter by category name"
// @Param search query string false "Case-insensitive name/description search"
// @Param featured query bool false "Only featured products"
// @Param limit query int false "Page size"
// @Param skip query int false "Offset"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products [get]
func GetProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Category:   c.Query("category"),
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("skip")); err == nil && v > 0 {
		filter.Skip = v
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, total, err := repository.Get().GetProducts(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": products,
		"total":    total,
	}))
}
