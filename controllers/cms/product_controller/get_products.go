package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve products with pagination and optional category/search/featured filters
// @Tags Admin - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param category query string false "Filter by denormalized category name"
// @Param search query string false "Substring match on name, description, category"
// @Param featured query bool false "Only featured products"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := models.ProductFilter{
		Category:   c.Query("category"),
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
		Limit:      limit,
		Skip:       (page - 1) * limit,
	}
	if featured := c.Query("featured"); featured != "" {
		val := featured == "true" || featured == "1"
		filter.Featured = &val
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, total, err := repository.Get().GetProducts(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", gin.H{"products": products}, meta))
}
