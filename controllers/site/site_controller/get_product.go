package site_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetProduct godoc
// @Summary Get a product by ID or slug
// @Description The path segment is tried as a UUID first, then as a slug, so pretty product URLs work without a separate route
// @Tags Public
// @Produce json
// @Param idOrSlug path string true "Product ID or slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{idOrSlug} [get]
func GetProduct(c *gin.Context) {
	key := c.Param("idOrSlug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	repo := repository.Get()

	var product *models.Product
	var err error
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		product, err = repo.GetProductByID(ctx, id)
	} else {
		product, err = repo.GetProductBySlug(ctx, key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
