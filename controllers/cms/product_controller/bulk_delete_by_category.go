package product_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// BulkDeleteByCategory godoc
// @Summary Delete all products of a category
// @Description Deletes every product whose denormalized category name matches
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param body body models.BulkDeleteByCategoryRequest true "Category name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/products/bulk-delete-category [post]
func BulkDeleteByCategory(c *gin.Context) {
	var req models.BulkDeleteByCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "categoryName is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteProductsByCategory(ctx, req.CategoryName)
	if err != nil {
		log.Printf("[ERROR] Failed to delete products in category %q: %v", req.CategoryName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, fmt.Sprintf("Deleted %d products in category %s", deleted, req.CategoryName), gin.H{
		"deleted": deleted,
	}))
}
