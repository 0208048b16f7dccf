package product_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/utils"
)

// BulkDeleteProducts godoc
// @Summary Delete multiple products
// @Description Deletes every product in the id list; unknown ids are skipped
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param body body models.BulkDeleteRequest true "Product ids"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/products/bulk-delete [post]
func BulkDeleteProducts(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one product id is required"))
		return
	}

	ids := utils.ParseUUIDList(req.IDs)
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No valid product ids provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteProducts(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, fmt.Sprintf("Deleted %d products", deleted), gin.H{
		"deleted": deleted,
	}))
}
