package enquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/utils"
)

// BulkDeleteEnquiries godoc
// @Summary Delete multiple enquiries
// @Description Unknown IDs are skipped; the response reports how many rows were removed
// @Tags Admin - Enquiries
// @Accept json
// @Produce json
// @Param ids body models.BulkDeleteRequest true "Enquiry IDs"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/enquiries/bulk-delete [post]
func BulkDeleteEnquiries(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one enquiry id is required"))
		return
	}

	ids := utils.ParseUUIDList(req.IDs)
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No valid enquiry ids provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteEnquiries(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete enquiries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiries deleted successfully", gin.H{"deleted": deleted}))
}
