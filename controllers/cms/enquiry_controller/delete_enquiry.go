package enquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// DeleteEnquiry godoc
// @Summary Delete an enquiry
// @Tags Admin - Enquiries
// @Produce json
// @Param id path string true "Enquiry ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/enquiries/{id} [delete]
func DeleteEnquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid enquiry ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteEnquiry(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete enquiry"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Enquiry not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiry deleted successfully", gin.H{"id": id}))
}
