package enquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateEnquiry godoc
// @Summary Update an enquiry
// @Description Status transitions are unconstrained; a resolved enquiry may go back to pending
// @Tags Admin - Enquiries
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID (UUID)"
// @Param enquiry body models.UpdateEnquiryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/enquiries/{id} [put]
func UpdateEnquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid enquiry ID"))
		return
	}

	var req models.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	enquiry, err := repository.Get().UpdateEnquiry(ctx, id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update enquiry"))
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Enquiry not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiry updated successfully", enquiry))
}
