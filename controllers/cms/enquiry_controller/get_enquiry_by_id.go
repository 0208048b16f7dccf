package enquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetEnquiryByID godoc
// @Summary Get an enquiry by ID
// @Tags Admin - Enquiries
// @Produce json
// @Param id path string true "Enquiry ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/enquiries/{id} [get]
func GetEnquiryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid enquiry ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	enquiry, err := repository.Get().GetEnquiryByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Enquiry not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiry fetched successfully", enquiry))
}
