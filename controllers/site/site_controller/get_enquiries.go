package site_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetEnquiries godoc
// @Summary List enquiries
// @Description Newest first, optionally filtered by status. Exposed alongside the public routes for the embedded dashboard widget.
// @Tags Public
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} models.ApiResponse
// @Router /api/enquiries [get]
func GetEnquiries(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	enquiries, err := repository.Get().GetEnquiries(ctx, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch enquiries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiries fetched successfully", enquiries))
}
