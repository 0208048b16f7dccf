package enquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetEnquiries godoc
// @Summary Get all enquiries
// @Description Newest first; optionally filtered by status. The response also carries per-status counts for the dashboard badges.
// @Tags Admin - Enquiries
// @Produce json
// @Param status query string false "Filter by status (pending, contacted, resolved)"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/enquiries [get]
func GetEnquiries(c *gin.Context) {
	status := c.Query("status")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	repo := repository.Get()

	enquiries, err := repo.GetEnquiries(ctx, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch enquiries"))
		return
	}

	// Counts are computed over the full set regardless of the filter so
	// the dashboard badges stay accurate while a filter is active.
	counts := gin.H{
		models.EnquiryStatusPending:   0,
		models.EnquiryStatusContacted: 0,
		models.EnquiryStatusResolved:  0,
	}
	all := enquiries
	if status != "" {
		if all, err = repo.GetEnquiries(ctx, ""); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch enquiries"))
			return
		}
	}
	for _, e := range all {
		if n, ok := counts[e.Status].(int); ok {
			counts[e.Status] = n + 1
		}
	}
	counts["total"] = len(all)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Enquiries fetched successfully", gin.H{
		"enquiries": enquiries,
		"counts":    counts,
	}))
}
