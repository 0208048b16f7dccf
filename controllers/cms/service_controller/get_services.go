package service_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetServices godoc
// @Summary Get all services
// @Tags Admin - Services
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/services [get]
func GetServices(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	services, err := repository.Get().GetServices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services fetched successfully", services))
}
