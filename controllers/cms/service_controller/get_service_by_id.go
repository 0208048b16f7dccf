package service_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetServiceByID godoc
// @Summary Get a service by ID
// @Tags Admin - Services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/services/{id} [get]
func GetServiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	service, err := repository.Get().GetServiceByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if service == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service fetched successfully", service))
}
