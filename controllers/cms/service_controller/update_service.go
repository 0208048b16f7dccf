package service_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateService godoc
// @Summary Update a service
// @Description Partial update; only the provided fields change
// @Tags Admin - Services
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param service body models.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/services/{id} [put]
func UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	service, err := repository.Get().UpdateService(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A service with this slug already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update service"))
		return
	}
	if service == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service updated successfully", service))
}
