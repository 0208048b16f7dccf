package client_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetClientByID godoc
// @Summary Get a client by ID
// @Tags Admin - Clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/clients/{id} [get]
func GetClientByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid client ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	client, err := repository.Get().GetClientByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Client not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client fetched successfully", client))
}
