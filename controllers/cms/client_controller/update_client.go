package client_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateClient godoc
// @Summary Update a client
// @Description Partial update; only the provided fields change
// @Tags Admin - Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param client body models.UpdateClientRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/clients/{id} [put]
func UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid client ID"))
		return
	}

	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	client, err := repository.Get().UpdateClient(ctx, id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update client"))
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Client not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client updated successfully", client))
}
