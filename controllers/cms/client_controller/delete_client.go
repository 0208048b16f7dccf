package client_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// DeleteClient godoc
// @Summary Delete a client
// @Tags Admin - Clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid client ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := repository.Get().DeleteClient(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete client"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Client not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client deleted successfully", gin.H{"id": id}))
}
