package client_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetClients godoc
// @Summary Get all clients
// @Description Sorted by display order, then creation time
// @Tags Admin - Clients
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/clients [get]
func GetClients(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	clients, err := repository.Get().GetClients(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch clients"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Clients fetched successfully", clients))
}
