package client_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// CreateClient godoc
// @Summary Create a client logo entry
// @Tags Admin - Clients
// @Accept json
// @Produce json
// @Param client body models.ClientRequest true "Client details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/clients [post]
func CreateClient(c *gin.Context) {
	var req models.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	client := models.Client{
		Name:    req.Name,
		Logo:    req.Logo,
		Website: req.Website,
		Order:   req.Order,
	}

	if err := repository.Get().CreateClient(ctx, &client); err != nil {
		log.Printf("[ERROR] Failed to create client: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create client"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Client created successfully", client))
}
