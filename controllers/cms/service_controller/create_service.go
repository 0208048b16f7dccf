package service_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// CreateService godoc
// @Summary Create a new service
// @Description Create a service offering; slug is generated from the title when omitted
// @Tags Admin - Services
// @Accept json
// @Produce json
// @Param service body models.ServiceRequest true "Service details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/services [post]
func CreateService(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	service := models.Service{
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Icon:             req.Icon,
		Image:            req.Image,
		Features:         models.StringList(req.Features),
		Featured:         req.Featured,
	}
	if service.Features == nil {
		service.Features = models.StringList{}
	}

	if err := repository.Get().CreateService(ctx, &service); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A service with this slug already exists"))
			return
		}
		log.Printf("[ERROR] Failed to create service: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create service"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Service created successfully", service))
}
