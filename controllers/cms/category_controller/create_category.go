package category_controller

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

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a catalog category; slug is generated from the name when omitted
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		Image:       req.Image,
	}

	if err := repository.Get().CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
			return
		}
		log.Printf("[ERROR] Failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
