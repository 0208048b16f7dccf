package product_controller

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

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a catalog product; slug is generated from the name when omitted
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ERROR] Invalid product request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}
	if req.Availability == "" {
		req.Availability = models.AvailabilityInStock
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product := models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Category:         req.Category,
		CategoryID:       req.CategoryID,
		Description:      req.Description,
		Image:            req.Image,
		ProductType:      req.ProductType,
		Capacity:         req.Capacity,
		ScreenDimension:  req.ScreenDimension,
		NumberOfDecks:    req.NumberOfDecks,
		MotorPower:       req.MotorPower,
		GyratoryCircular: req.GyratoryCircular,
		SpecialFeatures:  req.SpecialFeatures,
		Availability:     req.Availability,
		Featured:         req.Featured,
	}

	if err := repository.Get().CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
			return
		}
		log.Printf("[ERROR] Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
