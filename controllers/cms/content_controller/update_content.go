package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// UpdateContent godoc
// @Summary Update a page content document
// @Description Replaces the document wholesale; each page has its own shape so the data bag is loosely typed
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param type path string true "Page type"
// @Param content body models.UpdateContentRequest true "Page document"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/content/{type} [put]
func UpdateContent(c *gin.Context) {
	pageType := c.Param("type")
	if !models.IsValidContentType(pageType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown page type: "+pageType))
		return
	}

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	content, err := repository.Get().UpdateContent(ctx, pageType, req.Data)
	if err != nil {
		log.Printf("[ERROR] Failed to update %s content: %v", pageType, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update content"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Content updated successfully", content))
}
