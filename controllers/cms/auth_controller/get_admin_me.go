package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

// GetAdminMe godoc
// @Summary Get the authenticated admin
// @Description Resolves the admin behind the current token; used by the dashboard shell on load
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/admin/me [get]
func GetAdminMe(c *gin.Context) {
	email := c.GetString("adminEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := repository.Get().GetAdminByEmail(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if admin == nil {
		// Token outlived the account.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", admin))
}
