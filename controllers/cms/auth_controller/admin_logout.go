package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clears the admin_token cookie. The JWT itself stays valid until expiry; logout is a client-side affair.
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
