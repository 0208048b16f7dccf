package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/services"
	"github.com/sjmedialabs/kkengineering-sub000/utils"
)

const tokenMaxAge = 7 * 24 * 60 * 60 // seconds, matches the JWT lifetime

// AdminLogin godoc
// @Summary Admin login
// @Description Verifies credentials and sets the admin_token cookie. The same 401 is returned for a wrong password and an unknown email.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := repository.Get().GetAdminByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if admin == nil || !services.GetAdminAuthService().VerifyPassword(admin.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if admin.Status != "active" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account is disabled"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[ERROR] Failed to issue admin token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	utils.LogAdminLogin(c, admin.ID)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, tokenMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"token": token,
		"admin": admin,
	}))
}
