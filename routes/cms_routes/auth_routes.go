package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/auth_controller"
	"github.com/sjmedialabs/kkengineering-sub000/middleware"
)

// SetupAuthRoutes wires login/logout/me under the admin group. Login is
// rate limited; everything else in the back office sits behind the auth
// middleware applied by SetupAdminRoutes.
func SetupAuthRoutes(admin *gin.RouterGroup, protected *gin.RouterGroup) {
	admin.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.AdminLogin)

	protected.POST("/logout", auth_controller.AdminLogout)
	protected.GET("/me", auth_controller.GetAdminMe)
}
