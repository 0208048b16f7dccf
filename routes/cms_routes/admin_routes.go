package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/upload_controller"
	"github.com/sjmedialabs/kkengineering-sub000/middleware"
)

// SetupAdminRoutes wires the whole back office under /api/admin.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())

	// Auth (login itself stays outside the auth middleware)
	SetupAuthRoutes(admin, protected)

	// Catalog
	SetupProductRoutes(protected)
	SetupCategoryRoutes(protected)
	SetupServiceRoutes(protected)

	// Leads
	SetupEnquiryRoutes(protected)

	// Showcase
	SetupGalleryRoutes(protected)
	SetupClientRoutes(protected)
	SetupTestimonialRoutes(protected)

	// Settings and page content
	SetupContentRoutes(protected)

	// Media upload lives at /api/upload but still requires a session
	rg.POST("/upload", middleware.AdminAuthMiddleware(), upload_controller.UploadMedia)
}
