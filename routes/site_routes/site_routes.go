package site_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/site/site_controller"
	"github.com/sjmedialabs/kkengineering-sub000/middleware"
)

// SetupSiteRoutes wires the public, read-mostly API the website consumes.
// The only public write is the enquiry form, which is rate limited.
func SetupSiteRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", site_controller.GetProducts)
	rg.GET("/products/:idOrSlug", site_controller.GetProduct)
	rg.GET("/categories", site_controller.GetCategories)
	rg.GET("/services", site_controller.GetServices)

	rg.GET("/gallery", site_controller.GetGallery)
	rg.GET("/clients", site_controller.GetClients)
	rg.GET("/testimonials", site_controller.GetTestimonials)

	rg.GET("/settings", site_controller.GetSettings)
	rg.GET("/content/:type", site_controller.GetContent)

	rg.POST("/enquiries", middleware.RateLimiter(5, time.Minute), site_controller.CreateEnquiry)
	rg.GET("/enquiries", site_controller.GetEnquiries)
}
