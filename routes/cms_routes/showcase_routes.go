package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/client_controller"
	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/gallery_controller"
	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/testimonial_controller"
)

func SetupGalleryRoutes(protected *gin.RouterGroup) {
	gallery := protected.Group("/gallery")

	gallery.GET("", gallery_controller.GetGalleryItems)
	gallery.POST("", gallery_controller.CreateGalleryItem)
	gallery.POST("/bulk-delete", gallery_controller.BulkDeleteGalleryItems)
	gallery.GET("/:id", gallery_controller.GetGalleryItemByID)
	gallery.PUT("/:id", gallery_controller.UpdateGalleryItem)
	gallery.DELETE("/:id", gallery_controller.DeleteGalleryItem)
}

func SetupClientRoutes(protected *gin.RouterGroup) {
	client := protected.Group("/clients")

	client.GET("", client_controller.GetClients)
	client.POST("", client_controller.CreateClient)
	client.POST("/bulk-delete", client_controller.BulkDeleteClients)
	client.GET("/:id", client_controller.GetClientByID)
	client.PUT("/:id", client_controller.UpdateClient)
	client.DELETE("/:id", client_controller.DeleteClient)
}

func SetupTestimonialRoutes(protected *gin.RouterGroup) {
	testimonial := protected.Group("/testimonials")

	testimonial.GET("", testimonial_controller.GetTestimonials)
	testimonial.POST("", testimonial_controller.CreateTestimonial)
	testimonial.POST("/bulk-delete", testimonial_controller.BulkDeleteTestimonials)
	testimonial.GET("/:id", testimonial_controller.GetTestimonialByID)
	testimonial.PUT("/:id", testimonial_controller.UpdateTestimonial)
	testimonial.DELETE("/:id", testimonial_controller.DeleteTestimonial)
}
