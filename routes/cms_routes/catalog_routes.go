package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/category_controller"
	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/service_controller"
)

func SetupCategoryRoutes(protected *gin.RouterGroup) {
	category := protected.Group("/categories")

	category.GET("", category_controller.GetCategories)
	category.POST("", category_controller.CreateCategory)
	category.POST("/bulk-delete", category_controller.BulkDeleteCategories)
	category.GET("/:id", category_controller.GetCategoryByID)
	category.PUT("/:id", category_controller.UpdateCategory)
	category.DELETE("/:id", category_controller.DeleteCategory)
}

func SetupServiceRoutes(protected *gin.RouterGroup) {
	service := protected.Group("/services")

	service.GET("", service_controller.GetServices)
	service.POST("", service_controller.CreateService)
	service.POST("/bulk-delete", service_controller.BulkDeleteServices)
	service.GET("/:id", service_controller.GetServiceByID)
	service.PUT("/:id", service_controller.UpdateService)
	service.DELETE("/:id", service_controller.DeleteService)
}
