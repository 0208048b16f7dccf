package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/product_controller"
)

func SetupProductRoutes(protected *gin.RouterGroup) {
	product := protected.Group("/products")

	// Fixed paths before the :id wildcard so they never shadow each other.
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.POST("", product_controller.CreateProduct)
	product.POST("/bulk-delete", product_controller.BulkDeleteProducts)
	product.POST("/bulk-delete-category", product_controller.BulkDeleteByCategory)
	product.GET("/:id", product_controller.GetProductByID)
	product.PUT("/:id", product_controller.UpdateProduct)
	product.DELETE("/:id", product_controller.DeleteProduct)
}
