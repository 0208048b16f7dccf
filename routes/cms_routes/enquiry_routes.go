package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/enquiry_controller"
)

func SetupEnquiryRoutes(protected *gin.RouterGroup) {
	enquiry := protected.Group("/enquiries")

	enquiry.GET("", enquiry_controller.GetEnquiries)
	enquiry.POST("/bulk-delete", enquiry_controller.BulkDeleteEnquiries)
	enquiry.GET("/:id", enquiry_controller.GetEnquiryByID)
	enquiry.PUT("/:id", enquiry_controller.UpdateEnquiry)
	enquiry.DELETE("/:id", enquiry_controller.DeleteEnquiry)
}
