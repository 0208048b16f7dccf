package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/content_controller"
	"github.com/sjmedialabs/kkengineering-sub000/controllers/cms/settings_controller"
)

// SetupContentRoutes wires the settings singleton and the per-page
// content documents.
func SetupContentRoutes(protected *gin.RouterGroup) {
	protected.GET("/settings", settings_controller.GetSettings)
	protected.PUT("/settings", settings_controller.UpdateSettings)

	protected.GET("/content/:type", content_controller.GetContent)
	protected.PUT("/content/:type", content_controller.UpdateContent)
}
