package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/servease/servease-api/controllers/admin"
	messageControllers "github.com/servease/servease-api/controllers/message"
	orderControllers "github.com/servease/servease-api/controllers/order"
	"github.com/servease/servease-api/middleware"
)

// SetupAdminRoutes registers the API-key-protected curation surface.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Services ────────────────
		adminGroup.POST("/services", adminControllers.CreateService(db))
		adminGroup.PUT("/services/:id", adminControllers.UpdateService(db))
		adminGroup.DELETE("/services/:id", adminControllers.DeleteService(db))
		adminGroup.POST("/services/:id/items", adminControllers.AddServiceItem(db))
		adminGroup.DELETE("/service_items/:id", adminControllers.DeleteServiceItem(db))

		// ──────────────── Menus ────────────────
		adminGroup.POST("/menus", adminControllers.CreateMenu(db))
		adminGroup.PUT("/menus/:id", adminControllers.UpdateMenu(db))
		adminGroup.DELETE("/menus/:id", adminControllers.DeleteMenu(db))

		// ──────────────── Message feed ────────────────
		adminGroup.GET("/messages", messageControllers.GetMessages(db))
		adminGroup.POST("/messages", messageControllers.CreateMessage(db))
		adminGroup.PUT("/messages/:id/deactivate", messageControllers.DeactivateMessage(db))
		adminGroup.DELETE("/messages/:id", messageControllers.DeleteMessage(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderFeedHandler)
	}
}
