package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/servease/servease-api/controllers/catalog"
	dashboardControllers "github.com/servease/servease-api/controllers/dashboard"
	orderControllers "github.com/servease/servease-api/controllers/order"
	"github.com/servease/servease-api/middleware"
)

// SetupPageRoutes registers the session-gated browser pages.
func SetupPageRoutes(r *gin.Engine, db *gorm.DB) {
	pages := r.Group("/")
	pages.Use(middleware.RequireSession)
	{
		pages.GET("/dashboard", dashboardControllers.Dashboard(db))
		pages.GET("/service/:id", catalogControllers.ServiceDetails(db))
		pages.GET("/order_form", orderControllers.OrderForm(db))
	}
}
