package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/servease/servease-api/controllers/cart"
	geoControllers "github.com/servease/servease-api/controllers/geo"
	orderControllers "github.com/servease/servease-api/controllers/order"
	"github.com/servease/servease-api/middleware"
)

// SetupAPIRoutes registers the structured-body endpoints the pages call.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	api.GET("/get_location", geoControllers.GetLocation())

	authed := api.Group("/")
	authed.Use(middleware.RequireSessionAPI)
	{
		authed.GET("/cart", cartControllers.GetCart(db))
		authed.POST("/add_to_cart", cartControllers.AddToCart(db))
		authed.POST("/update_cart", cartControllers.UpdateCart(db))

		authed.POST("/submit_order", orderControllers.SubmitOrderHandler(db))
		authed.GET("/orders", orderControllers.UserOrdersHandler(db))
	}
}
