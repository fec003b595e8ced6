package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/servease/servease-api/controllers/cart"
	catalogControllers "github.com/servease/servease-api/controllers/catalog"
	messageControllers "github.com/servease/servease-api/controllers/message"
	orderControllers "github.com/servease/servease-api/controllers/order"
	"github.com/servease/servease-api/models"
)

// GET /dashboard
// One aggregated payload: catalog, the caller's cart with its total,
// order history and the active message feed.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		services, err := catalogControllers.ListServices(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		menus, err := catalogControllers.ListMenus(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menus"})
			return
		}
		cartLines, cartTotal, err := cartControllers.CartLines(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		orders, err := orderControllers.UserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		messages, err := messageControllers.ActiveMessages(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"page":       "dashboard",
			"user":       user,
			"services":   services,
			"menus":      menus,
			"cart_items": cartLines,
			"cart_total": cartTotal,
			"orders":     orders,
			"messages":   messages,
		})
	}
}
