package orderControllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartControllers "github.com/servease/servease-api/controllers/cart"
	"github.com/servease/servease-api/models"
)

var ErrEmptyCart = errors.New("cart is empty")

type SubmitOrderInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	Location      string `json:"location"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// lockForUpdate serializes concurrent submissions by locking the cart
// rows on postgres; sqlite rejects FOR UPDATE and is serializable anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// SubmitOrder snapshots the user's cart into a new order and clears the
// cart, all inside one transaction. Any failure rolls the whole thing
// back: no partial order, no partially cleared cart. Two submissions
// racing on the same cart cannot both charge for the same lines; the
// loser sees an empty cart.
func SubmitOrder(db *gorm.DB, userID uint, paymentMethod, location string) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := lockForUpdate(tx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		lines := make([]models.OrderLine, 0, len(items))
		var total float64
		for _, item := range items {
			name, unit, ok := item.ResolveLine(tx)
			if !ok {
				// Referenced catalog row vanished; the line is dropped
				// from the snapshot and cleared with the rest of the cart.
				continue
			}
			lines = append(lines, models.OrderLine{
				Type:     string(item.ItemType),
				Name:     name,
				Quantity: item.Quantity,
				Price:    unit,
			})
			total += unit * float64(item.Quantity)
		}

		snapshot, err := json.Marshal(lines)
		if err != nil {
			return err
		}

		order := models.Order{
			UserID:        userID,
			Items:         datatypes.JSON(snapshot),
			TotalPrice:    total,
			Status:        models.OrderStatusPending,
			PaymentMethod: paymentMethod,
			Location:      location,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

// UserOrders returns a user's order history, newest first.
func UserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// POST /api/submit_order
func SubmitOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input SubmitOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		orderID, err := SubmitOrder(db, userID, input.PaymentMethod, input.Location)
		if err != nil {
			log.Printf("order submission failed for user %d: %v", userID, err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false})
			return
		}

		broadcastNewOrder(db, orderID)
		c.JSON(http.StatusOK, gin.H{"success": true, "order_id": orderID})
	}
}

// GET /api/orders
func UserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		orders, err := UserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /order_form
func OrderForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		lines, total, err := cartControllers.CartLines(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(lines) == 0 {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"page":  "order_form",
			"user":  user,
			"items": lines,
			"total": total,
		})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "confirmed":
		return models.OrderStatusConfirmed, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// PUT /admin/orders/:id/status
// Only the status column moves; the items snapshot and total stay frozen.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
	}
}
